// Package utils provides small numeric helpers shared by the loader and the renderer.
package utils

// Lerp maps v from the range [inMin, inMax] onto [outMin, outMax].
// Values outside the input range extrapolate. A zero-width input range maps
// to the midpoint of the output range.
func Lerp(v, inMin, inMax, outMin, outMax float64) float64 {
	span := inMax - inMin
	if span == 0 {
		return outMin + (outMax-outMin)/2
	}
	return outMin + (v-inMin)/span*(outMax-outMin)
}
