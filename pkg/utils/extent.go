package utils

import "math"

// Extent is the closed range covered by a set of samples.
// The zero value is empty; Include widens it.
type Extent struct {
	Min, Max float64
	n        int
}

// Include widens the extent to cover v.
func (e *Extent) Include(v float64) {
	if e.n == 0 {
		e.Min, e.Max = v, v
	} else {
		e.Min = math.Min(e.Min, v)
		e.Max = math.Max(e.Max, v)
	}
	e.n++
}

// Empty reports whether no samples have been included.
func (e Extent) Empty() bool { return e.n == 0 }

// Count is the number of samples included.
func (e Extent) Count() int { return e.n }

// Span is Max - Min, or 0 for an empty extent.
func (e Extent) Span() float64 {
	if e.n == 0 {
		return 0
	}
	return e.Max - e.Min
}

// Steps returns every multiple of step inside the extent, in ascending order.
func (e Extent) Steps(step float64) []float64 {
	if e.n == 0 || step <= 0 {
		return nil
	}
	var out []float64
	for v := math.Ceil(e.Min/step) * step; v <= e.Max; v += step {
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		out = append(out, v)
	}
	return out
}
