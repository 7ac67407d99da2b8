package volcanoengine

import (
	"image/color"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// MarkerAlpha is the opacity applied to every marker fill.
const MarkerAlpha = 150

// TypeRule assigns a color to every type label containing Keyword.
// Label is what the legend shows for the rule.
type TypeRule struct {
	Keyword string
	Label   string
	Color   color.NRGBA
}

var (
	ColorStrato    = color.NRGBA{0xA6, 0xCD, 0xED, 0xFF} // Light Blue
	ColorShield    = color.NRGBA{0xCD, 0x5A, 0x5C, 0xFF} // Brick Red
	ColorComplex   = color.NRGBA{0xF3, 0xC2, 0xB6, 0xFF} // Peach
	ColorSubmarine = color.NRGBA{0x89, 0x3F, 0x9A, 0xFF} // Purple
	ColorLava      = color.NRGBA{0xFC, 0xFD, 0xF9, 0xFF} // Off White
	ColorOther     = color.NRGBA{0xAD, 0xD5, 0xC4, 0xFF} // Sage
)

// DefaultTypeRules is checked in order; the first rule whose keyword appears
// in the label wins.
var DefaultTypeRules = []TypeRule{
	{Keyword: "strato", Label: "Stratovolcano", Color: ColorStrato},
	{Keyword: "shield", Label: "Shield", Color: ColorShield},
	{Keyword: "complex", Label: "Complex", Color: ColorComplex},
	{Keyword: "submarine", Label: "Submarine", Color: ColorSubmarine},
	{Keyword: "lava", Label: "Lava Dome", Color: ColorLava},
}

// OtherType is used for labels no rule matches, including empty ones.
var OtherType = TypeRule{Label: "Other", Color: ColorOther}

// TypeClassifier matches type labels against an ordered rule list.
// It is not safe for concurrent use.
type TypeClassifier struct {
	rules    []TypeRule
	fallback TypeRule
	matcher  *ahocorasick.Matcher
}

// NewTypeClassifier compiles the rule keywords. Keywords are matched without
// regard to case.
func NewTypeClassifier(rules []TypeRule, fallback TypeRule) *TypeClassifier {
	c := &TypeClassifier{rules: rules, fallback: fallback}
	keywords := make([]string, 0, len(rules))
	for _, r := range rules {
		keywords = append(keywords, strings.ToLower(r.Keyword))
	}
	if len(keywords) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(keywords)
	}
	return c
}

// DefaultTypeClassifier uses DefaultTypeRules and OtherType.
func DefaultTypeClassifier() *TypeClassifier {
	return NewTypeClassifier(DefaultTypeRules, OtherType)
}

// Rule returns the rule for label.
func (c *TypeClassifier) Rule(label string) TypeRule {
	if label == "" || c.matcher == nil {
		return c.fallback
	}
	best := -1
	for _, idx := range c.matcher.Match([]byte(strings.ToLower(label))) {
		if best == -1 || idx < best {
			best = idx
		}
	}
	if best == -1 {
		return c.fallback
	}
	return c.rules[best]
}

// Classify returns the marker fill for label.
func (c *TypeClassifier) Classify(label string) color.NRGBA {
	clr := c.Rule(label).Color
	clr.A = MarkerAlpha
	return clr
}

// Legend lists every rule followed by the fallback, in display order.
func (c *TypeClassifier) Legend() []TypeRule {
	out := make([]TypeRule, 0, len(c.rules)+1)
	out = append(out, c.rules...)
	return append(out, c.fallback)
}
