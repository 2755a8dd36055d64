package vision

import (
	"github.com/07piyush/wardrobeai/domain"
)

// TagRule matches one RGB box to a descriptive tag. Bounds are inclusive.
type TagRule struct {
	Tag                    string
	MinR, MaxR, MinG, MaxG uint8
	MinB, MaxB             uint8
}

// TagRules is the fixed threshold table, checked in order with first
// match winning. White precedes pastel so near-white centroids do not
// read as pastel.
var TagRules = []TagRule{
	{Tag: "red", MinR: 201, MaxR: 255, MinG: 0, MaxG: 99, MinB: 0, MaxB: 99},
	{Tag: "green", MinR: 0, MaxR: 99, MinG: 201, MaxG: 255, MinB: 0, MaxB: 99},
	{Tag: "blue", MinR: 0, MaxR: 99, MinG: 0, MaxG: 99, MinB: 201, MaxB: 255},
	{Tag: "black", MinR: 0, MaxR: 49, MinG: 0, MaxG: 49, MinB: 0, MaxB: 49},
	{Tag: "white", MinR: 201, MaxR: 255, MinG: 201, MaxG: 255, MinB: 201, MaxB: 255},
	{Tag: "pastel", MinR: 151, MaxR: 255, MinG: 151, MaxG: 255, MinB: 151, MaxB: 255},
}

func (r TagRule) matches(c domain.RGB) bool {
	return c.R >= r.MinR && c.R <= r.MaxR &&
		c.G >= r.MinG && c.G <= r.MaxG &&
		c.B >= r.MinB && c.B <= r.MaxB
}

// ExtractTags maps the dominant color to at most one descriptive tag.
// No matching rule, or no colors at all, yields an empty set; never an
// error.
func ExtractTags(colors []domain.RGB) []string {
	if len(colors) == 0 {
		return nil
	}
	dominant := colors[0]
	for _, rule := range TagRules {
		if rule.matches(dominant) {
			return []string{rule.Tag}
		}
	}
	return nil
}
