package vision

import (
	"github.com/07piyush/wardrobeai/domain"
)

// ClassifierConfig holds the aspect-ratio cut points. The values are
// tuned constants carried over as-is; changing them changes pinned
// behavior.
type ClassifierConfig struct {
	ShirtRatio float64 // wider than this reads as a top
	PantsRatio float64 // narrower than this reads as a bottom
}

func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		ShirtRatio: 1.5,
		PantsRatio: 0.7,
	}
}

// ClassifyCategory maps raw image dimensions to a coarse garment
// category. The heuristic is approximate, not ground truth. Degenerate
// dimensions map to CategoryUnknown instead of dividing by zero.
func ClassifyCategory(width, height int, cfg ClassifierConfig) string {
	if width <= 0 || height <= 0 {
		return domain.CategoryUnknown
	}
	ratio := float64(width) / float64(height)
	switch {
	case ratio > cfg.ShirtRatio:
		return domain.CategoryShirt
	case ratio < cfg.PantsRatio:
		return domain.CategoryPants
	default:
		return domain.CategoryFullBody
	}
}
