package vision

import (
	"image"

	"github.com/07piyush/wardrobeai/domain"
)

// Extractor runs the full feature pipeline over a decoded raster. It is
// stateless between calls; concurrent extractions need no coordination.
type Extractor struct {
	Clusterer  ClustererConfig
	Classifier ClassifierConfig
}

func NewExtractor() *Extractor {
	return &Extractor{
		Clusterer:  DefaultClustererConfig(),
		Classifier: DefaultClassifierConfig(),
	}
}

// Extract produces one FeatureRecord for the image. Each sub-step
// degrades to its sentinel on its own, so a partial feature set is always
// produced once the raster is usable; only an undecodable raster is
// fatal.
func (e *Extractor) Extract(img image.Image) (*domain.FeatureRecord, error) {
	if img == nil {
		return nil, domain.ErrImageDecode
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, domain.ErrImageDecode
	}

	record := &domain.FeatureRecord{
		Category:       ClassifyCategory(bounds.Dx(), bounds.Dy(), e.Classifier),
		DominantColors: DominantColors(img, e.Clusterer),
		BoundingBox:    DetectRegion(img),
	}

	// Tags come from a single-cluster pass so the rule table sees one
	// whole-image dominant color.
	single := e.Clusterer
	single.Clusters = 1
	record.Tags = ExtractTags(DominantColors(img, single))
	if record.Tags == nil {
		record.Tags = []string{}
	}
	return record, nil
}
