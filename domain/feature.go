package domain

// Garment categories produced by the aspect-ratio classifier. The
// classification is a coarse heuristic, not ground truth.
const (
	CategoryShirt    = "shirt"
	CategoryPants    = "pants"
	CategoryFullBody = "full_body"
	CategoryUnknown  = "unknown"
)

// RGB is one 8-bit color triple.
type RGB struct {
	R uint8 `bson:"r" json:"r"`
	G uint8 `bson:"g" json:"g"`
	B uint8 `bson:"b" json:"b"`
}

// BoundingBox is the axis-aligned rectangle of a detected foreground
// region. The zero value is the "no region found" sentinel, a valid
// result rather than an error.
type BoundingBox struct {
	X      int `bson:"x" json:"x"`
	Y      int `bson:"y" json:"y"`
	Width  int `bson:"width" json:"width"`
	Height int `bson:"height" json:"height"`
}

// Empty reports whether the box is the "no region found" sentinel.
func (b BoundingBox) Empty() bool {
	return b.Width == 0 && b.Height == 0
}

// FeatureRecord holds the visual features extracted from one garment
// image. It is created once per processed image and never mutated;
// identity and storage location are attached by WardrobeItem.
type FeatureRecord struct {
	Category       string      `bson:"category" json:"category"`
	DominantColors []RGB       `bson:"dominant_colors" json:"dominant_colors"`
	Tags           []string    `bson:"tags" json:"tags"`
	BoundingBox    BoundingBox `bson:"bounding_box" json:"bounding_box"`
}
