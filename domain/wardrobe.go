package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WardrobeItem is a persisted FeatureRecord enriched with an owner and a
// reference to the externally stored image. Items are read-only once
// created; the recommendation engine never mutates them.
type WardrobeItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"user_id" json:"user_id"`
	ImageURL      string             `bson:"image_url" json:"image_url"`
	ObjectKey     string             `bson:"object_key" json:"-"`
	UploadedAt    time.Time          `bson:"uploaded_at" json:"uploaded_at"`
	FeatureRecord `bson:",inline"`
}

// RankedRecommendation pairs a wardrobe item with its relevance score,
// a cosine mean in [0,1]. Results are ordered descending by score with
// the original wardrobe order breaking ties.
type RankedRecommendation struct {
	Item            WardrobeItem `json:"item"`
	SimilarityScore float64      `json:"similarity_score"`
}

type WardrobeRepository interface {
	Create(ctx context.Context, item *WardrobeItem) error
	FetchByUser(ctx context.Context, userID string) ([]WardrobeItem, error)
	GetByID(ctx context.Context, userID string, id string) (*WardrobeItem, error)
	Delete(ctx context.Context, userID string, id string) error
}
