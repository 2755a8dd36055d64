package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWardrobeItemBSONRoundTrip(t *testing.T) {
	// BSON datetimes carry millisecond precision, so the fixture truncates.
	uploaded := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

	item := WardrobeItem{
		ID:         primitive.NewObjectID(),
		UserID:     "user-1",
		ImageURL:   "http://localhost:8080/static/user-1/abc.jpg",
		ObjectKey:  "user-1/abc.jpg",
		UploadedAt: uploaded,
		FeatureRecord: FeatureRecord{
			Category:       CategoryShirt,
			DominantColors: []RGB{{R: 255}, {G: 128, B: 64}},
			Tags:           []string{"red", "casual"},
			BoundingBox:    BoundingBox{X: 2, Y: 3, Width: 40, Height: 50},
		},
	}

	raw, err := bson.Marshal(item)
	require.NoError(t, err)

	var got WardrobeItem
	require.NoError(t, bson.Unmarshal(raw, &got))

	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, item.UserID, got.UserID)
	assert.Equal(t, item.ImageURL, got.ImageURL)
	assert.Equal(t, item.ObjectKey, got.ObjectKey)
	assert.True(t, item.UploadedAt.Equal(got.UploadedAt))
	assert.Equal(t, item.FeatureRecord, got.FeatureRecord)
}

func TestBoundingBoxEmpty(t *testing.T) {
	assert.True(t, BoundingBox{}.Empty())
	assert.False(t, BoundingBox{Width: 1, Height: 1}.Empty())
}

func TestMissingParameterErrorMessage(t *testing.T) {
	err := &MissingParameterError{Fields: []string{"weather", "event"}}
	assert.Equal(t, "missing required parameters: weather, event", err.Error())
}
