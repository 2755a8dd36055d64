package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/07piyush/wardrobeai/domain"
)

func TestExtractPureRedShirt(t *testing.T) {
	// 200x100: ratio 2.0 reads as shirt; uniform color means no region.
	img := uniformImage(200, 100, color.RGBA{R: 255, A: 255})

	record, err := NewExtractor().Extract(img)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryShirt, record.Category)
	assert.Contains(t, record.Tags, "red")
	assert.LessOrEqual(t, len(record.DominantColors), 3)
	assert.True(t, record.BoundingBox.Empty())
}

func TestExtractCategoryAlwaysFromClosedSet(t *testing.T) {
	valid := map[string]bool{
		domain.CategoryShirt:    true,
		domain.CategoryPants:    true,
		domain.CategoryFullBody: true,
		domain.CategoryUnknown:  true,
	}

	sizes := []struct{ w, h int }{{200, 100}, {100, 200}, {150, 150}, {1, 1}}
	for _, size := range sizes {
		img := uniformImage(size.w, size.h, color.RGBA{R: 90, G: 90, B: 90, A: 255})
		record, err := NewExtractor().Extract(img)
		require.NoError(t, err)
		assert.True(t, valid[record.Category], "category %q for %dx%d", record.Category, size.w, size.h)
	}
}

func TestExtractPartialFeaturesOnUnmatchableColor(t *testing.T) {
	// Mid gray matches no tag rule; the record still carries everything
	// else instead of failing.
	img := uniformImage(150, 150, color.RGBA{R: 120, G: 120, B: 120, A: 255})

	record, err := NewExtractor().Extract(img)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryFullBody, record.Category)
	assert.Empty(t, record.Tags)
	assert.NotNil(t, record.Tags)
	assert.Len(t, record.DominantColors, 3)
}

func TestExtractUndecodableRaster(t *testing.T) {
	_, err := NewExtractor().Extract(nil)
	assert.ErrorIs(t, err, domain.ErrImageDecode)

	_, err = NewExtractor().Extract(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, domain.ErrImageDecode)
}
