package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/07piyush/wardrobeai/domain"
)

func uniformImage(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestDominantColorsUniformImage(t *testing.T) {
	img := uniformImage(8, 8, color.RGBA{R: 255, A: 255})

	got := DominantColors(img, DefaultClustererConfig())

	require.Len(t, got, 3)
	for _, c := range got {
		assert.Equal(t, domain.RGB{R: 255}, c)
	}
}

func TestDominantColorsDeterministic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}

	first := DominantColors(img, DefaultClustererConfig())
	second := DominantColors(img, DefaultClustererConfig())
	assert.Equal(t, first, second)
}

func TestDominantColorsSeparatesTwoColors(t *testing.T) {
	// Two pixels, two clusters: Lloyd iterations must split them exactly.
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{B: 255, A: 255})

	cfg := DefaultClustererConfig()
	cfg.Clusters = 2
	got := DominantColors(img, cfg)

	require.Len(t, got, 2)
	assert.ElementsMatch(t, []domain.RGB{{R: 255}, {B: 255}}, got)
}

func TestDominantColorsClampsClusterCountToPixels(t *testing.T) {
	img := uniformImage(2, 1, color.RGBA{G: 255, A: 255})

	cfg := DefaultClustererConfig()
	cfg.Clusters = 5
	got := DominantColors(img, cfg)
	assert.Len(t, got, 2)
}

func TestDominantColorsDegenerateInputs(t *testing.T) {
	assert.Nil(t, DominantColors(nil, DefaultClustererConfig()))
	assert.Nil(t, DominantColors(image.NewRGBA(image.Rect(0, 0, 0, 0)), DefaultClustererConfig()))

	cfg := DefaultClustererConfig()
	cfg.Clusters = 0
	assert.Nil(t, DominantColors(uniformImage(2, 2, color.RGBA{A: 255}), cfg))
}
