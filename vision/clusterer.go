// Package vision implements the garment feature-extraction pipeline:
// clustering-based color extraction, contour-based region detection,
// aspect-ratio category classification and color tag derivation.
package vision

import (
	"image"
	"math"
	"math/rand"

	"github.com/muesli/clusters"

	"github.com/07piyush/wardrobeai/domain"
)

// ClustererConfig controls the k-means color extraction. The seed is
// fixed so that centroid ordering is reproducible for a given pixel
// distribution; test fixtures depend on that.
type ClustererConfig struct {
	Clusters      int
	MaxIterations int
	Seed          int64
}

func DefaultClustererConfig() ClustererConfig {
	return ClustererConfig{
		Clusters:      3,
		MaxIterations: 50,
		Seed:          42,
	}
}

// DominantColors partitions the image's pixels into cfg.Clusters color
// groups and returns the centroid of each group. Centroids are ordered by
// internal cluster index; the order carries no dominance meaning. A
// zero-pixel image yields an empty result, not an error.
func DominantColors(img image.Image, cfg ClustererConfig) []domain.RGB {
	obs := pixelObservations(img)
	if len(obs) == 0 || cfg.Clusters <= 0 {
		return nil
	}

	k := cfg.Clusters
	if k > len(obs) {
		k = len(obs)
	}

	cl := seedClusters(obs, k, cfg.Seed)
	for i := 0; i < cfg.MaxIterations; i++ {
		cl.Reset()
		for _, o := range obs {
			cl[cl.Nearest(o)].Append(o)
		}
		if !recenter(cl) {
			break
		}
	}

	out := make([]domain.RGB, 0, len(cl))
	for _, c := range cl {
		out = append(out, centroidRGB(c.Center))
	}
	return out
}

// pixelObservations flattens the image into an unordered multiset of RGB
// points in [0,255]^3.
func pixelObservations(img image.Image) clusters.Observations {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil
	}
	obs := make(clusters.Observations, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			obs = append(obs, clusters.Coordinates{
				float64(r >> 8),
				float64(g >> 8),
				float64(b >> 8),
			})
		}
	}
	return obs
}

// seedClusters picks k distinct observations as initial centers with a
// private seeded RNG. clusters.New would seed from the global RNG, which
// cannot give per-call determinism.
func seedClusters(obs clusters.Observations, k int, seed int64) clusters.Clusters {
	rng := rand.New(rand.NewSource(seed))
	picks := rng.Perm(len(obs))[:k]

	cl := make(clusters.Clusters, k)
	for i, pick := range picks {
		p := obs[pick].Coordinates()
		center := make(clusters.Coordinates, len(p))
		copy(center, p)
		cl[i].Center = center
	}
	return cl
}

// recenter moves every centroid to the mean of its members and reports
// whether any centroid moved. Empty clusters keep their previous center.
func recenter(cl clusters.Clusters) bool {
	moved := false
	for i := range cl {
		prev := cl[i].Center
		cl[i].Recenter()
		if !sameCenter(prev, cl[i].Center) {
			moved = true
		}
	}
	return moved
}

func sameCenter(a, b clusters.Coordinates) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func centroidRGB(c clusters.Coordinates) domain.RGB {
	if len(c) < 3 {
		return domain.RGB{}
	}
	return domain.RGB{R: clamp8(c[0]), G: clamp8(c[1]), B: clamp8(c[2])}
}

func clamp8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
