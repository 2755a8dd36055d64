package vision

import (
	"image"

	"github.com/07piyush/wardrobeai/domain"
)

// DetectRegion returns the bounding rectangle of the largest 8-connected
// foreground component after Otsu binarization. Polarity is inverted so
// dark garments on light backgrounds bind as foreground. A uniform image
// has no separating threshold and yields the zero box, which is a valid
// result.
func DetectRegion(img image.Image) domain.BoundingBox {
	gray, w, h := grayscale(img)
	if w == 0 || h == 0 {
		return domain.BoundingBox{}
	}

	threshold, ok := otsuThreshold(gray)
	if !ok {
		return domain.BoundingBox{}
	}

	// THRESH_BINARY_INV semantics: intensities at or below the threshold
	// are foreground.
	fg := make([]bool, len(gray))
	for i, v := range gray {
		fg[i] = v <= threshold
	}

	return largestComponentBounds(fg, w, h)
}

// grayscale converts to single-channel intensity with BT.601 luma weights.
func grayscale(img image.Image) ([]uint8, int, int) {
	if img == nil {
		return nil, 0, 0
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	gray := make([]uint8, w*h)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			v := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			gray[i] = uint8(v + 0.5)
			i++
		}
	}
	return gray, w, h
}

// otsuThreshold picks the intensity that maximizes between-class variance.
// ok is false when the histogram holds a single intensity: there is no
// foreground/background split to make.
func otsuThreshold(gray []uint8) (uint8, bool) {
	var hist [256]int
	for _, v := range gray {
		hist[v]++
	}

	total := len(gray)
	var sum float64
	for t, n := range hist {
		sum += float64(t) * float64(n)
	}

	var (
		sumBg, weightBg float64
		bestVar         float64
		bestT           int
		found           bool
	)
	for t := 0; t < 256; t++ {
		weightBg += float64(hist[t])
		if weightBg == 0 {
			continue
		}
		weightFg := float64(total) - weightBg
		if weightFg == 0 {
			break
		}
		sumBg += float64(t) * float64(hist[t])
		meanBg := sumBg / weightBg
		meanFg := (sum - sumBg) / weightFg
		between := weightBg * weightFg * (meanBg - meanFg) * (meanBg - meanFg)
		if between > bestVar {
			bestVar = between
			bestT = t
			found = true
		}
	}
	return uint8(bestT), found
}

// largestComponentBounds labels 8-connected foreground components with a
// breadth-first scan in row-major order and returns the bounding rect of
// the one with the largest pixel area.
func largestComponentBounds(fg []bool, w, h int) domain.BoundingBox {
	visited := make([]bool, len(fg))
	queue := make([]int, 0, 64)

	best := domain.BoundingBox{}
	bestArea := 0

	for start := range fg {
		if !fg[start] || visited[start] {
			continue
		}
		minX, minY := start%w, start/w
		maxX, maxY := minX, minY
		area := 0

		visited[start] = true
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			idx := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			area++

			x, y := idx%w, idx/w
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					n := ny*w + nx
					if fg[n] && !visited[n] {
						visited[n] = true
						queue = append(queue, n)
					}
				}
			}
		}

		if area > bestArea {
			bestArea = area
			best = domain.BoundingBox{
				X:      minX,
				Y:      minY,
				Width:  maxX - minX + 1,
				Height: maxY - minY + 1,
			}
		}
	}
	return best
}
