package usecase

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"
	"time"

	"github.com/h2non/filetype"
	xdraw "golang.org/x/image/draw"

	"github.com/07piyush/wardrobeai/domain"
	"github.com/07piyush/wardrobeai/storage"
	"github.com/07piyush/wardrobeai/vision"
)

const (
	maxUploadBytes = 10 << 20 // 10MB cap, matching the upload contract
	processingSize = 512      // longest side after the pre-processing fit
	jpegQuality    = 85
)

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

type uploadUsecase struct {
	wardrobeRepository domain.WardrobeRepository
	store              storage.ObjectStore
	extractor          *vision.Extractor
	contextTimeout     time.Duration
}

func NewUploadUsecase(
	wardrobeRepository domain.WardrobeRepository,
	store storage.ObjectStore,
	timeout time.Duration,
) domain.UploadUsecase {
	return &uploadUsecase{
		wardrobeRepository: wardrobeRepository,
		store:              store,
		extractor:          vision.NewExtractor(),
		contextTimeout:     timeout,
	}
}

// ProcessUpload validates the upload, extracts its visual features,
// stores the image and persists the wardrobe record. Validation and
// decode failures are the caller's problem; once the raster decodes, a
// feature record is always produced.
func (u *uploadUsecase) ProcessUpload(ctx context.Context, userID string, filename string, data []byte) (*domain.WardrobeItem, error) {
	ctx, cancel := context.WithTimeout(ctx, u.contextTimeout)
	defer cancel()

	if err := validateUpload(filename, data); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageDecode, err)
	}

	// One aspect-preserving downscale feeds both extraction and storage.
	// A hard square resize would collapse every aspect ratio to 1.0 and
	// defeat the category heuristic.
	raster := fitWithin(img, processingSize)

	record, err := u.extractor.Extract(raster)
	if err != nil {
		return nil, err
	}

	var encoded bytes.Buffer
	if err = jpeg.Encode(&encoded, raster, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode processed image: %w", err)
	}

	key, url, err := u.store.Put(userID, "jpg", encoded.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	item := &domain.WardrobeItem{
		UserID:        userID,
		ImageURL:      url,
		ObjectKey:     key,
		UploadedAt:    time.Now().UTC(),
		FeatureRecord: *record,
	}
	if err = u.wardrobeRepository.Create(ctx, item); err != nil {
		// Keep store and metadata consistent when persistence fails.
		_ = u.store.Delete(key)
		return nil, err
	}
	return item, nil
}

func validateUpload(filename string, data []byte) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedExtensions[ext] {
		return domain.ErrInvalidFileType
	}
	if len(data) > maxUploadBytes {
		return domain.ErrFileTooLarge
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return domain.ErrInvalidFileType
	}
	switch kind.MIME.Value {
	case "image/jpeg", "image/png":
		return nil
	default:
		return domain.ErrInvalidFileType
	}
}

// fitWithin downscales so the longest side is at most max, preserving
// aspect ratio. Smaller images pass through untouched.
func fitWithin(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}

	scale := float64(max) / float64(w)
	if h > w {
		scale = float64(max) / float64(h)
	}
	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
