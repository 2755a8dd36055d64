package domain

import (
	"context"
	"errors"
)

// Upload validation failures, mapped to 400s by the controller.
var (
	ErrInvalidFileType = errors.New("invalid file type, only PNG and JPEG are supported")
	ErrFileTooLarge    = errors.New("file size exceeds the upload limit")
)

type UploadResponse struct {
	Message string       `json:"message"`
	Item    WardrobeItem `json:"item"`
}

type UploadUsecase interface {
	ProcessUpload(ctx context.Context, userID string, filename string, data []byte) (*WardrobeItem, error)
}
