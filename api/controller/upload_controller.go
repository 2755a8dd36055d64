package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/07piyush/wardrobeai/domain"
)

type UploadController struct {
	UploadUsecase domain.UploadUsecase
}

// Upload accepts one multipart image, runs feature extraction and
// persists the resulting wardrobe item.
func (uc *UploadController) Upload(c *gin.Context) {
	userID := c.GetString("x-user-id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "missing file field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	item, err := uc.UploadUsecase.ProcessUpload(c, userID, fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFileType),
			errors.Is(err, domain.ErrFileTooLarge),
			errors.Is(err, domain.ErrImageDecode):
			ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, domain.UploadResponse{
		Message: "image uploaded and processed successfully",
		Item:    *item,
	})
}
