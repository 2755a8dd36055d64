package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/07piyush/wardrobeai/domain"
)

type WardrobeController struct {
	WardrobeUsecase domain.WardrobeUsecase
}

func (wc *WardrobeController) Fetch(c *gin.Context) {
	userID := c.GetString("x-user-id")

	items, err := wc.WardrobeUsecase.Fetch(c, userID)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

func (wc *WardrobeController) Delete(c *gin.Context) {
	userID := c.GetString("x-user-id")
	itemID := c.Param("id")

	if err := wc.WardrobeUsecase.Delete(c, userID, itemID); err != nil {
		ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, domain.SuccessResponse{Message: "wardrobe item deleted"})
}
