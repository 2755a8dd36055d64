package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/07piyush/wardrobeai/domain"
)

type RecommendController struct {
	RecommendUsecase domain.RecommendUsecase
}

// Recommend ranks the caller's wardrobe for the given weather and event.
// An empty wardrobe yields 200 with an empty list; missing parameters
// yield 400 naming every absent field.
func (rc *RecommendController) Recommend(c *gin.Context) {
	userID := c.GetString("x-user-id")
	weather := c.Query("weather")
	event := c.Query("event")

	topN := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			ErrorResponse(c, http.StatusBadRequest, "limit must be a positive number")
			return
		}
		topN = parsed
	}

	recommendations, err := rc.RecommendUsecase.Recommend(c, userID, weather, event, topN)
	if err != nil {
		var missing *domain.MissingParameterError
		if errors.As(err, &missing) {
			ErrorResponse(c, http.StatusBadRequest, missing.Error())
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, recommendations)
}
