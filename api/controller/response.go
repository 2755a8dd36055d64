package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/07piyush/wardrobeai/domain"
)

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, domain.ErrorResponse{Message: message})
}
