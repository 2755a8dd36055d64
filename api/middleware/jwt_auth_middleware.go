package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/07piyush/wardrobeai/domain"
	"github.com/07piyush/wardrobeai/util/tokenutil"
)

func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.ErrorResponse{Message: "not authorized"})
			return
		}

		token := parts[1]
		authorized, err := tokenutil.IsAuthorized(token, secret)
		if err != nil || !authorized {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.ErrorResponse{Message: "not authorized"})
			return
		}

		userID, err := tokenutil.ExtractIDFromToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.ErrorResponse{Message: "not authorized"})
			return
		}
		c.Set("x-user-id", userID)
		c.Next()
	}
}
