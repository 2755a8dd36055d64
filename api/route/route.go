package route

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/07piyush/wardrobeai/api/middleware"
	"github.com/07piyush/wardrobeai/bootstrap"
	"github.com/07piyush/wardrobeai/domain"
	"github.com/07piyush/wardrobeai/mongo"
	"github.com/07piyush/wardrobeai/storage"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, store storage.ObjectStore, engine *gin.Engine) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, domain.SuccessResponse{Message: "welcome to the wardrobeai api"})
	})
	// Stored images are served straight off the object store root.
	engine.Static("/static", env.StorageRoot)

	publicRouter := engine.Group("")
	NewSignupRouter(env, timeout, db, publicRouter)
	NewLoginRouter(env, timeout, db, publicRouter)

	protectedRouter := engine.Group("")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))
	NewUploadRouter(env, timeout, db, store, protectedRouter)
	NewWardrobeRouter(env, timeout, db, store, protectedRouter)
	NewRecommendRouter(env, timeout, db, protectedRouter)
}
