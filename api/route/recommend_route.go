package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/07piyush/wardrobeai/api/controller"
	"github.com/07piyush/wardrobeai/bootstrap"
	"github.com/07piyush/wardrobeai/domain"
	"github.com/07piyush/wardrobeai/mongo"
	"github.com/07piyush/wardrobeai/repository"
	"github.com/07piyush/wardrobeai/usecase"
)

func NewRecommendRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	wr := repository.NewWardrobeRepository(db, domain.CollectionWardrobeItem)
	rc := controller.RecommendController{
		RecommendUsecase: usecase.NewRecommendUsecase(wr, timeout),
	}

	// GET /recommend?weather=sunny&event=casual&limit=3
	group.GET("/recommend", rc.Recommend)
}
