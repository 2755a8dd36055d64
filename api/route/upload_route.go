package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/07piyush/wardrobeai/api/controller"
	"github.com/07piyush/wardrobeai/bootstrap"
	"github.com/07piyush/wardrobeai/domain"
	"github.com/07piyush/wardrobeai/mongo"
	"github.com/07piyush/wardrobeai/repository"
	"github.com/07piyush/wardrobeai/storage"
	"github.com/07piyush/wardrobeai/usecase"
)

func NewUploadRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, store storage.ObjectStore, group *gin.RouterGroup) {
	wr := repository.NewWardrobeRepository(db, domain.CollectionWardrobeItem)
	uc := controller.UploadController{
		UploadUsecase: usecase.NewUploadUsecase(wr, store, timeout),
	}
	group.POST("/wardrobe/upload", uc.Upload)
}
