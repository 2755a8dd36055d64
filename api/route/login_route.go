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

func NewLoginRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	lc := controller.LoginController{
		LoginUsecase: usecase.NewLoginUsecase(ur, timeout),
		Env:          env,
	}
	group.POST("/auth/login", lc.Login)
}
