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

func NewSignupRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	sc := controller.SignupController{
		SignupUsecase: usecase.NewSignupUsecase(ur, timeout),
		Env:           env,
	}
	group.POST("/auth/signup", sc.Signup)
}
