package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/07piyush/wardrobeai/bootstrap"
	"github.com/07piyush/wardrobeai/domain"
)

type SignupController struct {
	SignupUsecase domain.SignupUsecase
	Env           *bootstrap.Env
}

func (sc *SignupController) Signup(c *gin.Context) {
	var request domain.SignupRequest
	if err := c.ShouldBind(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := sc.SignupUsecase.GetUserByEmail(c, request.Email); err == nil {
		ErrorResponse(c, http.StatusConflict, "user already exists with the given email")
		return
	}

	encrypted, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	user := domain.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: string(encrypted),
	}
	if err = sc.SignupUsecase.Create(c, &user); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	accessToken, err := sc.SignupUsecase.CreateAccessToken(&user, sc.Env.AccessTokenSecret, sc.Env.AccessTokenExpiryHour)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, domain.SignupResponse{AccessToken: accessToken})
}
