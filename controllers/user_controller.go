package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	UserSvc *services.UserService
	log     *zap.Logger
}

func NewUserController(svc *services.UserService, log *zap.Logger) *UserController {
	return &UserController{UserSvc: svc, log: log.Named("users")}
}

func (uc *UserController) GetUsers(c *gin.Context) {
	var f services.UserFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		bindError(c, err)
		return
	}

	users, err := uc.UserSvc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.UserSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var in services.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	user, err := uc.UserSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	var in services.UpdateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	user, err := uc.UserSvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangePassword handles PUT /api/users/password/:id.
func (uc *UserController) ChangePassword(c *gin.Context) {
	var in services.ChangePasswordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	if err := uc.UserSvc.ChangePassword(c.Request.Context(), c.Param("id"), in); err != nil {
		respondError(c, uc.log, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Password updated successfully")
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	if err := uc.UserSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, uc.log, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "User removed")
}
