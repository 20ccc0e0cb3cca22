package controllers

import (
	"github.com/gin-gonic/gin"
	"lifediary/internal/models/request_models"
	"lifediary/internal/services"
	"lifediary/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondList(c, "get_users", users, len(users) == 0)
}

func (uc *UserController) GetOneUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		respondUsage(c, "get_one_user")
		return
	}

	user, err := uc.userService.GetOneUser(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, user)
}

func (uc *UserController) AddUser(c *gin.Context) {
	var req request_models.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, err.Error())
		return
	}

	result, err := uc.userService.RegisterUser(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, result)
}
