package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/app/middleware"
	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/error/code"
	"meditrack-http-service/internal/error/response"
)

// InterfaceUserController 定义用户控制器接口
type InterfaceUserController interface {
	Register()
	Login()
	GetMe()
	UpdateMe()
	DeleteUser()
}

// UserController 用户控制器
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController 创建一个新的用户控制器
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterUserRequest 用户注册请求
type RegisterUserRequest struct {
	Username     string `json:"username" binding:"required" example:"demo_user"`
	Password     string `json:"password" binding:"required" example:"password123"`
	Email        string `json:"email" binding:"required,email" example:"demo@example.com"`
	FullName     string `json:"fullName" binding:"required" example:"Demo User"`
	UserType     string `json:"userType" binding:"omitempty,oneof=user admin response_team" example:"user"`
	Phone        string `json:"phone" example:"555-123-4567"`
	ProfilePhoto string `json:"profilePhoto" example:""`
}

// LoginRequest 用户登录请求
type LoginRequest struct {
	Username string `json:"username" example:"demo_user"`
	Password string `json:"password" example:"password123"`
}

// UpdateUserRequest 更新当前用户资料请求，所有字段可选
type UpdateUserRequest struct {
	Email        *string `json:"email" binding:"omitempty,email" example:"new@example.com"`
	FullName     *string `json:"fullName" example:"New Name"`
	Phone        *string `json:"phone" example:"555-987-6543"`
	ProfilePhoto *string `json:"profilePhoto" example:""`
}

// HandleUserFunc 返回一个处理用户请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "getMe":
			controller.GetMe()
		case "updateMe":
			controller.UpdateMe()
		case "deleteUser":
			controller.DeleteUser()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// userSummary 注册/登录响应中的用户摘要，不包含密码
func userSummary(user *models.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"fullName": user.FullName,
		"userType": user.UserType,
	}
}

// userProfile 当前用户详情，比摘要多出联系方式字段
func userProfile(user *models.User) gin.H {
	return gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"fullName":     user.FullName,
		"userType":     user.UserType,
		"profilePhoto": user.ProfilePhoto,
		"phone":        user.Phone,
	}
}

// 1. Register 注册新用户
// @Summary      注册新用户
// @Description  创建用户账户并初始化默认设置
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body RegisterUserRequest true "注册信息"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      409  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /users/register [post]
func (c *UserController) Register() {
	var req RegisterUserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	user := &models.User{
		Username:     req.Username,
		Password:     req.Password,
		Email:        req.Email,
		FullName:     req.FullName,
		UserType:     req.UserType,
		Phone:        req.Phone,
		ProfilePhoto: req.ProfilePhoto,
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.Register(user); err != nil {
		if err == services.ErrUsernameTaken {
			response.Fail(c.Ctx, code.ErrUsernameTaken)
			return
		}
		response.ServerError(c.Ctx, "Failed to register user")
		return
	}

	response.Created(c.Ctx, userSummary(user))
}

// 2. Login 用户登录
// @Summary      用户登录
// @Description  校验用户名与密码，返回用户摘要
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Router       /users/login [post]
func (c *UserController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Username and password are required")
		return
	}
	if req.Username == "" || req.Password == "" {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Username and password are required")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.Authenticate(req.Username, req.Password)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to login")
		return
	}
	if user == nil {
		response.Fail(c.Ctx, code.ErrInvalidCredentials)
		return
	}

	response.Success(c.Ctx, userSummary(user))
}

// 3. GetMe 获取当前用户
// @Summary      获取当前用户
// @Description  返回认证调用者的完整资料
// @Tags         User
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /users/me [get]
// @Security     BearerAuth
func (c *UserController) GetMe() {
	userID := middleware.CallerID(c.Ctx)

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(userID)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to get user")
		return
	}
	if user == nil {
		response.Fail(c.Ctx, code.ErrUserNotFound)
		return
	}

	response.Success(c.Ctx, userProfile(user))
}

// 4. UpdateMe 更新当前用户资料
// @Summary      更新当前用户资料
// @Description  部分更新认证调用者的资料字段
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body UpdateUserRequest true "要更新的字段"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /users/me [patch]
// @Security     BearerAuth
func (c *UserController) UpdateMe() {
	userID := middleware.CallerID(c.Ctx)

	var req UpdateUserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.ProfilePhoto != nil {
		updates["profile_photo"] = *req.ProfilePhoto
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.UpdateUser(userID, updates)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to update user")
		return
	}
	if user == nil {
		response.Fail(c.Ctx, code.ErrUserNotFound)
		return
	}

	response.Success(c.Ctx, userProfile(user))
}

// 5. DeleteUser 删除用户（仅管理员）
// @Summary      删除用户
// @Description  根据ID删除用户账户
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (c *UserController) DeleteUser() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Invalid user ID")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	deleted, err := userService.DeleteUser(uint(id))
	if err != nil {
		response.ServerError(c.Ctx, "Failed to delete user")
		return
	}
	if !deleted {
		response.Fail(c.Ctx, code.ErrUserNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{
		"id":      uint(id),
		"deleted": true,
	})
}
