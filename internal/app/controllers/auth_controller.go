package controllers

import (
	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/error/code"
	"meditrack-http-service/internal/error/response"
)

// AuthController 认证控制器，负责签发JWT令牌
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// TokenRequest 令牌签发请求
type TokenRequest struct {
	Username string `json:"username" binding:"required" example:"demo_user"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. Login 签发JWT令牌
// @Summary      签发JWT令牌
// @Description  校验用户名与密码，签发带24小时有效期的Bearer令牌
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body TokenRequest true "登录信息"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req TokenRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
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

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(user)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to generate token")
		return
	}

	response.Success(c.Ctx, gin.H{
		"token": token,
		"user":  userSummary(user),
	})
}
