package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/error/response"
	"meditrack-http-service/internal/infrastructure/storage"
)

var (
	authStore  storage.Store
	jwtService services.InterfaceJWTService
)

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(store storage.Store, jwtSvc services.InterfaceJWTService) {
	authStore = store
	jwtService = jwtSvc
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// resolveCallerID 解析调用者身份。优先使用Bearer令牌，
// 其次兼容外部认证协作方注入的user-id头。
// 返回 (0, false) 表示请求未携带任何身份。
func resolveCallerID(c *gin.Context) (uint, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		claims, err := jwtService.ExtractClaims(extractToken(authHeader))
		if err != nil {
			return 0, false
		}
		return claims.UserID, true
	}

	idHeader := c.GetHeader("user-id")
	if idHeader == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(idHeader, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// Authenticate 验证调用者身份并将userID和userType存入上下文。
// 每次请求都重新查询用户角色，不做跨请求缓存。
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := resolveCallerID(c)
		if !ok {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		user, err := authStore.GetUser(callerID)
		if err != nil {
			response.ServerError(c, "Failed to resolve caller identity")
			c.Abort()
			return
		}
		if user == nil {
			response.Unauthorized(c, "User not found")
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("userType", user.UserType)
		c.Next()
	}
}

// CallerID 从上下文读取已认证的调用者ID
func CallerID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CallerType 从上下文读取已认证的调用者角色
func CallerType(c *gin.Context) string {
	if v, ok := c.Get("userType"); ok {
		if t, ok := v.(string); ok {
			return t
		}
	}
	return ""
}
