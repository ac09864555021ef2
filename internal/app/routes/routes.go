package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "meditrack-http-service/docs"
	"meditrack-http-service/internal/app/controllers"
	"meditrack-http-service/internal/app/middleware"
	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/infrastructure/config"
	"meditrack-http-service/internal/infrastructure/storage"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(store storage.Store, cfg *config.Config, redisClient *redis.Client) (*gin.Engine, *container.ServiceContainer) {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With, user-id")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 任何写请求完成后清空响应缓存，保证读己之写
	r.Use(middleware.InvalidateOnWrite())

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(store, cfg, redisClient)
	// 初始化认证中间件
	middleware.InitAuthMiddleware(store, serviceContainer.GetService("jwt").(services.InterfaceJWTService))
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r, serviceContainer
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册无需认证的路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许20个请求，最多突发40个请求
	api.Use(middleware.IPRateLimiter(20, 40))

	// 健康检查路由
	healthController := controllers.NewHealthCheckController(container)
	api.GET("/ping", healthController.Ping)
	api.GET("/health", healthController.Health)

	// 认证路由，签发JWT令牌
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.PathRateLimiter(5, 10)) // 每秒5个请求，最多突发10个
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))

	// 用户注册和登录
	api.POST("/users/register", controllers.HandleUserFunc(container, "register"))
	api.POST("/users/login", controllers.HandleUserFunc(container, "login"))

	// 公开的只读资源，带短期响应缓存
	readCache := middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Second})
	api.GET("/response-teams", readCache, controllers.HandleResponseTeamFunc(container, "getAllTeams"))
	api.GET("/response-teams/available", readCache, controllers.HandleResponseTeamFunc(container, "getAvailableTeams"))
	api.GET("/medical-services", readCache, controllers.HandleMedicalServiceFunc(container, "getAllServices"))
	api.GET("/medical-services/type/:type", readCache, controllers.HandleMedicalServiceFunc(container, "getServicesByType"))
	api.GET("/system-status", readCache, controllers.HandleSystemStatusFunc(container, "getAllStatuses"))
	api.GET("/activities", readCache, controllers.HandleActivityFunc(container, "getAllActivities"))
	api.GET("/stats", readCache, controllers.HandleStatsFunc(container, "getStats"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.Authenticate())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 用户路由
	auth.GET("/users/me", controllers.HandleUserFunc(container, "getMe"))
	auth.PATCH("/users/me", controllers.HandleUserFunc(container, "updateMe"))
	auth.DELETE("/users/:id",
		middleware.RequirePermission(middleware.PermUserDelete),
		controllers.HandleUserFunc(container, "deleteUser"))

	// 紧急请求路由
	auth.POST("/emergency-requests",
		middleware.RequirePermission(middleware.PermEmergencyRequestCreate),
		controllers.HandleEmergencyRequestFunc(container, "createRequest"))
	auth.GET("/emergency-requests",
		middleware.RequirePermission(middleware.PermEmergencyRequestList),
		controllers.HandleEmergencyRequestFunc(container, "getAllRequests"))
	auth.GET("/emergency-requests/me", controllers.HandleEmergencyRequestFunc(container, "getMyRequests"))
	auth.PATCH("/emergency-requests/:id",
		middleware.RequirePermission(middleware.PermEmergencyRequestUpdate),
		controllers.HandleEmergencyRequestFunc(container, "updateRequest"))

	// 响应队伍路由
	auth.POST("/response-teams",
		middleware.RequirePermission(middleware.PermResponseTeamCreate),
		controllers.HandleResponseTeamFunc(container, "createTeam"))
	auth.PATCH("/response-teams/:id",
		middleware.RequirePermission(middleware.PermResponseTeamUpdate),
		controllers.HandleResponseTeamFunc(container, "updateTeam"))

	// 医疗服务路由
	auth.POST("/medical-services",
		middleware.RequirePermission(middleware.PermMedicalServiceCreate),
		controllers.HandleMedicalServiceFunc(container, "createService"))

	// 系统状态路由
	auth.PATCH("/system-status/:id",
		middleware.RequirePermission(middleware.PermSystemStatusUpdate),
		controllers.HandleSystemStatusFunc(container, "updateStatus"))

	// 通知路由
	auth.GET("/notifications", controllers.HandleNotificationFunc(container, "getMyNotifications"))
	auth.PATCH("/notifications/:id/read", controllers.HandleNotificationFunc(container, "markAsRead"))

	// 设置路由
	auth.GET("/settings", controllers.HandleSettingsFunc(container, "getSettings"))
	auth.PATCH("/settings", controllers.HandleSettingsFunc(container, "updateSettings"))
}
