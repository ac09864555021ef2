package container

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/infrastructure/config"
	"meditrack-http-service/internal/infrastructure/storage"
	Logger "meditrack-http-service/pkg/logger"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	store  storage.Store
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService   services.InterfaceJWTService
	cacheService services.InterfaceCacheService

	// 业务服务
	userService         services.InterfaceUserService
	emergencyService    services.InterfaceEmergencyService
	teamService         services.InterfaceTeamService
	medicalService      services.InterfaceMedicalService
	systemService       services.InterfaceSystemService
	activityService     services.InterfaceActivityService
	notificationService services.InterfaceNotificationService
	statsService        services.InterfaceStatsService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器，redisClient可以为nil
func NewServiceContainer(store storage.Store, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if store == nil {
		panic("存储为空")
	}
	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接，失败则不使用缓存
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			Logger.Warning("Redis连接测试失败: %v，将不使用Redis缓存", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		store:  store,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	if c.redis != nil {
		c.cacheService = services.NewCacheService(c.redis)
	}

	// 初始化业务服务，统计和活动服务先就绪供其他服务使用
	c.statsService = services.NewStatsService(c.store, c.cacheService)
	c.activityService = services.NewActivityService(c.store)

	c.userService = services.NewUserService(c.store)
	c.emergencyService = services.NewEmergencyService(c.store, c.statsService, c.activityService)
	c.teamService = services.NewTeamService(c.store, c.statsService, c.activityService)
	c.medicalService = services.NewMedicalService(c.store, c.activityService)
	c.systemService = services.NewSystemService(c.store)
	c.notificationService = services.NewNotificationService(c.store)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "store":
		return c.store
	case "jwt":
		return c.jwtService
	case "cache":
		return c.cacheService
	case "user":
		return c.userService
	case "emergency":
		return c.emergencyService
	case "team":
		return c.teamService
	case "medical":
		return c.medicalService
	case "system":
		return c.systemService
	case "activity":
		return c.activityService
	case "notification":
		return c.notificationService
	case "stats":
		return c.statsService
	default:
		return nil
	}
}

// GetStore 获取实体存储
func (c *ServiceContainer) GetStore() storage.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store
}
