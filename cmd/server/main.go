// @title           MediTrack HTTP Service API
// @version         1.0
// @description     Emergency assistance reporting and tracking backend
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@meditrack.example.com

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	redis "github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"meditrack-http-service/internal/app/routes"
	"meditrack-http-service/internal/domain/services"
	"meditrack-http-service/internal/domain/services/container"
	"meditrack-http-service/internal/infrastructure/config"
	"meditrack-http-service/internal/infrastructure/database"
	"meditrack-http-service/internal/infrastructure/storage"
	Logger "meditrack-http-service/pkg/logger"
)

func main() {
	// 设置最大处理器数量，提高并发性能
	runtime.GOMAXPROCS(runtime.NumCPU())

	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 按配置选择存储驱动
	store, pool, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("初始化存储失败: %v", err)
	}

	// 同步表结构
	if err := store.AutoMigrate(); err != nil {
		log.Fatalf("自动迁移失败: %v", err)
	}

	// 可选的Redis缓存客户端
	redisClient := buildRedisClient(cfg)

	// 初始化路由和服务容器
	r, serviceContainer := routes.SetupRouter(store, cfg, redisClient)

	// 存储为空时写入演示数据
	if cfg.SeedDemoData {
		seedIfEmpty(store, serviceContainer)
	}

	// 打印系统信息
	printSystemInfo(pool)

	// 启动服务器 - 监听所有接口(0.0.0.0)而不是只监听localhost
	port := cfg.ServerPort
	Logger.Info("服务器启动在: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// buildStore 根据 STORE_DRIVER 构造存储实现。
// memory 模式不需要数据库，用于演示和本地调试。
func buildStore(cfg *config.Config) (storage.Store, *database.ConnectionPool, error) {
	if cfg.StoreDriver == "memory" {
		Logger.Info("使用内存存储驱动")
		return storage.NewMemoryStore(), nil, nil
	}

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("无法创建数据库连接池: %w", err)
	}
	return storage.NewGormStore(pool.GetDB()), pool, nil
}

// buildRedisClient 构造Redis客户端，未启用或连接失败时返回nil
func buildRedisClient(cfg *config.Config) *redis.Client {
	if !cfg.RedisEnabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})
	return client
}

// seedIfEmpty 在用户表为空时写入演示数据，并重算统计单例
func seedIfEmpty(store storage.Store, serviceContainer *container.ServiceContainer) {
	count, err := store.CountUsers()
	if err != nil {
		Logger.Error("检查用户数量失败: %v", err)
		return
	}
	if count > 0 {
		return
	}

	if err := storage.SeedDemoData(store); err != nil {
		Logger.Error("写入演示数据失败: %v", err)
		return
	}

	// 演示数据不直接写统计行，统一从两个集合重算
	statsService := serviceContainer.GetService("stats").(services.InterfaceStatsService)
	if _, err := statsService.Refresh(); err != nil {
		Logger.Warning("重算统计失败: %v", err)
	}

	Logger.Info("已写入演示数据")
}

// printSystemInfo 打印系统信息
func printSystemInfo(pool *database.ConnectionPool) {
	if pool != nil {
		stats, err := pool.Stats()
		if err == nil {
			log.Printf("数据库连接池状态: %+v", stats)
		}
	}

	log.Printf("系统CPU核心数: %d", runtime.NumCPU())
	log.Printf("当前Go协程数: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("系统内存使用: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
