package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Storage driver: "mysql"(默认) 或 "memory"
	StoreDriver string

	// 是否在存储为空时写入演示数据
	SeedDemoData bool

	// Server
	ServerPort string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int
	// 是否启用Redis缓存，关闭时统计读取直接走存储
	RedisEnabled bool

	// JWT Authentication
	JWTSecretKey string
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	// Get environment type (default to LOCAL if not set)
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
	} else {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	return &Config{
		EnvType: envType,

		DBHost:     getEnv(prefix+"DB_HOST", "localhost"),
		DBUser:     getEnv(prefix+"DB_USER", "meditrack"),
		DBPassword: getEnv(prefix+"DB_PASSWORD", ""),
		DBName:     getEnv(prefix+"DB_NAME", "meditrack"),
		DBPort:     getEnv(prefix+"DB_PORT", "3306"),

		StoreDriver:  getEnv("STORE_DRIVER", "mysql"),
		SeedDemoData: getEnvAsBool("SEED_DEMO_DATA", false),

		ServerPort: getEnv(prefix+"SERVER_PORT", getEnv("SERVER_PORT", "8080")),

		RedisHost:    getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "localhost")),
		RedisPort:    getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisDB:      getEnvAsInt("REDIS_DB", 0),
		RedisEnabled: getEnvAsBool("REDIS_ENABLED", false),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "meditrack-secret-key-change-in-production"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true&multiStatements=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as boolean with default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
