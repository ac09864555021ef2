package storage

import (
	"meditrack-http-service/internal/domain/models"
)

// Store 定义实体存储的统一契约。存在两个实现：
// GormStore 持久化到MySQL，MemoryStore 用于测试和演示模式，
// 在启动时通过 STORE_DRIVER 选择。
//
// 约定：按ID查询不到记录时返回 (nil, nil) 而不是错误，调用方必须检查；
// 非nil的error只表示基础设施故障。Update按字段合并部分更新，
// 合并键为数据库列名，带updatedAt的实体在每次更新时刷新该时间戳。
type Store interface {
	// AutoMigrate 同步表结构，内存实现为空操作
	AutoMigrate() error

	// Users
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) (bool, error)
	CountUsers() (int64, error)

	// Emergency requests
	GetEmergencyRequest(id uint) (*models.EmergencyRequest, error)
	GetEmergencyRequestsByUserID(userID uint) ([]models.EmergencyRequest, error)
	GetAllEmergencyRequests() ([]models.EmergencyRequest, error)
	CreateEmergencyRequest(req *models.EmergencyRequest) error
	UpdateEmergencyRequest(id uint, updates map[string]interface{}) (*models.EmergencyRequest, error)

	// Response teams
	GetResponseTeam(id uint) (*models.ResponseTeam, error)
	GetAllResponseTeams() ([]models.ResponseTeam, error)
	GetAvailableResponseTeams() ([]models.ResponseTeam, error)
	CreateResponseTeam(team *models.ResponseTeam) error
	UpdateResponseTeam(id uint, updates map[string]interface{}) (*models.ResponseTeam, error)

	// Medical services
	GetMedicalService(id uint) (*models.MedicalService, error)
	GetAllMedicalServices() ([]models.MedicalService, error)
	GetMedicalServicesByType(serviceType string) ([]models.MedicalService, error)
	CreateMedicalService(service *models.MedicalService) error

	// System status
	GetSystemStatus(id uint) (*models.SystemStatus, error)
	GetAllSystemStatuses() ([]models.SystemStatus, error)
	CreateSystemStatus(status *models.SystemStatus) error
	UpdateSystemStatus(id uint, updates map[string]interface{}) (*models.SystemStatus, error)

	// Activities，列表按时间倒序
	GetActivity(id uint) (*models.Activity, error)
	GetAllActivities() ([]models.Activity, error)
	CreateActivity(activity *models.Activity) error

	// Notifications，列表按创建时间倒序
	GetNotification(id uint) (*models.Notification, error)
	GetNotificationsByUserID(userID uint) ([]models.Notification, error)
	CreateNotification(notification *models.Notification) error
	MarkNotificationRead(id uint) (*models.Notification, error)

	// Settings，每个用户至多一条
	GetUserSettings(userID uint) (*models.Setting, error)
	CreateUserSettings(setting *models.Setting) error
	UpdateUserSettings(userID uint, updates map[string]interface{}) (*models.Setting, error)

	// Stats 单例，ReplaceStats整体覆盖
	GetStats() (*models.Stats, error)
	ReplaceStats(stats *models.Stats) (*models.Stats, error)
}
