package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"meditrack-http-service/internal/domain/models"
)

// GormStore 基于GORM/MySQL的持久化存储实现
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore 创建持久化存储
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// AutoMigrate 同步所有实体表结构
func (s *GormStore) AutoMigrate() error {
	return s.DB.AutoMigrate(
		&models.User{},
		&models.EmergencyRequest{},
		&models.ResponseTeam{},
		&models.MedicalService{},
		&models.SystemStatus{},
		&models.Activity{},
		&models.Notification{},
		&models.Setting{},
		&models.Stats{},
	)
}

// first 统一的按条件单条查询，未命中返回 (nil, nil)
func first[T any](db *gorm.DB, conds ...interface{}) (*T, error) {
	var record T
	if err := db.First(&record, conds...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Users

func (s *GormStore) GetUser(id uint) (*models.User, error) {
	return first[models.User](s.DB, id)
}

func (s *GormStore) GetUserByUsername(username string) (*models.User, error) {
	return first[models.User](s.DB.Where("username = ?", username))
}

func (s *GormStore) CreateUser(user *models.User) error {
	return s.DB.Create(user).Error
}

func (s *GormStore) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil || user == nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetUser(id)
}

func (s *GormStore) DeleteUser(id uint) (bool, error) {
	res := s.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) CountUsers() (int64, error) {
	var count int64
	err := s.DB.Model(&models.User{}).Count(&count).Error
	return count, err
}

// Emergency requests

func (s *GormStore) GetEmergencyRequest(id uint) (*models.EmergencyRequest, error) {
	return first[models.EmergencyRequest](s.DB, id)
}

func (s *GormStore) GetEmergencyRequestsByUserID(userID uint) ([]models.EmergencyRequest, error) {
	var requests []models.EmergencyRequest
	err := s.DB.Where("user_id = ?", userID).Order("id").Find(&requests).Error
	return requests, err
}

func (s *GormStore) GetAllEmergencyRequests() ([]models.EmergencyRequest, error) {
	var requests []models.EmergencyRequest
	err := s.DB.Order("id").Find(&requests).Error
	return requests, err
}

func (s *GormStore) CreateEmergencyRequest(req *models.EmergencyRequest) error {
	return s.DB.Create(req).Error
}

func (s *GormStore) UpdateEmergencyRequest(id uint, updates map[string]interface{}) (*models.EmergencyRequest, error) {
	req, err := s.GetEmergencyRequest(id)
	if err != nil || req == nil {
		return nil, err
	}
	if len(updates) > 0 {
		// GORM的Updates会刷新updated_at
		if err := s.DB.Model(req).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetEmergencyRequest(id)
}

// Response teams

func (s *GormStore) GetResponseTeam(id uint) (*models.ResponseTeam, error) {
	return first[models.ResponseTeam](s.DB, id)
}

func (s *GormStore) GetAllResponseTeams() ([]models.ResponseTeam, error) {
	var teams []models.ResponseTeam
	err := s.DB.Order("id").Find(&teams).Error
	return teams, err
}

func (s *GormStore) GetAvailableResponseTeams() ([]models.ResponseTeam, error) {
	var teams []models.ResponseTeam
	err := s.DB.Where("status = ?", models.TeamStatusAvailable).Order("id").Find(&teams).Error
	return teams, err
}

func (s *GormStore) CreateResponseTeam(team *models.ResponseTeam) error {
	return s.DB.Create(team).Error
}

func (s *GormStore) UpdateResponseTeam(id uint, updates map[string]interface{}) (*models.ResponseTeam, error) {
	team, err := s.GetResponseTeam(id)
	if err != nil || team == nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.Model(team).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetResponseTeam(id)
}

// Medical services

func (s *GormStore) GetMedicalService(id uint) (*models.MedicalService, error) {
	return first[models.MedicalService](s.DB, id)
}

func (s *GormStore) GetAllMedicalServices() ([]models.MedicalService, error) {
	var services []models.MedicalService
	err := s.DB.Order("id").Find(&services).Error
	return services, err
}

func (s *GormStore) GetMedicalServicesByType(serviceType string) ([]models.MedicalService, error) {
	var services []models.MedicalService
	err := s.DB.Where("type = ?", serviceType).Order("id").Find(&services).Error
	return services, err
}

func (s *GormStore) CreateMedicalService(service *models.MedicalService) error {
	return s.DB.Create(service).Error
}

// System status

func (s *GormStore) GetSystemStatus(id uint) (*models.SystemStatus, error) {
	return first[models.SystemStatus](s.DB, id)
}

func (s *GormStore) GetAllSystemStatuses() ([]models.SystemStatus, error) {
	var statuses []models.SystemStatus
	err := s.DB.Order("id").Find(&statuses).Error
	return statuses, err
}

func (s *GormStore) CreateSystemStatus(status *models.SystemStatus) error {
	return s.DB.Create(status).Error
}

func (s *GormStore) UpdateSystemStatus(id uint, updates map[string]interface{}) (*models.SystemStatus, error) {
	status, err := s.GetSystemStatus(id)
	if err != nil || status == nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.Model(status).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetSystemStatus(id)
}

// Activities

func (s *GormStore) GetActivity(id uint) (*models.Activity, error) {
	return first[models.Activity](s.DB, id)
}

func (s *GormStore) GetAllActivities() ([]models.Activity, error) {
	var activities []models.Activity
	err := s.DB.Order("timestamp DESC, id DESC").Find(&activities).Error
	return activities, err
}

func (s *GormStore) CreateActivity(activity *models.Activity) error {
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now()
	}
	return s.DB.Create(activity).Error
}

// Notifications

func (s *GormStore) GetNotification(id uint) (*models.Notification, error) {
	return first[models.Notification](s.DB, id)
}

func (s *GormStore) GetNotificationsByUserID(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.DB.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&notifications).Error
	return notifications, err
}

func (s *GormStore) CreateNotification(notification *models.Notification) error {
	return s.DB.Create(notification).Error
}

func (s *GormStore) MarkNotificationRead(id uint) (*models.Notification, error) {
	notification, err := s.GetNotification(id)
	if err != nil || notification == nil {
		return nil, err
	}
	if err := s.DB.Model(notification).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	return s.GetNotification(id)
}

// Settings

func (s *GormStore) GetUserSettings(userID uint) (*models.Setting, error) {
	return first[models.Setting](s.DB.Where("user_id = ?", userID))
}

func (s *GormStore) CreateUserSettings(setting *models.Setting) error {
	return s.DB.Create(setting).Error
}

func (s *GormStore) UpdateUserSettings(userID uint, updates map[string]interface{}) (*models.Setting, error) {
	setting, err := s.GetUserSettings(userID)
	if err != nil || setting == nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.Model(setting).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetUserSettings(userID)
}

// Stats

func (s *GormStore) GetStats() (*models.Stats, error) {
	return first[models.Stats](s.DB.Order("id"))
}

func (s *GormStore) ReplaceStats(stats *models.Stats) (*models.Stats, error) {
	existing, err := s.GetStats()
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := s.DB.Create(stats).Error; err != nil {
			return nil, err
		}
		return stats, nil
	}
	stats.ID = existing.ID
	if err := s.DB.Model(existing).Updates(map[string]interface{}{
		"response_teams": stats.ResponseTeams,
		"resolved_cases": stats.ResolvedCases,
		"pending_cases":  stats.PendingCases,
		"critical_cases": stats.CriticalCases,
	}).Error; err != nil {
		return nil, err
	}
	return s.GetStats()
}
