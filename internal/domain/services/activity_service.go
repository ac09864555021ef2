package services

import (
	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/infrastructure/storage"
)

// InterfaceActivityService 定义活动日志服务接口
type InterfaceActivityService interface {
	GetAllActivities() ([]models.Activity, error)
	Append(title, description, icon, iconBg string) error
}

// ActivityService 提供只追加的系统活动日志
type ActivityService struct {
	Store storage.Store
}

// NewActivityService 创建活动日志服务
func NewActivityService(store storage.Store) InterfaceActivityService {
	return &ActivityService{Store: store}
}

// GetAllActivities 按时间倒序返回全部活动
func (s *ActivityService) GetAllActivities() ([]models.Activity, error) {
	return s.Store.GetAllActivities()
}

// Append 追加一条活动记录。创建类端点的活动追加是尽力而为的，
// 失败由调用方记录日志，不回滚主操作。
func (s *ActivityService) Append(title, description, icon, iconBg string) error {
	return s.Store.CreateActivity(&models.Activity{
		Title:       title,
		Description: description,
		Icon:        icon,
		IconBg:      iconBg,
	})
}
