package services

import (
	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/infrastructure/storage"
)

// InterfaceSystemService 定义系统状态指示器服务接口
type InterfaceSystemService interface {
	GetStatusByID(id uint) (*models.SystemStatus, error)
	GetAllStatuses() ([]models.SystemStatus, error)
	UpdateStatus(id uint, updates map[string]interface{}) (*models.SystemStatus, error)
}

// SystemService 提供系统组件运行状态相关的服务
type SystemService struct {
	Store storage.Store
}

// NewSystemService 创建系统状态服务
func NewSystemService(store storage.Store) InterfaceSystemService {
	return &SystemService{Store: store}
}

// GetStatusByID 根据ID获取状态指示器
func (s *SystemService) GetStatusByID(id uint) (*models.SystemStatus, error) {
	return s.Store.GetSystemStatus(id)
}

// GetAllStatuses 获取全部状态指示器
func (s *SystemService) GetAllStatuses() ([]models.SystemStatus, error) {
	return s.Store.GetAllSystemStatuses()
}

// UpdateStatus 部分更新状态指示器，ID不存在时返回 (nil, nil)
func (s *SystemService) UpdateStatus(id uint, updates map[string]interface{}) (*models.SystemStatus, error) {
	return s.Store.UpdateSystemStatus(id, updates)
}
