package services

import (
	"fmt"

	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/infrastructure/storage"
	Logger "meditrack-http-service/pkg/logger"
)

// InterfaceEmergencyService 定义紧急请求服务接口
type InterfaceEmergencyService interface {
	CreateRequest(req *models.EmergencyRequest) error
	GetRequestByID(id uint) (*models.EmergencyRequest, error)
	GetAllRequests() ([]models.EmergencyRequest, error)
	GetRequestsByUserID(userID uint) ([]models.EmergencyRequest, error)
	UpdateRequest(id uint, updates map[string]interface{}) (*models.EmergencyRequest, error)
}

// EmergencyService 提供紧急求助请求相关的服务。
// 每次创建或更新后同步重算统计单例并追加活动记录，
// 两者都不会让已提交的主操作失败。
type EmergencyService struct {
	Store      storage.Store
	Stats      InterfaceStatsService
	Activities InterfaceActivityService
}

// NewEmergencyService 创建紧急请求服务
func NewEmergencyService(store storage.Store, stats InterfaceStatsService, activities InterfaceActivityService) InterfaceEmergencyService {
	return &EmergencyService{
		Store:      store,
		Stats:      stats,
		Activities: activities,
	}
}

// 1 CreateRequest 创建紧急请求
func (s *EmergencyService) CreateRequest(req *models.EmergencyRequest) error {
	if req.Status == "" {
		req.Status = models.RequestStatusPending
	}

	if err := s.Store.CreateEmergencyRequest(req); err != nil {
		return err
	}

	if _, err := s.Stats.Refresh(); err != nil {
		Logger.Error("紧急请求创建后统计重算失败: %v", err)
	}

	if err := s.Activities.Append(
		"Emergency request created",
		fmt.Sprintf("Emergency request #EM-%d has been created", req.ID),
		"fa-exclamation-circle",
		"bg-danger-50",
	); err != nil {
		Logger.Warning("活动记录追加失败: %v", err)
	}

	return nil
}

// 2 GetRequestByID 根据ID获取紧急请求
func (s *EmergencyService) GetRequestByID(id uint) (*models.EmergencyRequest, error) {
	return s.Store.GetEmergencyRequest(id)
}

// 3 GetAllRequests 获取全部紧急请求
func (s *EmergencyService) GetAllRequests() ([]models.EmergencyRequest, error) {
	return s.Store.GetAllEmergencyRequests()
}

// 4 GetRequestsByUserID 获取指定用户的紧急请求
func (s *EmergencyService) GetRequestsByUserID(userID uint) ([]models.EmergencyRequest, error) {
	return s.Store.GetEmergencyRequestsByUserID(userID)
}

// 5 UpdateRequest 部分更新紧急请求，ID不存在时返回 (nil, nil)
func (s *EmergencyService) UpdateRequest(id uint, updates map[string]interface{}) (*models.EmergencyRequest, error) {
	updated, err := s.Store.UpdateEmergencyRequest(id, updates)
	if err != nil || updated == nil {
		return updated, err
	}

	if _, err := s.Stats.Refresh(); err != nil {
		Logger.Error("紧急请求更新后统计重算失败: %v", err)
	}

	if err := s.Activities.Append(
		"Emergency request updated",
		fmt.Sprintf("Emergency request #EM-%d has been updated to %s", updated.ID, updated.Status),
		"fa-check-circle",
		"bg-success-50",
	); err != nil {
		Logger.Warning("活动记录追加失败: %v", err)
	}

	return updated, nil
}
