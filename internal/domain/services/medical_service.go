package services

import (
	"fmt"

	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/infrastructure/storage"
	Logger "meditrack-http-service/pkg/logger"
)

// InterfaceMedicalService 定义医疗服务目录的服务接口
type InterfaceMedicalService interface {
	CreateService(service *models.MedicalService) error
	GetServiceByID(id uint) (*models.MedicalService, error)
	GetAllServices() ([]models.MedicalService, error)
	GetServicesByType(serviceType string) ([]models.MedicalService, error)
}

// MedicalService 提供医疗服务目录相关的服务
type MedicalService struct {
	Store      storage.Store
	Activities InterfaceActivityService
}

// NewMedicalService 创建医疗服务目录服务
func NewMedicalService(store storage.Store, activities InterfaceActivityService) InterfaceMedicalService {
	return &MedicalService{
		Store:      store,
		Activities: activities,
	}
}

// 1 CreateService 创建医疗服务并追加活动记录
func (s *MedicalService) CreateService(service *models.MedicalService) error {
	if err := s.Store.CreateMedicalService(service); err != nil {
		return err
	}

	if err := s.Activities.Append(
		"Medical service added",
		fmt.Sprintf("New medical service %q has been added", service.Name),
		"fa-hospital",
		"bg-success-50",
	); err != nil {
		Logger.Warning("活动记录追加失败: %v", err)
	}

	return nil
}

// 2 GetServiceByID 根据ID获取医疗服务
func (s *MedicalService) GetServiceByID(id uint) (*models.MedicalService, error) {
	return s.Store.GetMedicalService(id)
}

// 3 GetAllServices 获取全部医疗服务
func (s *MedicalService) GetAllServices() ([]models.MedicalService, error) {
	return s.Store.GetAllMedicalServices()
}

// 4 GetServicesByType 按类型过滤医疗服务
func (s *MedicalService) GetServicesByType(serviceType string) ([]models.MedicalService, error) {
	return s.Store.GetMedicalServicesByType(serviceType)
}
