package services

import (
	"fmt"

	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/infrastructure/storage"
	Logger "meditrack-http-service/pkg/logger"
)

// InterfaceTeamService 定义响应队伍服务接口
type InterfaceTeamService interface {
	CreateTeam(team *models.ResponseTeam) error
	GetTeamByID(id uint) (*models.ResponseTeam, error)
	GetAllTeams() ([]models.ResponseTeam, error)
	GetAvailableTeams() ([]models.ResponseTeam, error)
	UpdateTeam(id uint, updates map[string]interface{}) (*models.ResponseTeam, error)
}

// TeamService 提供响应队伍相关的服务
type TeamService struct {
	Store      storage.Store
	Stats      InterfaceStatsService
	Activities InterfaceActivityService
}

// NewTeamService 创建响应队伍服务
func NewTeamService(store storage.Store, stats InterfaceStatsService, activities InterfaceActivityService) InterfaceTeamService {
	return &TeamService{
		Store:      store,
		Stats:      stats,
		Activities: activities,
	}
}

// 1 CreateTeam 创建响应队伍，创建后重算统计并追加活动
func (s *TeamService) CreateTeam(team *models.ResponseTeam) error {
	if team.Status == "" {
		team.Status = models.TeamStatusAvailable
	}

	if err := s.Store.CreateResponseTeam(team); err != nil {
		return err
	}

	if _, err := s.Stats.Refresh(); err != nil {
		Logger.Error("响应队伍创建后统计重算失败: %v", err)
	}

	if err := s.Activities.Append(
		"Response team created",
		fmt.Sprintf("New response team %q has been created", team.Name),
		"fa-user-md",
		"bg-primary-100",
	); err != nil {
		Logger.Warning("活动记录追加失败: %v", err)
	}

	return nil
}

// 2 GetTeamByID 根据ID获取响应队伍
func (s *TeamService) GetTeamByID(id uint) (*models.ResponseTeam, error) {
	return s.Store.GetResponseTeam(id)
}

// 3 GetAllTeams 获取全部响应队伍
func (s *TeamService) GetAllTeams() ([]models.ResponseTeam, error) {
	return s.Store.GetAllResponseTeams()
}

// 4 GetAvailableTeams 获取状态为available的响应队伍
func (s *TeamService) GetAvailableTeams() ([]models.ResponseTeam, error) {
	return s.Store.GetAvailableResponseTeams()
}

// 5 UpdateTeam 部分更新响应队伍，队伍数量不变，无需重算统计
func (s *TeamService) UpdateTeam(id uint, updates map[string]interface{}) (*models.ResponseTeam, error) {
	return s.Store.UpdateResponseTeam(id, updates)
}
