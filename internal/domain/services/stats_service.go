package services

import (
	"time"

	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/infrastructure/storage"
	Logger "meditrack-http-service/pkg/logger"
)

// statsCacheKey Redis中统计单例的缓存键
const statsCacheKey = "meditrack:stats:current"

// statsCacheTTL 缓存过期时间，Refresh会同步覆盖，过期只是兜底
const statsCacheTTL = 5 * time.Minute

// RecomputeStats 从两个源集合完整重算统计单例。
// in_progress和cancelled状态不计入任何计数。
// 纯函数，统计值必须始终等于对源集合的精确重算结果。
func RecomputeStats(requests []models.EmergencyRequest, teams []models.ResponseTeam) models.Stats {
	stats := models.Stats{ResponseTeams: len(teams)}
	for _, req := range requests {
		switch req.Status {
		case models.RequestStatusPending:
			stats.PendingCases++
		case models.RequestStatusResolved:
			stats.ResolvedCases++
		case models.RequestStatusCritical:
			stats.CriticalCases++
		}
	}
	return stats
}

// InterfaceStatsService 定义统计服务接口
type InterfaceStatsService interface {
	GetStats() (*models.Stats, error)
	Refresh() (*models.Stats, error)
}

// StatsService 维护统计单例：每次紧急请求或响应队伍变更后，
// 重新扫描两个集合并整体覆盖统计行
type StatsService struct {
	Store storage.Store
	Cache InterfaceCacheService
}

// NewStatsService 创建统计服务，cache可以为nil
func NewStatsService(store storage.Store, cache InterfaceCacheService) InterfaceStatsService {
	return &StatsService{Store: store, Cache: cache}
}

// GetStats 读取统计单例，优先走缓存，未写入过时返回 (nil, nil)
func (s *StatsService) GetStats() (*models.Stats, error) {
	if s.Cache != nil {
		var cached models.Stats
		if err := s.Cache.Get(statsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.Store.GetStats()
	if err != nil || stats == nil {
		return stats, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(statsCacheKey, stats, statsCacheTTL); err != nil {
			Logger.Warning("统计缓存写入失败: %v", err)
		}
	}
	return stats, nil
}

// Refresh 重算并覆盖统计单例，同时写穿缓存
func (s *StatsService) Refresh() (*models.Stats, error) {
	requests, err := s.Store.GetAllEmergencyRequests()
	if err != nil {
		return nil, err
	}
	teams, err := s.Store.GetAllResponseTeams()
	if err != nil {
		return nil, err
	}

	stats := RecomputeStats(requests, teams)
	replaced, err := s.Store.ReplaceStats(&stats)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(statsCacheKey, replaced, statsCacheTTL); err != nil {
			Logger.Warning("统计缓存写入失败: %v", err)
		}
	}
	return replaced, nil
}
