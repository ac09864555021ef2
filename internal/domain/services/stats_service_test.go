package services

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/infrastructure/storage"
)

func TestRecomputeStats(t *testing.T) {
	tests := []struct {
		name     string
		requests []models.EmergencyRequest
		teams    []models.ResponseTeam
		want     models.Stats
	}{
		{
			name: "empty collections",
			want: models.Stats{},
		},
		{
			name: "counts by status",
			requests: []models.EmergencyRequest{
				{Status: models.RequestStatusPending},
				{Status: models.RequestStatusPending},
				{Status: models.RequestStatusResolved},
				{Status: models.RequestStatusCritical},
			},
			teams: []models.ResponseTeam{{Name: "a"}, {Name: "b"}},
			want:  models.Stats{ResponseTeams: 2, PendingCases: 2, ResolvedCases: 1, CriticalCases: 1},
		},
		{
			// in_progress和cancelled不计入任何计数
			name: "in_progress and cancelled excluded",
			requests: []models.EmergencyRequest{
				{Status: models.RequestStatusInProgress},
				{Status: models.RequestStatusCancelled},
				{Status: models.RequestStatusPending},
			},
			want: models.Stats{PendingCases: 1},
		},
		{
			// 队伍计数不看状态，offline的队伍照样计入
			name: "team count ignores team status",
			teams: []models.ResponseTeam{
				{Status: models.TeamStatusAvailable},
				{Status: models.TeamStatusOffline},
			},
			want: models.Stats{ResponseTeams: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecomputeStats(tt.requests, tt.teams)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatsServiceRefreshAndGet(t *testing.T) {
	store := storage.NewMemoryStore()
	statsService := NewStatsService(store, nil)

	// 首次写入前读取返回 (nil, nil)
	stats, err := statsService.GetStats()
	require.NoError(t, err)
	assert.Nil(t, stats)

	require.NoError(t, store.CreateEmergencyRequest(&models.EmergencyRequest{UserID: 1, Status: models.RequestStatusPending, Latitude: "0", Longitude: "0"}))
	require.NoError(t, store.CreateEmergencyRequest(&models.EmergencyRequest{UserID: 1, Status: models.RequestStatusCritical, Latitude: "0", Longitude: "0"}))
	require.NoError(t, store.CreateResponseTeam(&models.ResponseTeam{Name: "Team Alpha", Status: models.TeamStatusAvailable}))

	refreshed, err := statsService.Refresh()
	require.NoError(t, err)
	require.NotNil(t, refreshed)
	assert.Equal(t, 1, refreshed.ResponseTeams)
	assert.Equal(t, 1, refreshed.PendingCases)
	assert.Equal(t, 1, refreshed.CriticalCases)
	assert.Equal(t, 0, refreshed.ResolvedCases)

	// 状态流转后重算必须精确反映源集合
	_, err = store.UpdateEmergencyRequest(1, map[string]interface{}{"status": models.RequestStatusResolved})
	require.NoError(t, err)

	refreshed, err = statsService.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 0, refreshed.PendingCases)
	assert.Equal(t, 1, refreshed.ResolvedCases)

	stats, err = statsService.GetStats()
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, refreshed.ResolvedCases, stats.ResolvedCases)
}

func TestStatsServiceWritesThroughCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewCacheService(client)

	store := storage.NewMemoryStore()
	statsService := NewStatsService(store, cache)

	require.NoError(t, store.CreateResponseTeam(&models.ResponseTeam{Name: "Team Alpha"}))
	_, err := statsService.Refresh()
	require.NoError(t, err)

	// Refresh 写穿缓存，后续读取命中缓存
	var cached models.Stats
	require.NoError(t, cache.Get("meditrack:stats:current", &cached))
	assert.Equal(t, 1, cached.ResponseTeams)

	stats, err := statsService.GetStats()
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.ResponseTeams)

	// 缓存过期后回源存储并重新填充
	mr.FastForward(10 * time.Minute)
	stats, err = statsService.GetStats()
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.ResponseTeams)
}
