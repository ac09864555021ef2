package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/infrastructure/config"
	"meditrack-http-service/internal/infrastructure/storage"
)

// newTestServer 构造一个基于内存存储的完整路由
func newTestServer(t *testing.T) (*gin.Engine, storage.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecretKey: "test-secret",
		ServerPort:   "0",
		StoreDriver:  "memory",
	}
	store := storage.NewMemoryStore()
	r, _ := SetupRouter(store, cfg, nil)
	return r, store
}

// doJSON 发送一个JSON请求并返回响应记录器
func doJSON(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerUser 注册一个指定角色的用户并返回其ID
func registerUser(t *testing.T, r *gin.Engine, username, userType string) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/users/register", gin.H{
		"username": username,
		"password": "password123",
		"email":    username + "@example.com",
		"fullName": "Test " + username,
		"userType": userType,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created.ID
}

func asUser(id uint) map[string]string {
	return map[string]string{"user-id": fmt.Sprintf("%d", id)}
}

func TestUserRegisterLoginAndProfile(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/users/register", gin.H{
		"username": "demo_user",
		"password": "password123",
		"email":    "demo@example.com",
		"fullName": "Demo User",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "demo_user", created["username"])
	assert.Equal(t, "user", created["userType"])
	// 响应中绝不出现密码
	assert.NotContains(t, w.Body.String(), "password")

	// 用户名冲突
	w = doJSON(r, http.MethodPost, "/api/users/register", gin.H{
		"username": "demo_user",
		"password": "other",
		"email":    "other@example.com",
		"fullName": "Other",
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Username already exists"}`, w.Body.String())

	// 缺字段的注册返回逐字段校验错误
	w = doJSON(r, http.MethodPost, "/api/users/register", gin.H{"username": "x"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var validation struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &validation))
	assert.Equal(t, "Validation failed", validation.Message)
	assert.NotEmpty(t, validation.Errors)

	// 登录
	w = doJSON(r, http.MethodPost, "/api/users/login", gin.H{
		"username": "demo_user",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/users/login", gin.H{
		"username": "demo_user",
		"password": "wrong",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/users/login", gin.H{"username": "demo_user"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Username and password are required"}`, w.Body.String())

	// 当前用户资料
	userID := uint(1)
	w = doJSON(r, http.MethodGet, "/api/users/me", nil, asUser(userID))
	require.Equal(t, http.StatusOK, w.Code)
	var me map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "Demo User", me["fullName"])
	assert.Contains(t, me, "profilePhoto")
	assert.Contains(t, me, "phone")

	// 部分更新只改给定字段
	w = doJSON(r, http.MethodPatch, "/api/users/me", gin.H{"fullName": "Renamed"}, asUser(userID))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "Renamed", me["fullName"])
	assert.Equal(t, "demo@example.com", me["email"])

	// 未认证的请求
	w = doJSON(r, http.MethodGet, "/api/users/me", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Authentication required"}`, w.Body.String())

	// 身份指向不存在的用户
	w = doJSON(r, http.MethodGet, "/api/users/me", nil, asUser(999))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())
}

func TestAuthLoginIssuesUsableToken(t *testing.T) {
	r, _ := newTestServer(t)
	registerUser(t, r, "demo_user", "user")

	w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "demo_user",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "demo_user", resp.User.Username)

	// Bearer令牌可以直接用于受保护端点
	w = doJSON(r, http.MethodGet, "/api/users/me", nil, map[string]string{
		"Authorization": "Bearer " + resp.Token,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 伪造令牌被拒绝
	w = doJSON(r, http.MethodGet, "/api/users/me", nil, map[string]string{
		"Authorization": "Bearer " + resp.Token + "tampered",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEmergencyRequestFlow(t *testing.T) {
	r, store := newTestServer(t)
	userID := registerUser(t, r, "demo_user", "user")
	adminID := registerUser(t, r, "admin", "admin")
	responderID := registerUser(t, r, "responder", "response_team")

	// 普通用户创建请求，状态默认pending
	w := doJSON(r, http.MethodPost, "/api/emergency-requests", gin.H{
		"latitude":    "40.7128",
		"longitude":   "-74.0060",
		"description": "Medical emergency",
	}, asUser(userID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.EmergencyRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.RequestStatusPending, created.Status)
	assert.Equal(t, userID, created.UserID)

	// 非法状态值被校验拒绝
	w = doJSON(r, http.MethodPost, "/api/emergency-requests", gin.H{
		"latitude":  "0",
		"longitude": "0",
		"status":    "exploded",
	}, asUser(userID))
	require.Equal(t, http.StatusBadRequest, w.Code)

	// 普通用户不能读全量列表
	w = doJSON(r, http.MethodGet, "/api/emergency-requests", nil, asUser(userID))
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized access"}`, w.Body.String())

	// admin和response_team可以
	for _, id := range []uint{adminID, responderID} {
		w = doJSON(r, http.MethodGet, "/api/emergency-requests", nil, asUser(id))
		require.Equal(t, http.StatusOK, w.Code)
	}

	// 自己的请求列表
	w = doJSON(r, http.MethodGet, "/api/emergency-requests/me", nil, asUser(userID))
	require.Equal(t, http.StatusOK, w.Code)
	var mine []models.EmergencyRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)

	// 普通用户不能更新，响应队伍可以
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/emergency-requests/%d", created.ID),
		gin.H{"status": "resolved"}, asUser(userID))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/emergency-requests/%d", created.ID),
		gin.H{"status": "resolved"}, asUser(responderID))
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.EmergencyRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.RequestStatusResolved, updated.Status)

	// 不存在的请求
	w = doJSON(r, http.MethodPatch, "/api/emergency-requests/999",
		gin.H{"status": "resolved"}, asUser(adminID))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Emergency request not found"}`, w.Body.String())

	// 每次变更后统计单例已重算
	stats, err := store.GetStats()
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.ResolvedCases)
	assert.Equal(t, 0, stats.PendingCases)

	// 活动日志随创建和更新追加，时间倒序
	w = doJSON(r, http.MethodGet, "/api/activities", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var activities []models.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	require.NotEmpty(t, activities)
	assert.Equal(t, "Emergency request updated", activities[0].Title)
}

func TestResponseTeamEndpoints(t *testing.T) {
	r, _ := newTestServer(t)
	userID := registerUser(t, r, "demo_user", "user")
	adminID := registerUser(t, r, "admin", "admin")
	responderID := registerUser(t, r, "responder", "response_team")

	// 仅admin能创建队伍
	w := doJSON(r, http.MethodPost, "/api/response-teams", gin.H{"name": "Team Alpha"}, asUser(responderID))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/api/response-teams", gin.H{"name": "Team Alpha"}, asUser(adminID))
	require.Equal(t, http.StatusCreated, w.Code)
	var team models.ResponseTeam
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	assert.Equal(t, models.TeamStatusAvailable, team.Status)

	w = doJSON(r, http.MethodPost, "/api/response-teams", gin.H{"name": "Team Bravo", "status": "busy"}, asUser(adminID))
	require.Equal(t, http.StatusCreated, w.Code)

	// 公开读取，无需认证
	w = doJSON(r, http.MethodGet, "/api/response-teams", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var teams []models.ResponseTeam
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	assert.Len(t, teams, 2)

	w = doJSON(r, http.MethodGet, "/api/response-teams/available", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	require.Len(t, teams, 1)
	assert.Equal(t, "Team Alpha", teams[0].Name)

	// 队伍状态翻转后从可用列表消失（写后读可见）
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/response-teams/%d", team.ID),
		gin.H{"status": "offline"}, asUser(responderID))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/response-teams/available", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	assert.Empty(t, teams)

	// 普通用户不能更新队伍
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/response-teams/%d", team.ID),
		gin.H{"status": "busy"}, asUser(userID))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/response-teams/999", gin.H{"status": "busy"}, asUser(adminID))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Response team not found"}`, w.Body.String())
}

func TestMedicalServiceEndpoints(t *testing.T) {
	r, _ := newTestServer(t)
	userID := registerUser(t, r, "demo_user", "user")
	adminID := registerUser(t, r, "admin", "admin")

	w := doJSON(r, http.MethodPost, "/api/medical-services", gin.H{
		"name":      "City Hospital",
		"type":      "hospital",
		"address":   "123 Main St",
		"latitude":  "40.7128",
		"longitude": "-74.0060",
	}, asUser(userID))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/api/medical-services", gin.H{
		"name":      "City Hospital",
		"type":      "hospital",
		"address":   "123 Main St",
		"latitude":  "40.7128",
		"longitude": "-74.0060",
	}, asUser(adminID))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/medical-services", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var services []models.MedicalService
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &services))
	assert.Len(t, services, 1)

	w = doJSON(r, http.MethodGet, "/api/medical-services/type/hospital", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &services))
	assert.Len(t, services, 1)

	// 未知类型返回空列表而不是错误
	w = doJSON(r, http.MethodGet, "/api/medical-services/type/clinic", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &services))
	assert.Empty(t, services)
}

func TestSystemStatusEndpoints(t *testing.T) {
	r, store := newTestServer(t)
	userID := registerUser(t, r, "demo_user", "user")
	adminID := registerUser(t, r, "admin", "admin")

	require.NoError(t, store.CreateSystemStatus(&models.SystemStatus{
		Name: "GPS Tracking", Status: models.SystemStatusOperational, Icon: "fa-satellite",
	}))

	w := doJSON(r, http.MethodGet, "/api/system-status", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var statuses []models.SystemStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &statuses))
	require.Len(t, statuses, 1)

	w = doJSON(r, http.MethodPatch, "/api/system-status/1", gin.H{"status": "offline"}, asUser(userID))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/system-status/1", gin.H{"status": "offline"}, asUser(adminID))
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.SystemStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.SystemStatusOffline, updated.Status)
	assert.Equal(t, "GPS Tracking", updated.Name)

	w = doJSON(r, http.MethodPatch, "/api/system-status/999", gin.H{"status": "offline"}, asUser(adminID))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"System status not found"}`, w.Body.String())
}

func TestNotificationEndpoints(t *testing.T) {
	r, store := newTestServer(t)
	userID := registerUser(t, r, "demo_user", "user")
	otherID := registerUser(t, r, "other_user", "user")

	require.NoError(t, store.CreateNotification(&models.Notification{
		UserID: userID, Title: "Alert", Message: "Team dispatched",
	}))
	require.NoError(t, store.CreateNotification(&models.Notification{
		UserID: otherID, Title: "Other", Message: "Not yours",
	}))

	// 只看到自己的通知
	w := doJSON(r, http.MethodGet, "/api/notifications", nil, asUser(userID))
	require.Equal(t, http.StatusOK, w.Code)
	var notifications []models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notifications))
	require.Len(t, notifications, 1)
	assert.Equal(t, "Alert", notifications[0].Title)
	assert.False(t, notifications[0].Read)

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/read", notifications[0].ID), nil, asUser(userID))
	require.Equal(t, http.StatusOK, w.Code)
	var marked models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &marked))
	assert.True(t, marked.Read)

	w = doJSON(r, http.MethodPatch, "/api/notifications/999/read", nil, asUser(userID))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Notification not found"}`, w.Body.String())
}

func TestSettingsEndpoints(t *testing.T) {
	r, _ := newTestServer(t)
	userID := registerUser(t, r, "demo_user", "user")

	// 注册时已创建默认设置
	w := doJSON(r, http.MethodGet, "/api/settings", nil, asUser(userID))
	require.Equal(t, http.StatusOK, w.Code)
	var settings models.Setting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.True(t, settings.EmergencyAlerts)
	assert.False(t, settings.SmsNotifications)

	w = doJSON(r, http.MethodPatch, "/api/settings", gin.H{
		"smsNotifications": true,
		"locationSharing":  false,
	}, asUser(userID))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.True(t, settings.SmsNotifications)
	assert.False(t, settings.LocationSharing)
	assert.True(t, settings.EmailNotifications)
}

func TestStatsEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	userID := registerUser(t, r, "demo_user", "user")
	adminID := registerUser(t, r, "admin", "admin")

	// 首次写入前统计不存在
	w := doJSON(r, http.MethodGet, "/api/stats", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Stats not found"}`, w.Body.String())

	// 创建请求和队伍后统计可读且精确
	w = doJSON(r, http.MethodPost, "/api/emergency-requests", gin.H{
		"latitude": "0", "longitude": "0", "status": "critical",
	}, asUser(userID))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/response-teams", gin.H{"name": "Team Alpha"}, asUser(adminID))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/stats", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.ResponseTeams)
	assert.Equal(t, 1, stats.CriticalCases)
	assert.Equal(t, 0, stats.PendingCases)
}

func TestUserDeleteRequiresAdmin(t *testing.T) {
	r, _ := newTestServer(t)
	userID := registerUser(t, r, "demo_user", "user")
	adminID := registerUser(t, r, "admin", "admin")

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/users/%d", adminID), nil, asUser(userID))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/users/%d", userID), nil, asUser(adminID))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/users/%d", userID), nil, asUser(adminID))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodGet, "/api/ping", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")

	w = doJSON(r, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
}
