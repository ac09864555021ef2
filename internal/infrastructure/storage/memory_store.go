package storage

import (
	"sort"
	"sync"
	"time"

	"meditrack-http-service/internal/domain/models"
)

// MemoryStore 基于内存map的存储实现，与GormStore遵循同一契约。
// 用于测试和演示模式，进程退出后数据丢失。
type MemoryStore struct {
	mu sync.RWMutex

	users             map[uint]*models.User
	emergencyRequests map[uint]*models.EmergencyRequest
	responseTeams     map[uint]*models.ResponseTeam
	medicalServices   map[uint]*models.MedicalService
	systemStatuses    map[uint]*models.SystemStatus
	activities        map[uint]*models.Activity
	notifications     map[uint]*models.Notification
	settings          map[uint]*models.Setting
	stats             *models.Stats

	nextUserID             uint
	nextEmergencyRequestID uint
	nextResponseTeamID     uint
	nextMedicalServiceID   uint
	nextSystemStatusID     uint
	nextActivityID         uint
	nextNotificationID     uint
	nextSettingID          uint
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:             make(map[uint]*models.User),
		emergencyRequests: make(map[uint]*models.EmergencyRequest),
		responseTeams:     make(map[uint]*models.ResponseTeam),
		medicalServices:   make(map[uint]*models.MedicalService),
		systemStatuses:    make(map[uint]*models.SystemStatus),
		activities:        make(map[uint]*models.Activity),
		notifications:     make(map[uint]*models.Notification),
		settings:          make(map[uint]*models.Setting),

		nextUserID:             1,
		nextEmergencyRequestID: 1,
		nextResponseTeamID:     1,
		nextMedicalServiceID:   1,
		nextSystemStatusID:     1,
		nextActivityID:         1,
		nextNotificationID:     1,
		nextSettingID:          1,
	}
}

// AutoMigrate 内存实现无表结构，空操作
func (s *MemoryStore) AutoMigrate() error { return nil }

// Users

func (s *MemoryStore) GetUser(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextUserID
	s.nextUserID++
	user.CreatedAt = time.Now()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *MemoryStore) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	for key, value := range updates {
		switch key {
		case "username":
			user.Username = value.(string)
		case "password":
			user.Password = value.(string)
		case "email":
			user.Email = value.(string)
		case "phone":
			user.Phone = value.(string)
		case "full_name":
			user.FullName = value.(string)
		case "user_type":
			user.UserType = value.(string)
		case "profile_photo":
			user.ProfilePhoto = value.(string)
		}
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryStore) DeleteUser(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

func (s *MemoryStore) CountUsers() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

// Emergency requests

func (s *MemoryStore) GetEmergencyRequest(id uint) (*models.EmergencyRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if req, ok := s.emergencyRequests[id]; ok {
		copied := *req
		return &copied, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetEmergencyRequestsByUserID(userID uint) ([]models.EmergencyRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var requests []models.EmergencyRequest
	for _, req := range s.emergencyRequests {
		if req.UserID == userID {
			requests = append(requests, *req)
		}
	}
	sortByID(requests, func(r models.EmergencyRequest) uint { return r.ID })
	return requests, nil
}

func (s *MemoryStore) GetAllEmergencyRequests() ([]models.EmergencyRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	requests := make([]models.EmergencyRequest, 0, len(s.emergencyRequests))
	for _, req := range s.emergencyRequests {
		requests = append(requests, *req)
	}
	sortByID(requests, func(r models.EmergencyRequest) uint { return r.ID })
	return requests, nil
}

func (s *MemoryStore) CreateEmergencyRequest(req *models.EmergencyRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	req.ID = s.nextEmergencyRequestID
	s.nextEmergencyRequestID++
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	copied := *req
	s.emergencyRequests[req.ID] = &copied
	return nil
}

func (s *MemoryStore) UpdateEmergencyRequest(id uint, updates map[string]interface{}) (*models.EmergencyRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.emergencyRequests[id]
	if !ok {
		return nil, nil
	}
	for key, value := range updates {
		switch key {
		case "status":
			req.Status = value.(string)
		case "latitude":
			req.Latitude = value.(string)
		case "longitude":
			req.Longitude = value.(string)
		case "description":
			req.Description = value.(string)
		case "response_team_id":
			if value == nil {
				req.ResponseTeamID = nil
			} else if teamID, ok := value.(*uint); ok {
				req.ResponseTeamID = teamID
			} else if teamID, ok := value.(uint); ok {
				req.ResponseTeamID = &teamID
			}
		}
	}
	req.UpdatedAt = time.Now()
	copied := *req
	return &copied, nil
}

// Response teams

func (s *MemoryStore) GetResponseTeam(id uint) (*models.ResponseTeam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if team, ok := s.responseTeams[id]; ok {
		copied := *team
		return &copied, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetAllResponseTeams() ([]models.ResponseTeam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]models.ResponseTeam, 0, len(s.responseTeams))
	for _, team := range s.responseTeams {
		teams = append(teams, *team)
	}
	sortByID(teams, func(t models.ResponseTeam) uint { return t.ID })
	return teams, nil
}

func (s *MemoryStore) GetAvailableResponseTeams() ([]models.ResponseTeam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var teams []models.ResponseTeam
	for _, team := range s.responseTeams {
		if team.Status == models.TeamStatusAvailable {
			teams = append(teams, *team)
		}
	}
	sortByID(teams, func(t models.ResponseTeam) uint { return t.ID })
	return teams, nil
}

func (s *MemoryStore) CreateResponseTeam(team *models.ResponseTeam) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	team.ID = s.nextResponseTeamID
	s.nextResponseTeamID++
	team.CreatedAt = time.Now()
	copied := *team
	s.responseTeams[team.ID] = &copied
	return nil
}

func (s *MemoryStore) UpdateResponseTeam(id uint, updates map[string]interface{}) (*models.ResponseTeam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	team, ok := s.responseTeams[id]
	if !ok {
		return nil, nil
	}
	for key, value := range updates {
		switch key {
		case "name":
			team.Name = value.(string)
		case "status":
			team.Status = value.(string)
		case "latitude":
			team.Latitude = value.(string)
		case "longitude":
			team.Longitude = value.(string)
		}
	}
	copied := *team
	return &copied, nil
}

// Medical services

func (s *MemoryStore) GetMedicalService(id uint) (*models.MedicalService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if service, ok := s.medicalServices[id]; ok {
		copied := *service
		return &copied, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetAllMedicalServices() ([]models.MedicalService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	services := make([]models.MedicalService, 0, len(s.medicalServices))
	for _, service := range s.medicalServices {
		services = append(services, *service)
	}
	sortByID(services, func(m models.MedicalService) uint { return m.ID })
	return services, nil
}

func (s *MemoryStore) GetMedicalServicesByType(serviceType string) ([]models.MedicalService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var services []models.MedicalService
	for _, service := range s.medicalServices {
		if service.Type == serviceType {
			services = append(services, *service)
		}
	}
	sortByID(services, func(m models.MedicalService) uint { return m.ID })
	return services, nil
}

func (s *MemoryStore) CreateMedicalService(service *models.MedicalService) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	service.ID = s.nextMedicalServiceID
	s.nextMedicalServiceID++
	service.CreatedAt = time.Now()
	copied := *service
	s.medicalServices[service.ID] = &copied
	return nil
}

// System status

func (s *MemoryStore) GetSystemStatus(id uint) (*models.SystemStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if status, ok := s.systemStatuses[id]; ok {
		copied := *status
		return &copied, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetAllSystemStatuses() ([]models.SystemStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	statuses := make([]models.SystemStatus, 0, len(s.systemStatuses))
	for _, status := range s.systemStatuses {
		statuses = append(statuses, *status)
	}
	sortByID(statuses, func(st models.SystemStatus) uint { return st.ID })
	return statuses, nil
}

func (s *MemoryStore) CreateSystemStatus(status *models.SystemStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	status.ID = s.nextSystemStatusID
	s.nextSystemStatusID++
	now := time.Now()
	status.CreatedAt = now
	status.UpdatedAt = now
	copied := *status
	s.systemStatuses[status.ID] = &copied
	return nil
}

func (s *MemoryStore) UpdateSystemStatus(id uint, updates map[string]interface{}) (*models.SystemStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.systemStatuses[id]
	if !ok {
		return nil, nil
	}
	for key, value := range updates {
		switch key {
		case "name":
			status.Name = value.(string)
		case "status":
			status.Status = value.(string)
		case "icon":
			status.Icon = value.(string)
		}
	}
	status.UpdatedAt = time.Now()
	copied := *status
	return &copied, nil
}

// Activities

func (s *MemoryStore) GetActivity(id uint) (*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if activity, ok := s.activities[id]; ok {
		copied := *activity
		return &copied, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetAllActivities() ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	activities := make([]models.Activity, 0, len(s.activities))
	for _, activity := range s.activities {
		activities = append(activities, *activity)
	}
	// 按时间倒序，同一时刻按ID倒序保证顺序稳定
	sort.Slice(activities, func(i, j int) bool {
		if activities[i].Timestamp.Equal(activities[j].Timestamp) {
			return activities[i].ID > activities[j].ID
		}
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	return activities, nil
}

func (s *MemoryStore) CreateActivity(activity *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	activity.ID = s.nextActivityID
	s.nextActivityID++
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now()
	}
	copied := *activity
	s.activities[activity.ID] = &copied
	return nil
}

// Notifications

func (s *MemoryStore) GetNotification(id uint) (*models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if notification, ok := s.notifications[id]; ok {
		copied := *notification
		return &copied, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetNotificationsByUserID(userID uint) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var notifications []models.Notification
	for _, notification := range s.notifications {
		if notification.UserID == userID {
			notifications = append(notifications, *notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		if notifications[i].CreatedAt.Equal(notifications[j].CreatedAt) {
			return notifications[i].ID > notifications[j].ID
		}
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (s *MemoryStore) CreateNotification(notification *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	notification.ID = s.nextNotificationID
	s.nextNotificationID++
	notification.CreatedAt = time.Now()
	copied := *notification
	s.notifications[notification.ID] = &copied
	return nil
}

func (s *MemoryStore) MarkNotificationRead(id uint) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	notification, ok := s.notifications[id]
	if !ok {
		return nil, nil
	}
	notification.Read = true
	copied := *notification
	return &copied, nil
}

// Settings

func (s *MemoryStore) GetUserSettings(userID uint) (*models.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, setting := range s.settings {
		if setting.UserID == userID {
			copied := *setting
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateUserSettings(setting *models.Setting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	setting.ID = s.nextSettingID
	s.nextSettingID++
	setting.UpdatedAt = time.Now()
	copied := *setting
	s.settings[setting.ID] = &copied
	return nil
}

func (s *MemoryStore) UpdateUserSettings(userID uint, updates map[string]interface{}) (*models.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var setting *models.Setting
	for _, candidate := range s.settings {
		if candidate.UserID == userID {
			setting = candidate
			break
		}
	}
	if setting == nil {
		return nil, nil
	}
	for key, value := range updates {
		switch key {
		case "emergency_alerts":
			setting.EmergencyAlerts = value.(bool)
		case "email_notifications":
			setting.EmailNotifications = value.(bool)
		case "sms_notifications":
			setting.SmsNotifications = value.(bool)
		case "location_sharing":
			setting.LocationSharing = value.(bool)
		case "anonymous_data_collection":
			setting.AnonymousDataCollection = value.(bool)
		}
	}
	setting.UpdatedAt = time.Now()
	copied := *setting
	return &copied, nil
}

// Stats

func (s *MemoryStore) GetStats() (*models.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats == nil {
		return nil, nil
	}
	copied := *s.stats
	return &copied, nil
}

func (s *MemoryStore) ReplaceStats(stats *models.Stats) (*models.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats.ID = 1
	stats.UpdatedAt = time.Now()
	copied := *stats
	s.stats = &copied
	result := copied
	return &result, nil
}

// sortByID 按主键升序排列，保证重复读取时顺序一致
func sortByID[T any](items []T, id func(T) uint) {
	sort.Slice(items, func(i, j int) bool {
		return id(items[i]) < id(items[j])
	})
}
