package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/infrastructure/storage"
)

func TestUserServiceRegister(t *testing.T) {
	store := storage.NewMemoryStore()
	userService := NewUserService(store)

	user := &models.User{
		Username: "demo_user",
		Password: "password123",
		Email:    "demo@example.com",
		FullName: "Demo User",
	}
	require.NoError(t, userService.Register(user))

	// 密码被bcrypt哈希，存储中不出现明文
	stored, err := store.GetUserByUsername("demo_user")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.Password)
	assert.True(t, userService.CheckPassword("password123", stored.Password))

	// 未指定类型时默认为user
	assert.Equal(t, models.UserTypeUser, stored.UserType)

	// 注册同时写入默认设置
	settings, err := store.GetUserSettings(stored.ID)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.True(t, settings.EmergencyAlerts)
	assert.False(t, settings.AnonymousDataCollection)
}

func TestUserServiceRegisterDuplicateUsername(t *testing.T) {
	store := storage.NewMemoryStore()
	userService := NewUserService(store)

	require.NoError(t, userService.Register(&models.User{
		Username: "demo_user", Password: "a", Email: "a@example.com", FullName: "A",
	}))

	err := userService.Register(&models.User{
		Username: "demo_user", Password: "b", Email: "b@example.com", FullName: "B",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserServiceAuthenticate(t *testing.T) {
	store := storage.NewMemoryStore()
	userService := NewUserService(store)

	require.NoError(t, userService.Register(&models.User{
		Username: "demo_user", Password: "password123", Email: "demo@example.com", FullName: "Demo User",
	}))

	user, err := userService.Authenticate("demo_user", "password123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "demo_user", user.Username)

	// 密码错误和用户不存在都返回 (nil, nil)，对调用方不可区分
	user, err = userService.Authenticate("demo_user", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = userService.Authenticate("nobody", "password123")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserServiceDeleteLeavesOwnedRecords(t *testing.T) {
	store := storage.NewMemoryStore()
	userService := NewUserService(store)

	user := &models.User{Username: "demo_user", Password: "a", Email: "a@example.com", FullName: "A"}
	require.NoError(t, userService.Register(user))
	require.NoError(t, store.CreateEmergencyRequest(&models.EmergencyRequest{
		UserID: user.ID, Status: models.RequestStatusPending, Latitude: "0", Longitude: "0",
	}))

	deleted, err := userService.DeleteUser(user.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// 删除不做级联，该用户的请求保持原样
	requests, err := store.GetEmergencyRequestsByUserID(user.ID)
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}

func TestUserServiceUpdateSettingsCreatesIfAbsent(t *testing.T) {
	store := storage.NewMemoryStore()
	userService := NewUserService(store)

	// 没有设置行时先创建默认行再合并
	settings, err := userService.UpdateSettings(42, map[string]interface{}{
		"sms_notifications": true,
	})
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.True(t, settings.SmsNotifications)
	assert.True(t, settings.EmergencyAlerts)
	assert.Equal(t, uint(42), settings.UserID)
}
