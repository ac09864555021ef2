package services

import (
	"meditrack-http-service/internal/domain/models"
	"meditrack-http-service/internal/infrastructure/storage"
)

// InterfaceNotificationService 定义通知服务接口
type InterfaceNotificationService interface {
	CreateNotification(notification *models.Notification) error
	GetNotificationsByUserID(userID uint) ([]models.Notification, error)
	MarkAsRead(id uint) (*models.Notification, error)
}

// NotificationService 提供站内通知相关的服务
type NotificationService struct {
	Store storage.Store
}

// NewNotificationService 创建通知服务
func NewNotificationService(store storage.Store) InterfaceNotificationService {
	return &NotificationService{Store: store}
}

// CreateNotification 给指定用户创建一条通知
func (s *NotificationService) CreateNotification(notification *models.Notification) error {
	return s.Store.CreateNotification(notification)
}

// GetNotificationsByUserID 按创建时间倒序返回用户的通知
func (s *NotificationService) GetNotificationsByUserID(userID uint) ([]models.Notification, error) {
	return s.Store.GetNotificationsByUserID(userID)
}

// MarkAsRead 将通知标记为已读，ID不存在时返回 (nil, nil)
func (s *NotificationService) MarkAsRead(id uint) (*models.Notification, error) {
	return s.Store.MarkNotificationRead(id)
}
