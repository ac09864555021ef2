package models

import "time"

// Notification 发给特定用户的站内通知
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Read      bool      `gorm:"column:is_read;not null;default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
