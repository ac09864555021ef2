package models

import "time"

// Setting 每个用户至多一条的偏好设置记录
type Setting struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	UserID                  uint      `gorm:"uniqueIndex;not null" json:"userId"`
	EmergencyAlerts         bool      `gorm:"not null;default:true" json:"emergencyAlerts"`
	EmailNotifications      bool      `gorm:"not null;default:true" json:"emailNotifications"`
	SmsNotifications        bool      `gorm:"not null;default:false" json:"smsNotifications"`
	LocationSharing         bool      `gorm:"not null;default:true" json:"locationSharing"`
	AnonymousDataCollection bool      `gorm:"not null;default:false" json:"anonymousDataCollection"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// DefaultSetting 返回新注册用户的默认设置
func DefaultSetting(userID uint) *Setting {
	return &Setting{
		UserID:                  userID,
		EmergencyAlerts:         true,
		EmailNotifications:      true,
		SmsNotifications:        false,
		LocationSharing:         true,
		AnonymousDataCollection: false,
	}
}
