package models

import "time"

// Activity 系统活动日志，只允许追加，不支持更新和删除
type Activity struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon"`
	IconBg      string    `gorm:"type:varchar(50)" json:"iconBg"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
}
