package models

import "time"

// 系统组件状态
const (
	SystemStatusOperational = "operational"
	SystemStatusPartial     = "partial"
	SystemStatusOffline     = "offline"
)

// SystemStatus 系统组件的运行状态指示器
type SystemStatus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Status    string    `gorm:"type:varchar(20);not null" json:"status"`
	Icon      string    `gorm:"type:varchar(50);not null" json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidSystemStatus 检查组件状态是否合法
func ValidSystemStatus(s string) bool {
	switch s {
	case SystemStatusOperational, SystemStatusPartial, SystemStatusOffline:
		return true
	}
	return false
}
