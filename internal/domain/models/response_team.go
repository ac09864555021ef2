package models

import "time"

// 响应队伍状态
const (
	TeamStatusAvailable = "available"
	TeamStatusBusy      = "busy"
	TeamStatusOffline   = "offline"
)

// ResponseTeam represents an emergency response team
type ResponseTeam struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Status    string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	Latitude  string    `gorm:"type:varchar(30)" json:"latitude"`
	Longitude string    `gorm:"type:varchar(30)" json:"longitude"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidTeamStatus 检查队伍状态是否合法
func ValidTeamStatus(s string) bool {
	switch s {
	case TeamStatusAvailable, TeamStatusBusy, TeamStatusOffline:
		return true
	}
	return false
}
