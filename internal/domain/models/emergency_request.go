package models

import "time"

// 紧急请求状态
const (
	RequestStatusPending    = "pending"
	RequestStatusInProgress = "in_progress"
	RequestStatusResolved   = "resolved"
	RequestStatusCancelled  = "cancelled"
	RequestStatusCritical   = "critical"
)

// EmergencyRequest 由用户上报的紧急求助请求。
// 状态之间没有强制的状态机约束，resolved 也可以被改回 pending。
type EmergencyRequest struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"userId"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Latitude       string    `gorm:"type:varchar(30);not null" json:"latitude"`
	Longitude      string    `gorm:"type:varchar(30);not null" json:"longitude"`
	Description    string    `gorm:"type:text" json:"description"`
	ResponseTeamID *uint     `json:"responseTeamId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ValidRequestStatus 检查请求状态是否合法
func ValidRequestStatus(s string) bool {
	switch s {
	case RequestStatusPending, RequestStatusInProgress, RequestStatusResolved,
		RequestStatusCancelled, RequestStatusCritical:
		return true
	}
	return false
}
