package models

import "time"

// Stats 全局聚合统计，系统中只存在一行。
// 它完全由紧急请求和响应队伍两个集合派生，不允许被独立写入。
type Stats struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ResponseTeams int       `gorm:"not null;default:0" json:"responseTeams"`
	ResolvedCases int       `gorm:"not null;default:0" json:"resolvedCases"`
	PendingCases  int       `gorm:"not null;default:0" json:"pendingCases"`
	CriticalCases int       `gorm:"not null;default:0" json:"criticalCases"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
