package models

import "time"

// 用户类型
const (
	UserTypeUser         = "user"
	UserTypeAdmin        = "admin"
	UserTypeResponseTeam = "response_team"
)

// User represents a registered account: normal users, admins and
// response team members share this table and are told apart by UserType.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password     string    `gorm:"type:varchar(100);not null" json:"-"` // 不在JSON中暴露密码
	Email        string    `gorm:"type:varchar(100);not null" json:"email"`
	Phone        string    `gorm:"type:varchar(30)" json:"phone"`
	FullName     string    `gorm:"type:varchar(100);not null" json:"fullName"`
	UserType     string    `gorm:"type:varchar(20);not null;default:'user'" json:"userType"`
	ProfilePhoto string    `gorm:"type:varchar(255)" json:"profilePhoto"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidUserType 检查用户类型是否合法
func ValidUserType(t string) bool {
	switch t {
	case UserTypeUser, UserTypeAdmin, UserTypeResponseTeam:
		return true
	}
	return false
}
