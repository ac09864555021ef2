package models

import "time"

// MedicalService 附近的医疗服务机构，type为自由文本分类，
// 如 hospital、clinic、pharmacy 等。distance为静态占位值，不做实时计算。
type MedicalService struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Type         string    `gorm:"type:varchar(50);not null;index" json:"type"`
	Address      string    `gorm:"type:varchar(255);not null" json:"address"`
	Latitude     string    `gorm:"type:varchar(30);not null" json:"latitude"`
	Longitude    string    `gorm:"type:varchar(30);not null" json:"longitude"`
	Rating       string    `gorm:"type:varchar(10)" json:"rating"`
	ReviewCount  int       `json:"reviewCount"`
	Phone        string    `gorm:"type:varchar(30)" json:"phone"`
	OpeningHours string    `gorm:"type:varchar(100)" json:"openingHours"`
	Distance     string    `gorm:"type:varchar(20)" json:"distance"`
	CreatedAt    time.Time `json:"createdAt"`
}
