package models

import (
	"time"
)

type User struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string          `gorm:"unique;not null" json:"username"`
	Email          string          `gorm:"unique;not null" json:"email"`
	FullName       string          `json:"full_name"`
	AvatarURL      string          `json:"avatar_url"`
	IsActive       bool            `gorm:"not null;default:true" json:"is_active"`
	IsAdmin        bool            `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt      time.Time       `json:"created_at"`
	Projects       []Project       `gorm:"foreignKey:OwnerID" json:"-"`
	HackathonPosts []HackathonPost `gorm:"foreignKey:OwnerID" json:"-"`
	ResearchPapers []ResearchPaper `gorm:"foreignKey:OwnerID" json:"-"`
	Reports        []Report        `gorm:"foreignKey:ReporterID" json:"-"`
}
