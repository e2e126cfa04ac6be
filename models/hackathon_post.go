package models

import (
	"time"
)

type HackathonPost struct {
	ID            uint                   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string                 `gorm:"not null" json:"title"`
	Description   string                 `gorm:"type:text" json:"description"`
	HackathonName string                 `json:"hackathon_name"`
	HackathonDate *time.Time             `json:"hackathon_date"`
	IsActive      bool                   `gorm:"not null;default:true" json:"is_active"`
	OwnerID       uint                   `gorm:"not null;index" json:"owner_id"`
	Owner         User                   `gorm:"foreignKey:OwnerID" json:"owner"`
	CreatedAt     time.Time              `json:"created_at"`
	Applications  []HackathonApplication `gorm:"foreignKey:HackathonPostID;constraint:OnDelete:CASCADE" json:"-"`
}

type HackathonApplication struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	HackathonPostID uint      `gorm:"not null;index" json:"hackathon_post_id"`
	ApplicantID     uint      `gorm:"not null" json:"applicant_id"`
	CreatedAt       time.Time `json:"created_at"`
}
