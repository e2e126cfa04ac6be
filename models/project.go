package models

import (
	"time"
)

type Project struct {
	ID           uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string               `gorm:"not null" json:"name"`
	Description  string               `gorm:"type:text" json:"description"`
	Status       string               `json:"status"`
	IsActive     bool                 `gorm:"not null;default:true" json:"is_active"`
	OwnerID      uint                 `gorm:"not null;index" json:"owner_id"`
	Owner        User                 `gorm:"foreignKey:OwnerID" json:"owner"`
	CreatedAt    time.Time            `json:"created_at"`
	Applications []ProjectApplication `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

type ProjectApplication struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID   uint      `gorm:"not null;index" json:"project_id"`
	ApplicantID uint      `gorm:"not null" json:"applicant_id"`
	CreatedAt   time.Time `json:"created_at"`
}
