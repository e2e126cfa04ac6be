package models

import (
	"time"
)

// Paper lifecycle states. A paper is created as an abstract and moves to
// published once a paper URL is supplied.
const (
	PaperStatusAbstract  = "abstract"
	PaperStatusPublished = "published"
)

type ResearchPaper struct {
	ID              uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string     `gorm:"not null" json:"title"`
	Abstract        string     `gorm:"type:text;not null" json:"abstract"`
	Authors         string     `gorm:"not null" json:"authors"`
	Category        string     `json:"category"`
	Keywords        string     `json:"keywords"`
	Status          string     `gorm:"not null;default:'abstract'" json:"status"`
	PaperURL        string     `json:"paper_url"`
	DOI             string     `json:"doi"`
	PublicationDate *time.Time `json:"publication_date"`
	IsActive        bool       `gorm:"not null;default:true" json:"is_active"`
	OwnerID         uint       `gorm:"not null;index" json:"owner_id"`
	Owner           User       `gorm:"foreignKey:OwnerID" json:"owner"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
