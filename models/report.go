package models

import (
	"time"
)

const (
	ReportTypeProject       = "project"
	ReportTypeHackathon     = "hackathon"
	ReportTypeResearchPaper = "research_paper"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusReviewed = "reviewed"
	ReportStatusResolved = "resolved"
)

// Report is a moderation report filed against a piece of content. TargetID is
// a polymorphic reference resolved through ReportType, so the database cannot
// enforce it as a foreign key; a hard-deleted target simply leaves the report
// dangling.
type Report struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReporterID uint      `gorm:"not null;index" json:"reporter_id"`
	Reporter   User      `gorm:"foreignKey:ReporterID" json:"reporter"`
	ReportType string    `gorm:"not null" json:"report_type"`
	TargetID   uint      `gorm:"not null;index" json:"target_id"`
	Reason     string    `gorm:"not null" json:"reason"`
	Status     string    `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ValidReportStatus reports whether s is one of the accepted report states.
func ValidReportStatus(s string) bool {
	switch s {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusResolved:
		return true
	}
	return false
}
