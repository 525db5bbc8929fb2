package models

import "time"

// EmailStats mirrors the email_stats table for gorm reads; increments go through
// the pgx upsert in repository.EmailStatsRepository.
type EmailStats struct {
	ID           int16 `gorm:"primaryKey;autoIncrement:false"`
	SuccessCount int64 `gorm:"not null;default:0"`
	UpdatedAt    time.Time
}

func (EmailStats) TableName() string {
	return "email_stats"
}
