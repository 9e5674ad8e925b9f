package models

import (
	"time"

	"gorm.io/gorm"
)

// A medical alert surfaced to the user (blood, mucus, constipation,
// diarrhea pattern). Rows are append-only history; the live alert state
// is recomputed from moments on every check.
type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"-"`
	Type      string    `gorm:"size:20" json:"type"`     // blood|mucus|constipation|diarrhea
	Severity  string    `gorm:"size:10" json:"severity"` // warning|critical
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// DismissedAlert records when a user last dismissed an alert type.
// Event-based alerts compare this against the latest qualifying moment;
// the constipation alert treats it as a 24h snooze.
type DismissedAlert struct {
	gorm.Model
	UserID      uint      `gorm:"index:idx_dismissed_user_type,unique;not null"`
	AlertType   string    `gorm:"size:20;index:idx_dismissed_user_type,unique;not null"`
	DismissedAt time.Time `gorm:"not null"`
}
