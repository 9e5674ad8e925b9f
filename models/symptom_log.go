package models

import "time"

// Standalone symptom entry not tied to a bowel movement. Counts toward
// the health score's symptom penalty alongside symptomatic moments.
type SymptomLog struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`

	Type     string `gorm:"size:20" json:"type"` // bloating|gas|cramping|nausea
	Severity int    `json:"severity"`            // 0-10
	Duration *int   `json:"duration,omitempty"`  // minutes
	Notes    string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
