package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User confirmation/denial of a detected food trigger. One logical row
// per (user, food); the food name is stored lowercased and trimmed so
// upserts and lookups are case-insensitive.
type TriggerFeedback struct {
	gorm.Model
	UserID   uint   `gorm:"index:idx_feedback_user_food,unique;not null" json:"-"`
	FoodName string `gorm:"index:idx_feedback_user_food,unique;not null" json:"food_name"`

	// nil = pending, true = confirmed trigger, false = dismissed
	UserConfirmed *bool     `json:"user_confirmed"`
	RecordedAt    time.Time `json:"recorded_at"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
}

// NormalizeFoodName is the canonical key form for feedback rows.
func NormalizeFoodName(food string) string {
	return strings.ToLower(strings.TrimSpace(food))
}

// Matches reports whether this feedback row refers to the given food.
func (f *TriggerFeedback) Matches(food string) bool {
	return f.FoodName == NormalizeFoodName(food)
}
