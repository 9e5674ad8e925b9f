package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FirstName string
	LastName  string
	Birthday  time.Time

	// Baseline gut-health score from the onboarding quiz (0-100).
	// Used as the prior when little recent logging data exists.
	BaselineScore int `gorm:"default:50"`

	HealthConditions string
	ProfilePicture   string

	MFAEnabled bool
	MFACode    string
	ResetToken string

	Onboarded bool
	Disabled  bool
}
