package models

import (
	"strings"
	"time"
)

// Medical tags a user can attach to a moment. Stored comma-separated
// (same storage convention as meal item warnings).
const (
	TagStrain = "strain"
	TagBlood  = "blood"
	TagMucus  = "mucus"
)

// Urgency levels for a moment.
const (
	UrgencyNone   = "none"
	UrgencyMild   = "mild"
	UrgencySevere = "severe"
)

// A Moment is a single logged digestive event. Append-only: updates
// replace the whole row, the timestamp is never partially mutated.
type Moment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`

	BristolType *int `json:"bristol_type,omitempty"` // 1-7, nil = not recorded

	// Symptom flags, all default false
	Bloating bool `json:"bloating"`
	Gas      bool `json:"gas"`
	Cramping bool `json:"cramping"`
	Nausea   bool `json:"nausea"`

	Tags      string `gorm:"type:text" json:"tags"`    // comma-separated medical tags
	Urgency   string `gorm:"size:10" json:"urgency"`   // none|mild|severe
	PainScore *int   `json:"pain_score,omitempty"`     // 0-10
	Notes     string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// TagList splits the stored tag string into trimmed entries.
func (m *Moment) TagList() []string {
	if strings.TrimSpace(m.Tags) == "" {
		return nil
	}
	parts := strings.Split(m.Tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, strings.ToLower(t))
		}
	}
	return out
}

func (m *Moment) HasTag(tag string) bool {
	for _, t := range m.TagList() {
		if t == strings.ToLower(tag) {
			return true
		}
	}
	return false
}

// HasSymptoms reports whether any of the four symptom flags is set.
func (m *Moment) HasSymptoms() bool {
	return m.Bloating || m.Gas || m.Cramping || m.Nausea
}

// IsConstipated: Bristol type 1 or 2.
func (m *Moment) IsConstipated() bool {
	return m.BristolType != nil && (*m.BristolType == 1 || *m.BristolType == 2)
}

// IsDiarrhea: Bristol type 6 or 7.
func (m *Moment) IsDiarrhea() bool {
	return m.BristolType != nil && (*m.BristolType == 6 || *m.BristolType == 7)
}

// IsUnhealthyStool: any recorded Bristol type outside the ideal 3-4 band.
func (m *Moment) IsUnhealthyStool() bool {
	return m.BristolType != nil && *m.BristolType != 3 && *m.BristolType != 4
}

// HasRedFlags reports whether a medical marker tag (blood/mucus) is present.
func (m *Moment) HasRedFlags() bool {
	return m.HasTag(TagBlood) || m.HasTag(TagMucus)
}

// HoursSince returns the signed hour delta between this moment and an
// earlier reference timestamp (positive when the moment is later).
func (m *Moment) HoursSince(t time.Time) float64 {
	return m.Timestamp.Sub(t).Hours()
}
