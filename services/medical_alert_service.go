package services

import (
	"time"

	"backend/models"
)

type AlertType string

const (
	AlertBlood        AlertType = "blood"
	AlertMucus        AlertType = "mucus"
	AlertConstipation AlertType = "constipation"
	AlertDiarrhea     AlertType = "diarrhea"
)

type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
)

type MedicalAlert struct {
	Type     AlertType     `json:"type"`
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
}

type MedicalAlertResult struct {
	HasAlerts   bool           `json:"has_alerts"`
	Alerts      []MedicalAlert `json:"alerts"`
	HasCritical bool           `json:"has_critical"`
}

// MedicalAlertService scans recent moments for patterns that warrant a
// "see a doctor" style notice. A dismissal suppresses an alert only
// until newer qualifying evidence shows up.
type MedicalAlertService struct{}

func NewMedicalAlertService() *MedicalAlertService { return &MedicalAlertService{} }

const (
	bloodWindowDays        = 7
	mucusWindowDays        = 14
	mucusThreshold         = 5
	constipationWindowDays = 3
	constipationSnooze     = 24 * time.Hour
	diarrheaWindowDays     = 7
	diarrheaThreshold      = 5
)

const (
	bloodMessage        = "Blood in stool detected. Please consult a healthcare provider as soon as possible."
	mucusMessage        = "Frequent mucus in stool over the past two weeks. Consider discussing this with a doctor."
	constipationMessage = "No bowel movements logged in the past 3 days. Prolonged constipation may need attention."
	diarrheaMessage     = "Frequent diarrhea over the past week. Staying hydrated is important; see a doctor if it persists."
)

// CheckAlerts evaluates all four detectors against the moment history.
// dismissals maps an alert type to when the user last dismissed it; an
// alert stays hidden while the dismissal is at least as recent as the
// latest evidence for it. Output order is fixed: blood, mucus,
// constipation, diarrhea.
func (s *MedicalAlertService) CheckAlerts(moments []models.Moment, dismissals map[AlertType]time.Time) MedicalAlertResult {
	now := time.Now()
	result := MedicalAlertResult{Alerts: []MedicalAlert{}}

	checks := []struct {
		alertType AlertType
		severity  AlertSeverity
		message   string
		active    bool
	}{
		{AlertBlood, SeverityCritical, bloodMessage, s.bloodActive(moments, now)},
		{AlertMucus, SeverityWarning, mucusMessage, s.mucusActive(moments, now)},
		{AlertConstipation, SeverityWarning, constipationMessage, s.constipationActive(moments, now)},
		{AlertDiarrhea, SeverityWarning, diarrheaMessage, s.diarrheaActive(moments, now)},
	}

	for _, c := range checks {
		if !c.active {
			continue
		}
		if dismissedAt, ok := dismissals[c.alertType]; ok {
			// Constipation evidence is the absence of logs, so its
			// dismissal works as a time snooze rather than an
			// event-based one.
			ref := s.dismissalReference(c.alertType, moments, now)
			if c.alertType == AlertConstipation {
				ref = now.Add(-constipationSnooze)
			}
			if !dismissedAt.Before(ref) {
				continue
			}
		}
		result.Alerts = append(result.Alerts, MedicalAlert{Type: c.alertType, Severity: c.severity, Message: c.message})
		if c.severity == SeverityCritical {
			result.HasCritical = true
		}
	}

	result.HasAlerts = len(result.Alerts) > 0
	return result
}

// GetDismissalReference returns the timestamp a dismissal of the given
// alert type is compared against: the latest qualifying moment, or now
// for constipation where the evidence is the absence of moments.
func (s *MedicalAlertService) GetDismissalReference(alertType AlertType, moments []models.Moment) time.Time {
	return s.dismissalReference(alertType, moments, time.Now())
}

func (s *MedicalAlertService) dismissalReference(alertType AlertType, moments []models.Moment, now time.Time) time.Time {
	var qualifies func(models.Moment) bool
	var windowDays int

	switch alertType {
	case AlertBlood:
		qualifies = func(m models.Moment) bool { return m.HasTag(models.TagBlood) }
		windowDays = bloodWindowDays
	case AlertMucus:
		qualifies = func(m models.Moment) bool { return m.HasTag(models.TagMucus) }
		windowDays = mucusWindowDays
	case AlertDiarrhea:
		qualifies = func(m models.Moment) bool { return m.IsDiarrhea() }
		windowDays = diarrheaWindowDays
	case AlertConstipation:
		return now
	default:
		return now
	}

	cutoff := now.Add(-time.Duration(windowDays) * 24 * time.Hour)
	var latest time.Time
	for _, m := range moments {
		if m.Timestamp.Before(cutoff) || !qualifies(m) {
			continue
		}
		if m.Timestamp.After(latest) {
			latest = m.Timestamp
		}
	}
	if latest.IsZero() {
		return now
	}
	return latest
}

func (s *MedicalAlertService) bloodActive(moments []models.Moment, now time.Time) bool {
	return countInWindow(moments, now, bloodWindowDays, func(m models.Moment) bool {
		return m.HasTag(models.TagBlood)
	}) >= 1
}

func (s *MedicalAlertService) mucusActive(moments []models.Moment, now time.Time) bool {
	return countInWindow(moments, now, mucusWindowDays, func(m models.Moment) bool {
		return m.HasTag(models.TagMucus)
	}) >= mucusThreshold
}

// constipationActive fires only for users with any logging history:
// an empty account is not evidence of constipation. The 24h snooze is
// applied through the dismissal reference being "now".
func (s *MedicalAlertService) constipationActive(moments []models.Moment, now time.Time) bool {
	if len(moments) == 0 {
		return false
	}
	return countInWindow(moments, now, constipationWindowDays, func(models.Moment) bool { return true }) == 0
}

func (s *MedicalAlertService) diarrheaActive(moments []models.Moment, now time.Time) bool {
	return countInWindow(moments, now, diarrheaWindowDays, func(m models.Moment) bool {
		return m.IsDiarrhea()
	}) >= diarrheaThreshold
}

// countInWindow uses a rolling elapsed-time window, not calendar days,
// so a boundary moment is judged the same across DST transitions.
func countInWindow(moments []models.Moment, now time.Time, days int, match func(models.Moment) bool) int {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	n := 0
	for _, m := range moments {
		if m.Timestamp.Before(cutoff) || m.Timestamp.After(now) {
			continue
		}
		if match(m) {
			n++
		}
	}
	return n
}
