package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"backend/config"
	"backend/models"
)

type MomentInput struct {
	Timestamp   time.Time `json:"timestamp"`
	BristolType *int      `json:"bristol_type"`
	Bloating    bool      `json:"bloating"`
	Gas         bool      `json:"gas"`
	Cramping    bool      `json:"cramping"`
	Nausea      bool      `json:"nausea"`
	Tags        []string  `json:"tags"`
	Urgency     string    `json:"urgency"`
	PainScore   *int      `json:"pain_score"`
	Notes       string    `json:"notes"`
}

func LogMoment(userID uint, input MomentInput) (*models.Moment, error) {
	if input.BristolType != nil && (*input.BristolType < 1 || *input.BristolType > 7) {
		return nil, errors.New("bristol type must be between 1 and 7")
	}
	if input.PainScore != nil && (*input.PainScore < 0 || *input.PainScore > 10) {
		return nil, errors.New("pain score must be between 0 and 10")
	}
	switch input.Urgency {
	case "", models.UrgencyNone, models.UrgencyMild, models.UrgencySevere:
	default:
		return nil, errors.New("unknown urgency level")
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	moment := models.Moment{
		ID:          uuid.NewString(),
		UserID:      userID,
		Timestamp:   ts,
		BristolType: input.BristolType,
		Bloating:    input.Bloating,
		Gas:         input.Gas,
		Cramping:    input.Cramping,
		Nausea:      input.Nausea,
		Tags:        strings.Join(input.Tags, ","),
		Urgency:     input.Urgency,
		PainScore:   input.PainScore,
		Notes:       input.Notes,
	}

	if err := config.DB.Create(&moment).Error; err != nil {
		return nil, err
	}

	notifyNewMedicalAlerts(userID)
	return &moment, nil
}

func GetMoments(userID uint, sinceDays int) ([]models.Moment, error) {
	var moments []models.Moment
	q := config.DB.Where("user_id = ?", userID)
	if sinceDays > 0 {
		q = q.Where("timestamp >= ?", time.Now().AddDate(0, 0, -sinceDays))
	}
	err := q.Order("timestamp desc").Find(&moments).Error
	return moments, err
}

func DeleteMoment(userID uint, momentID string) error {
	result := config.DB.Where("id = ? AND user_id = ?", momentID, userID).Delete(&models.Moment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("moment not found")
	}
	return nil
}

type SymptomLogInput struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Severity  int       `json:"severity"`
	Duration  *int      `json:"duration"`
	Notes     string    `json:"notes"`
}

func LogSymptom(userID uint, input SymptomLogInput) (*models.SymptomLog, error) {
	switch input.Type {
	case "bloating", "gas", "cramping", "nausea":
	default:
		return nil, errors.New("unknown symptom type")
	}
	if input.Severity < 1 || input.Severity > 10 {
		return nil, errors.New("severity must be between 1 and 10")
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	entry := models.SymptomLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Timestamp: ts,
		Type:      input.Type,
		Severity:  input.Severity,
		Duration:  input.Duration,
		Notes:     input.Notes,
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func GetSymptomLogs(userID uint, sinceDays int) ([]models.SymptomLog, error) {
	var logs []models.SymptomLog
	q := config.DB.Where("user_id = ?", userID)
	if sinceDays > 0 {
		q = q.Where("timestamp >= ?", time.Now().AddDate(0, 0, -sinceDays))
	}
	err := q.Order("timestamp desc").Find(&logs).Error
	return logs, err
}

// notifyNewMedicalAlerts re-runs the detectors after a log and fans
// out anything critical that is not currently dismissed.
func notifyNewMedicalAlerts(userID uint) {
	moments, err := GetMoments(userID, 0)
	if err != nil {
		return
	}
	dismissals, err := GetDismissals(userID)
	if err != nil {
		return
	}

	result := NewMedicalAlertService().CheckAlerts(moments, dismissals)
	for _, alert := range result.Alerts {
		if alert.Severity != SeverityCritical {
			continue
		}
		EmitAlert(userID, string(alert.Type), string(alert.Severity), alert.Message)
	}
}
