package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"backend/config"
	"backend/models"
)

// InsightService loads a user's records and fans them out to the
// analytics engines. Controllers talk to this, not to the engines.
type InsightService struct {
	score   *HealthScoreService
	medical *MedicalAlertService
	streak  *StreakService
	trigger *TriggerService
}

func NewInsightService() *InsightService {
	return &InsightService{
		score:   NewHealthScoreService(),
		medical: NewMedicalAlertService(),
		streak:  NewStreakService(),
		trigger: NewTriggerService(NewFODMAPService()),
	}
}

func (s *InsightService) GetHealthScore(userID uint) (HealthScore, error) {
	user, err := GetUserByID(userID)
	if err != nil {
		return HealthScore{}, errors.New("user not found")
	}
	moments, err := GetMoments(userID, scoreWindowDays)
	if err != nil {
		return HealthScore{}, err
	}
	logs, err := GetSymptomLogs(userID, scoreWindowDays)
	if err != nil {
		return HealthScore{}, err
	}
	return s.score.ComputeScore(moments, logs, user.BaselineScore), nil
}

func (s *InsightService) GetMedicalAlerts(userID uint) (MedicalAlertResult, error) {
	// Full history: the constipation detector distinguishes "never
	// logged" from "stopped logging", so it must see old moments too.
	moments, err := GetMoments(userID, 0)
	if err != nil {
		return MedicalAlertResult{}, err
	}
	dismissals, err := GetDismissals(userID)
	if err != nil {
		return MedicalAlertResult{}, err
	}
	return s.medical.CheckAlerts(moments, dismissals), nil
}

// DismissAlert records the dismissal against the engine's reference
// point so the alert stays hidden until newer evidence arrives.
func (s *InsightService) DismissAlert(userID uint, alertType AlertType) error {
	switch alertType {
	case AlertBlood, AlertMucus, AlertConstipation, AlertDiarrhea:
	default:
		return errors.New("unknown alert type")
	}

	moments, err := GetMoments(userID, 0)
	if err != nil {
		return err
	}
	ref := s.medical.GetDismissalReference(alertType, moments)

	var row models.DismissedAlert
	err = config.DB.Where("user_id = ? AND alert_type = ?", userID, string(alertType)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.DismissedAlert{UserID: userID, AlertType: string(alertType)}
	} else if err != nil {
		return err
	}
	row.DismissedAt = ref
	return config.DB.Save(&row).Error
}

func GetDismissals(userID uint) (map[AlertType]time.Time, error) {
	var rows []models.DismissedAlert
	if err := config.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	dismissals := make(map[AlertType]time.Time, len(rows))
	for _, r := range rows {
		dismissals[AlertType(r.AlertType)] = r.DismissedAt
	}
	return dismissals, nil
}

func (s *InsightService) GetStreak(userID uint) (StreakResult, error) {
	moments, err := GetMoments(userID, 0)
	if err != nil {
		return StreakResult{}, err
	}
	return s.streak.GetStreakResult(moments), nil
}

const triggerLookbackDays = 90

func (s *InsightService) GetTriggers(ctx context.Context, userID uint) ([]Trigger, error) {
	meals, moments, err := s.loadTriggerInputs(userID)
	if err != nil {
		return nil, err
	}
	triggers, err := s.trigger.DetectTriggers(ctx, meals, moments)
	if err != nil {
		return nil, err
	}

	feedback, err := GetTriggerFeedback(userID)
	if err != nil {
		return nil, err
	}
	applyFeedback(triggers, feedback)
	return triggers, nil
}

func (s *InsightService) GetCombinationTriggers(userID uint) ([]CombinationTrigger, error) {
	meals, moments, err := s.loadTriggerInputs(userID)
	if err != nil {
		return nil, err
	}
	return s.trigger.DetectCombinationTriggers(meals, moments), nil
}

func (s *InsightService) GetPotentialTriggers(userID uint) ([]PotentialTrigger, error) {
	meals, moments, err := s.loadTriggerInputs(userID)
	if err != nil {
		return nil, err
	}
	return s.trigger.GetPotentialTriggers(meals, moments), nil
}

func (s *InsightService) loadTriggerInputs(userID uint) ([]models.Meal, []models.Moment, error) {
	meals, err := GetMeals(userID, triggerLookbackDays)
	if err != nil {
		return nil, nil, err
	}
	moments, err := GetMoments(userID, triggerLookbackDays)
	if err != nil {
		return nil, nil, err
	}
	return meals, moments, nil
}
