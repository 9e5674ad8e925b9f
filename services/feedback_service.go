package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"backend/config"
	"backend/models"
)

// RecordTriggerFeedback upserts the user's verdict on a suspected
// trigger food. One row per (user, normalized food).
func RecordTriggerFeedback(userID uint, food string, confirmed bool, notes string) (*models.TriggerFeedback, error) {
	name := models.NormalizeFoodName(food)
	if name == "" {
		return nil, errors.New("food name is required")
	}

	var fb models.TriggerFeedback
	err := config.DB.Where("user_id = ? AND food_name = ?", userID, name).First(&fb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fb = models.TriggerFeedback{UserID: userID, FoodName: name}
	} else if err != nil {
		return nil, err
	}

	fb.UserConfirmed = &confirmed
	fb.RecordedAt = time.Now()
	fb.Notes = notes

	if err := config.DB.Save(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

func GetTriggerFeedback(userID uint) ([]models.TriggerFeedback, error) {
	var feedback []models.TriggerFeedback
	err := config.DB.Where("user_id = ?", userID).Order("food_name asc").Find(&feedback).Error
	return feedback, err
}

// applyFeedback annotates detected triggers with any stored verdicts.
func applyFeedback(triggers []Trigger, feedback []models.TriggerFeedback) {
	for i := range triggers {
		for j := range feedback {
			if feedback[j].Matches(triggers[i].Food) {
				triggers[i].UserConfirmed = feedback[j].UserConfirmed
				break
			}
		}
	}
}
