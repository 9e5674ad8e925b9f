package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Birthday         string `json:"birthday"`
	HealthConditions string `json:"health_conditions"`
	ProfilePicture   string `json:"profile_picture"` // base64 data URI when changing
	MFAEnabled       *bool  `json:"mfa_enabled"`
}

func UpdateProfile(userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := GetUserByID(userID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if update.FirstName != "" {
		user.FirstName = update.FirstName
	}
	if update.LastName != "" {
		user.LastName = update.LastName
	}
	if update.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", update.Birthday)
		if err != nil {
			return nil, errors.New("birthday must be YYYY-MM-DD")
		}
		user.Birthday = birthday
	}
	if update.HealthConditions != "" {
		user.HealthConditions = update.HealthConditions
	}
	if update.MFAEnabled != nil {
		user.MFAEnabled = *update.MFAEnabled
	}
	if update.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(update.ProfilePicture, fmt.Sprintf("profile-%d", userID))
		if err != nil {
			return nil, err
		}
		user.ProfilePicture = url
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CompleteOnboarding scores the quiz and stores the baseline the
// health score engine blends against.
func CompleteOnboarding(userID uint, answers utils.OnboardingAnswers) (int, error) {
	user, err := GetUserByID(userID)
	if err != nil {
		return 0, errors.New("user not found")
	}

	baseline := utils.ComputeBaselineScore(answers)
	user.BaselineScore = baseline
	user.Onboarded = true

	if err := config.DB.Save(user).Error; err != nil {
		return 0, err
	}
	return baseline, nil
}
