package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/services"
	"backend/utils"
)

func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

func GetProfile(c *gin.Context) {
	user, err := services.GetUserByID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":             user.Email,
		"first_name":        user.FirstName,
		"last_name":         user.LastName,
		"birthday":          user.Birthday,
		"health_conditions": user.HealthConditions,
		"profile_picture":   user.ProfilePicture,
		"mfa_enabled":       user.MFAEnabled,
		"onboarded":         user.Onboarded,
		"baseline_score":    user.BaselineScore,
	})
}

func UpdateProfile(c *gin.Context) {
	var input services.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateProfile(currentUserID(c), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "profile_picture": user.ProfilePicture})
}

func CompleteOnboarding(c *gin.Context) {
	var answers utils.OnboardingAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	baseline, err := services.CompleteOnboarding(currentUserID(c), answers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"baseline_score": baseline})
}
