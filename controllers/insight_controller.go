package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/services"
)

var insights = services.NewInsightService()

func GetHealthScore(c *gin.Context) {
	score, err := insights.GetHealthScore(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, score)
}

func GetMedicalAlerts(c *gin.Context) {
	result, err := insights.GetMedicalAlerts(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type DismissAlertInput struct {
	Type string `json:"type" binding:"required"`
}

func DismissAlert(c *gin.Context) {
	var input DismissAlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := insights.DismissAlert(currentUserID(c), services.AlertType(input.Type)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "alert dismissed"})
}

func GetStreak(c *gin.Context) {
	result, err := insights.GetStreak(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func GetTriggers(c *gin.Context) {
	triggers, err := insights.GetTriggers(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"triggers": triggers})
}

func GetCombinationTriggers(c *gin.Context) {
	combos, err := insights.GetCombinationTriggers(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"combinations": combos})
}

func GetPotentialTriggers(c *gin.Context) {
	potentials, err := insights.GetPotentialTriggers(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"potential_triggers": potentials})
}

type FeedbackInput struct {
	Food      string `json:"food" binding:"required"`
	Confirmed *bool  `json:"confirmed" binding:"required"`
	Notes     string `json:"notes"`
}

func RecordTriggerFeedback(c *gin.Context) {
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := services.RecordTriggerFeedback(currentUserID(c), input.Food, *input.Confirmed, input.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fb)
}

func GetAlertHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	alerts, err := services.GetAlertHistory(currentUserID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
