package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backend/models"
)

func boolPtr(b bool) *bool { return &b }

func TestApplyFeedback(t *testing.T) {
	triggers := []Trigger{
		{Food: "garlic"},
		{Food: "onion"},
		{Food: "milk"},
	}
	feedback := []models.TriggerFeedback{
		{FoodName: "garlic", UserConfirmed: boolPtr(true)},
		{FoodName: "milk", UserConfirmed: boolPtr(false)},
		{FoodName: "beans", UserConfirmed: boolPtr(true)},
	}

	applyFeedback(triggers, feedback)

	assert.Equal(t, boolPtr(true), triggers[0].UserConfirmed)
	assert.Nil(t, triggers[1].UserConfirmed)
	assert.Equal(t, boolPtr(false), triggers[2].UserConfirmed)
}
