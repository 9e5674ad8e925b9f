package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBaselineScore(t *testing.T) {
	cases := []struct {
		name    string
		answers OnboardingAnswers
		want    int
	}{
		{
			"healthy answers",
			OnboardingAnswers{Consistency: "normal", SymptomFrequency: "rarely", Regularity: "daily"},
			100,
		},
		{
			"middling answers",
			OnboardingAnswers{Consistency: "hard", SymptomFrequency: "sometimes", Regularity: "most_days"},
			65,
		},
		{
			"medical flags dominate",
			OnboardingAnswers{Consistency: "normal", SymptomFrequency: "rarely", Regularity: "daily", MedicalFlags: true},
			40,
		},
		{
			"extreme consistency rider",
			OnboardingAnswers{Consistency: "watery", SymptomFrequency: "rarely", Regularity: "daily", MedicalFlags: true},
			5, // 100-30-60-10 = 0, floored
		},
		{
			"worst case floors at five",
			OnboardingAnswers{Consistency: "watery", SymptomFrequency: "often", Regularity: "irregular", MedicalFlags: true},
			5,
		},
		{
			"unknown keys score as worst",
			OnboardingAnswers{Consistency: "???", SymptomFrequency: "never heard of it", Regularity: "daily"},
			40,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeBaselineScore(tc.answers))
		})
	}
}
