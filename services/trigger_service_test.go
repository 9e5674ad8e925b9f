package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/models"
)

func mealAt(age time.Duration, foods string) models.Meal {
	return models.Meal{Timestamp: time.Now().Add(-age), Foods: foods}
}

func symptomAt(age time.Duration) models.Moment {
	return models.Moment{Timestamp: time.Now().Add(-age), Bloating: true}
}

// triggerScenario builds n meals of the given foods, each followed by
// a bloating moment 4 hours later when symptomatic is true.
func triggerScenario(n int, foods string, symptomatic int) ([]models.Meal, []models.Moment) {
	var meals []models.Meal
	var moments []models.Moment
	for i := 0; i < n; i++ {
		age := time.Duration(i+2) * 48 * time.Hour
		meals = append(meals, mealAt(age, foods))
		if i < symptomatic {
			moments = append(moments, symptomAt(age-4*time.Hour))
		}
	}
	return meals, moments
}

type stubClassifier struct {
	info *FODMAPInfo
	err  error
	alts []string
}

func (s *stubClassifier) AnalyzeFood(ctx context.Context, food string) (*FODMAPInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.info, nil
}

func (s *stubClassifier) LowFODMAPAlternatives(food string) []string { return s.alts }

func TestDetectTriggers_ThresholdsAndRanking(t *testing.T) {
	svc := NewTriggerService(nil)

	// Garlic: 4 meals, 3 symptomatic. Rice: 4 meals, 0 symptomatic.
	meals, moments := triggerScenario(4, "garlic", 3)
	riceMeals, _ := triggerScenario(4, "rice", 0)
	for i := range riceMeals {
		riceMeals[i].Timestamp = riceMeals[i].Timestamp.Add(-30 * 24 * time.Hour)
	}
	meals = append(meals, riceMeals...)

	triggers, err := svc.DetectTriggers(context.Background(), meals, moments)
	require.NoError(t, err)
	require.Len(t, triggers, 1)

	trig := triggers[0]
	assert.Equal(t, "garlic", trig.Food)
	assert.Equal(t, 4, trig.Occurrences)
	assert.Equal(t, 3, trig.SymptomOccurrences)
	assert.Equal(t, 0.75, trig.Probability)
	assert.Equal(t, ConfidenceHigh, trig.Confidence)
	assert.Contains(t, trig.Symptoms, "bloating")
	assert.Equal(t, "Caused symptoms 3 of 4 times", trig.FrequencyText)
	assert.InDelta(t, 4.0, trig.AvgLatencyHours, 0.1)
}

func TestDetectTriggers_BelowThresholdsExcluded(t *testing.T) {
	svc := NewTriggerService(nil)

	// Only 2 occurrences: not enough however symptomatic.
	meals, moments := triggerScenario(2, "onion", 2)
	triggers, err := svc.DetectTriggers(context.Background(), meals, moments)
	require.NoError(t, err)
	assert.Empty(t, triggers)

	// 3 occurrences but only 1 symptomatic: still excluded.
	meals, moments = triggerScenario(3, "onion", 1)
	triggers, err = svc.DetectTriggers(context.Background(), meals, moments)
	require.NoError(t, err)
	assert.Empty(t, triggers)
}

func TestDetectTriggers_FollowUpWindowBounds(t *testing.T) {
	svc := NewTriggerService(nil)

	var meals []models.Meal
	var moments []models.Moment
	for i := 0; i < 3; i++ {
		age := time.Duration(i+2) * 48 * time.Hour
		meals = append(meals, mealAt(age, "beans"))
		// One hour after the meal: too soon to attribute.
		moments = append(moments, symptomAt(age-1*time.Hour))
		// Thirty hours after: too late.
		moments = append(moments, symptomAt(age-30*time.Hour))
	}

	triggers, err := svc.DetectTriggers(context.Background(), meals, moments)
	require.NoError(t, err)
	assert.Empty(t, triggers)
}

func TestDetectTriggers_ConfidenceTracksProbability(t *testing.T) {
	svc := NewTriggerService(nil)

	// 2 symptomatic of 4 meals: probability 0.5 -> Medium.
	meals, moments := triggerScenario(4, "wheat", 2)
	triggers, err := svc.DetectTriggers(context.Background(), meals, moments)
	require.NoError(t, err)
	require.Len(t, triggers, 1)
	assert.Equal(t, ConfidenceMedium, triggers[0].Confidence)

	// 4 of 5: probability 0.8 -> High.
	meals, moments = triggerScenario(5, "wheat", 4)
	triggers, err = svc.DetectTriggers(context.Background(), meals, moments)
	require.NoError(t, err)
	require.Len(t, triggers, 1)
	assert.Equal(t, ConfidenceHigh, triggers[0].Confidence)
}

func TestDetectTriggers_UnhealthyStoolCounts(t *testing.T) {
	svc := NewTriggerService(nil)

	var meals []models.Meal
	var moments []models.Moment
	for i := 0; i < 3; i++ {
		age := time.Duration(i+2) * 48 * time.Hour
		meals = append(meals, mealAt(age, "milk"))
		b := 6
		moments = append(moments, models.Moment{Timestamp: time.Now().Add(-(age - 5*time.Hour)), BristolType: &b})
	}

	triggers, err := svc.DetectTriggers(context.Background(), meals, moments)
	require.NoError(t, err)
	require.Len(t, triggers, 1)
	assert.Contains(t, triggers[0].Symptoms, "diarrhea")
}

func TestDetectTriggers_FODMAPEnrichment(t *testing.T) {
	stub := &stubClassifier{
		info: &FODMAPInfo{Food: "garlic", Level: FODMAPHigh, Category: "fructan"},
		alts: []string{"garlic-infused oil"},
	}
	svc := NewTriggerService(stub)
	meals, moments := triggerScenario(4, "garlic", 3)

	triggers, err := svc.DetectTriggers(context.Background(), meals, moments)
	require.NoError(t, err)
	require.Len(t, triggers, 1)
	require.NotNil(t, triggers[0].FODMAP)
	assert.Equal(t, FODMAPHigh, triggers[0].FODMAP.Level)
	assert.Equal(t, []string{"garlic-infused oil"}, triggers[0].Alternatives)
}

func TestDetectTriggers_ClassifierErrorIsIsolated(t *testing.T) {
	stub := &stubClassifier{err: errors.New("lookup unavailable")}
	svc := NewTriggerService(stub)
	meals, moments := triggerScenario(4, "garlic", 3)

	triggers, err := svc.DetectTriggers(context.Background(), meals, moments)
	require.NoError(t, err)
	require.Len(t, triggers, 1)
	assert.Nil(t, triggers[0].FODMAP)
}

func TestDetectCombinationTriggers(t *testing.T) {
	svc := NewTriggerService(nil)

	var meals []models.Meal
	var moments []models.Moment
	for i := 0; i < 3; i++ {
		age := time.Duration(i+2) * 48 * time.Hour
		meals = append(meals, mealAt(age, "Onion, Garlic"))
		if i < 2 {
			moments = append(moments, symptomAt(age-4*time.Hour))
		}
	}

	combos := svc.DetectCombinationTriggers(meals, moments)

	require.Len(t, combos, 1)
	assert.Equal(t, "garlic + onion", combos[0].Key)
	assert.Equal(t, []string{"garlic", "onion"}, combos[0].Foods)
	assert.Equal(t, 3, combos[0].TotalOccurrences)
	assert.Equal(t, 2, combos[0].SymptomOccurrences)
	assert.InDelta(t, 0.67, combos[0].Probability, 0.01)
}

func TestDetectCombinationTriggers_RedFlagsAloneDontCount(t *testing.T) {
	svc := NewTriggerService(nil)

	var meals []models.Meal
	var moments []models.Moment
	for i := 0; i < 3; i++ {
		age := time.Duration(i+2) * 48 * time.Hour
		meals = append(meals, mealAt(age, "Onion, Garlic"))
		b := 4
		moments = append(moments, models.Moment{
			Timestamp:   time.Now().Add(-(age - 4*time.Hour)),
			BristolType: &b,
			Tags:        models.TagBlood,
		})
	}

	assert.Empty(t, svc.DetectCombinationTriggers(meals, moments))
}

func TestGetPotentialTriggers(t *testing.T) {
	svc := NewTriggerService(nil)

	// 2 garlic meals, both with fast follow-ups: score 1.5 each.
	meals, moments := triggerScenario(2, "garlic", 2)

	potentials := svc.GetPotentialTriggers(meals, moments)

	require.Len(t, potentials, 1)
	assert.Equal(t, "Garlic", potentials[0].Food)
	assert.Equal(t, 2, potentials[0].Count)
	assert.Equal(t, 1.5, potentials[0].Score)
	assert.Equal(t, []string{"bloating"}, potentials[0].Symptoms)
	assert.Equal(t, "Caused symptoms 2 of 2 times", potentials[0].FrequencyText)
}

func TestGetPotentialTriggers_CapitalizesFirstCharacterOnly(t *testing.T) {
	svc := NewTriggerService(nil)
	meals, moments := triggerScenario(2, "garlic naan bread", 2)

	potentials := svc.GetPotentialTriggers(meals, moments)

	require.Len(t, potentials, 1)
	assert.Equal(t, "Garlic naan bread", potentials[0].Food)
}

func TestGetPotentialTriggers_SingleMealExcluded(t *testing.T) {
	svc := NewTriggerService(nil)
	meals, moments := triggerScenario(1, "garlic", 1)

	assert.Empty(t, svc.GetPotentialTriggers(meals, moments))
}
