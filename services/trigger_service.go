package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"backend/models"
)

// FODMAPClassifier is the food-knowledge collaborator the trigger
// engine leans on for enrichment. Satisfied by FODMAPService.
type FODMAPClassifier interface {
	AnalyzeFood(ctx context.Context, food string) (*FODMAPInfo, error)
	LowFODMAPAlternatives(food string) []string
}

type TriggerConfidence string

const (
	ConfidenceHigh   TriggerConfidence = "High"
	ConfidenceMedium TriggerConfidence = "Medium"
	ConfidenceLow    TriggerConfidence = "Low"
)

type Trigger struct {
	Food               string            `json:"food"`
	Occurrences        int               `json:"occurrences"`
	SymptomOccurrences int               `json:"symptom_occurrences"`
	Probability        float64           `json:"probability"`
	Confidence         TriggerConfidence `json:"confidence"`
	Symptoms           []string          `json:"symptoms"`
	AvgLatencyHours    float64           `json:"avg_latency_hours"`
	FrequencyText      string            `json:"frequency_text"`
	FODMAP             *FODMAPInfo       `json:"fodmap,omitempty"`
	Alternatives       []string          `json:"alternatives,omitempty"`
	UserConfirmed      *bool             `json:"user_confirmed,omitempty"`
}

type CombinationTrigger struct {
	Foods              []string `json:"foods"`
	Key                string   `json:"key"`
	TotalOccurrences   int      `json:"total_occurrences"`
	SymptomOccurrences int      `json:"symptom_occurrences"`
	Probability        float64  `json:"probability"`
}

type PotentialTrigger struct {
	Food          string   `json:"food"`
	Count         int      `json:"count"`
	Score         float64  `json:"score"`
	Symptoms      []string `json:"symptoms"`
	FrequencyText string   `json:"frequency_text"`
}

// TriggerService correlates meals with the symptomatic moments that
// follow them. A moment "follows" a meal when it lands 2 to 24 hours
// after it; anything sooner is unlikely to be that meal, anything
// later too muddled to attribute.
type TriggerService struct {
	fodmap FODMAPClassifier
}

func NewTriggerService(fodmap FODMAPClassifier) *TriggerService {
	return &TriggerService{fodmap: fodmap}
}

const (
	followUpMinHours = 2.0
	followUpMaxHours = 24.0
	fastFollowHours  = 8.0
	fastFollowWeight = 1.5
	slowFollowWeight = 1.0

	triggerMinOccurrences  = 3
	triggerMinSymptomatic  = 2
	triggerResultLimit     = 5
	comboMinOccurrences    = 3
	comboMinSymptomatic    = 2
	comboResultLimit       = 3
	potentialMinCount      = 2
	potentialMinScoreRatio = 0.1
	potentialResultLimit   = 5
)

type foodStats struct {
	occurrences        int
	symptomOccurrences int
	weightedScore      float64
	latencySum         float64
	latencyCount       int
	symptoms           map[string]bool
}

// DetectTriggers scores every logged food by how often symptomatic
// moments followed meals containing it, then enriches the ranked
// candidates with FODMAP data. Classifier failures degrade the
// enrichment for that food only.
func (s *TriggerService) DetectTriggers(ctx context.Context, meals []models.Meal, moments []models.Moment) ([]Trigger, error) {
	stats := s.collectFoodStats(meals, moments, symptomaticMoment)

	var candidates []Trigger
	for _, food := range sortedKeys(stats) {
		st := stats[food]
		if st.occurrences < triggerMinOccurrences || st.symptomOccurrences < triggerMinSymptomatic {
			continue
		}
		probability := float64(st.symptomOccurrences) / float64(st.occurrences)
		var avgLatency float64
		if st.latencyCount > 0 {
			avgLatency = st.latencySum / float64(st.latencyCount)
		}
		candidates = append(candidates, Trigger{
			Food:               food,
			Occurrences:        st.occurrences,
			SymptomOccurrences: st.symptomOccurrences,
			Probability:        round2(probability),
			Confidence:         confidenceFor(probability),
			Symptoms:           sortedSet(st.symptoms),
			AvgLatencyHours:    round2(avgLatency),
			FrequencyText:      fmt.Sprintf("Caused symptoms %d of %d times", st.symptomOccurrences, st.occurrences),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Probability != candidates[j].Probability {
			return candidates[i].Probability > candidates[j].Probability
		}
		if candidates[i].SymptomOccurrences != candidates[j].SymptomOccurrences {
			return candidates[i].SymptomOccurrences > candidates[j].SymptomOccurrences
		}
		return candidates[i].Food < candidates[j].Food
	})
	if len(candidates) > triggerResultLimit {
		candidates = candidates[:triggerResultLimit]
	}

	s.enrich(ctx, candidates)
	return candidates, nil
}

// enrich runs the classifier for every candidate in parallel. Each
// goroutine writes only its own index, so no further coordination
// is needed and the ranking order is preserved.
func (s *TriggerService) enrich(ctx context.Context, triggers []Trigger) {
	if s.fodmap == nil || len(triggers) == 0 {
		return
	}

	var wg sync.WaitGroup
	for i := range triggers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			info, err := s.fodmap.AnalyzeFood(ctx, triggers[i].Food)
			if err != nil {
				log.WithError(err).WithField("food", triggers[i].Food).Warn("fodmap lookup failed")
				return
			}
			triggers[i].FODMAP = info
			if info != nil && info.Level == FODMAPHigh {
				triggers[i].Alternatives = s.fodmap.LowFODMAPAlternatives(triggers[i].Food)
			}
		}(i)
	}
	wg.Wait()
}

// DetectCombinationTriggers looks for food pairs that are symptomatic
// together. Pairing uses the raw food list of each meal; a pair key is
// its two normalized names joined with " + ".
func (s *TriggerService) DetectCombinationTriggers(meals []models.Meal, moments []models.Moment) []CombinationTrigger {
	type comboStats struct {
		foods    []string
		total    int
		symptoms int
	}
	stats := make(map[string]*comboStats)

	for _, meal := range meals {
		foods := meal.FoodList()
		if len(foods) < 2 {
			continue
		}
		symptomatic := hasFollowUp(meal, moments, comboSymptomaticMoment)

		seen := make(map[string]bool)
		for i := 0; i < len(foods); i++ {
			for j := i + 1; j < len(foods); j++ {
				a := models.NormalizeFoodName(foods[i])
				b := models.NormalizeFoodName(foods[j])
				if a == "" || b == "" || a == b {
					continue
				}
				if b < a {
					a, b = b, a
				}
				key := a + " + " + b
				if seen[key] {
					continue
				}
				seen[key] = true

				st, ok := stats[key]
				if !ok {
					st = &comboStats{foods: []string{a, b}}
					stats[key] = st
				}
				st.total++
				if symptomatic {
					st.symptoms++
				}
			}
		}
	}

	var combos []CombinationTrigger
	for _, key := range sortedKeys(stats) {
		st := stats[key]
		if st.total < comboMinOccurrences || st.symptoms < comboMinSymptomatic {
			continue
		}
		combos = append(combos, CombinationTrigger{
			Foods:              st.foods,
			Key:                key,
			TotalOccurrences:   st.total,
			SymptomOccurrences: st.symptoms,
			Probability:        round2(float64(st.symptoms) / float64(st.total)),
		})
	}

	sort.SliceStable(combos, func(i, j int) bool {
		if combos[i].Probability != combos[j].Probability {
			return combos[i].Probability > combos[j].Probability
		}
		return combos[i].Key < combos[j].Key
	})
	if len(combos) > comboResultLimit {
		combos = combos[:comboResultLimit]
	}
	return combos
}

// GetPotentialTriggers is the looser first-pass list: foods eaten at
// least twice whose weighted symptom score stands out. Kept alongside
// DetectTriggers because it surfaces suspects before the stricter
// thresholds have enough data.
func (s *TriggerService) GetPotentialTriggers(meals []models.Meal, moments []models.Moment) []PotentialTrigger {
	stats := s.collectFoodStats(meals, moments, symptomaticMoment)

	var potentials []PotentialTrigger
	for _, food := range sortedKeys(stats) {
		st := stats[food]
		if st.occurrences < potentialMinCount {
			continue
		}
		ratio := st.weightedScore / float64(st.occurrences)
		if ratio <= potentialMinScoreRatio {
			continue
		}
		potentials = append(potentials, PotentialTrigger{
			Food:          capitalizeFirst(food),
			Count:         st.occurrences,
			Score:         round2(ratio),
			Symptoms:      sortedSet(st.symptoms),
			FrequencyText: fmt.Sprintf("Caused symptoms %d of %d times", st.symptomOccurrences, st.occurrences),
		})
	}

	sort.SliceStable(potentials, func(i, j int) bool {
		if potentials[i].Score != potentials[j].Score {
			return potentials[i].Score > potentials[j].Score
		}
		return potentials[i].Food < potentials[j].Food
	})
	if len(potentials) > potentialResultLimit {
		potentials = potentials[:potentialResultLimit]
	}
	return potentials
}

func (s *TriggerService) collectFoodStats(meals []models.Meal, moments []models.Moment, symptomatic func(models.Moment) bool) map[string]*foodStats {
	stats := make(map[string]*foodStats)

	for _, meal := range meals {
		foods := uniqueNormalized(meal.FoodsForAnalysis())
		if len(foods) == 0 {
			continue
		}

		followUps := followUpsFor(meal, moments, symptomatic)

		for _, food := range foods {
			st, ok := stats[food]
			if !ok {
				st = &foodStats{symptoms: make(map[string]bool)}
				stats[food] = st
			}
			st.occurrences++
			if len(followUps) == 0 {
				continue
			}
			st.symptomOccurrences++
			for _, fu := range followUps {
				hours := fu.HoursSince(meal.Timestamp)
				if hours <= fastFollowHours {
					st.weightedScore += fastFollowWeight
				} else {
					st.weightedScore += slowFollowWeight
				}
				st.latencySum += hours
				st.latencyCount++
				for _, label := range symptomLabels(fu) {
					st.symptoms[label] = true
				}
			}
		}
	}
	return stats
}

// symptomaticMoment is the follow-up filter for single-food analysis.
func symptomaticMoment(m models.Moment) bool {
	return m.HasSymptoms() || m.IsUnhealthyStool() || m.HasRedFlags()
}

// comboSymptomaticMoment is the stricter filter used for pairs, where
// red-flag tags alone are a medical matter rather than a food one.
func comboSymptomaticMoment(m models.Moment) bool {
	return m.HasSymptoms() || m.IsUnhealthyStool()
}

func followUpsFor(meal models.Meal, moments []models.Moment, symptomatic func(models.Moment) bool) []models.Moment {
	var out []models.Moment
	for _, m := range moments {
		hours := m.HoursSince(meal.Timestamp)
		if hours < followUpMinHours || hours > followUpMaxHours {
			continue
		}
		if symptomatic(m) {
			out = append(out, m)
		}
	}
	return out
}

func hasFollowUp(meal models.Meal, moments []models.Moment, symptomatic func(models.Moment) bool) bool {
	for _, m := range moments {
		hours := m.HoursSince(meal.Timestamp)
		if hours < followUpMinHours || hours > followUpMaxHours {
			continue
		}
		if symptomatic(m) {
			return true
		}
	}
	return false
}

func symptomLabels(m models.Moment) []string {
	var labels []string
	if m.Bloating {
		labels = append(labels, "bloating")
	}
	if m.Gas {
		labels = append(labels, "gas")
	}
	if m.Cramping {
		labels = append(labels, "cramping")
	}
	if m.Nausea {
		labels = append(labels, "nausea")
	}
	if m.IsConstipated() {
		labels = append(labels, "constipation")
	}
	if m.IsDiarrhea() {
		labels = append(labels, "diarrhea")
	}
	if m.HasTag(models.TagBlood) {
		labels = append(labels, "blood in stool")
	}
	if m.HasTag(models.TagMucus) {
		labels = append(labels, "mucus in stool")
	}
	return labels
}

// confidenceFor bands the empirical symptom probability. Monotonic:
// a higher probability never yields a lower tier.
func confidenceFor(probability float64) TriggerConfidence {
	switch {
	case probability >= 0.7:
		return ConfidenceHigh
	case probability >= 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func uniqueNormalized(foods []string) []string {
	seen := make(map[string]bool, len(foods))
	var out []string
	for _, f := range foods {
		n := models.NormalizeFoodName(f)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSet(set map[string]bool) []string {
	return sortedKeys(set)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// capitalizeFirst uppercases only the leading character, leaving the
// rest of a multi-word name as logged.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
