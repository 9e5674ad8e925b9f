package services

import (
	"math"
	"time"

	"backend/models"
)

type HealthGrade string

const (
	GradeExcellent HealthGrade = "Excellent"
	GradeGood      HealthGrade = "Good"
	GradeFair      HealthGrade = "Fair"
	GradePoor      HealthGrade = "Poor"
)

// Remaining points per category after penalties were applied. Medical is
// binary: 0 when a red-flag tag was seen in the window, 10 otherwise.
type HealthScoreBreakdown struct {
	Bristol    int `json:"bristol"`
	Symptoms   int `json:"symptoms"`
	Regularity int `json:"regularity"`
	Medical    int `json:"medical"`
}

type HealthScore struct {
	Value      int                   `json:"value"` // 0-100
	Grade      HealthGrade           `json:"grade"`
	Breakdown  *HealthScoreBreakdown `json:"breakdown,omitempty"`
	IsBaseline bool                  `json:"is_baseline"`
}

// HealthScoreService turns a 7-day window of moments (plus standalone
// symptom logs) into a 0-100 score, blended against the onboarding
// baseline. Pure function over its inputs; never errors.
type HealthScoreService struct{}

func NewHealthScoreService() *HealthScoreService { return &HealthScoreService{} }

const (
	scoreWindowDays = 7

	bristolMaxPenalty = 40
	symptomMaxPenalty = 30
	regularMaxPenalty = 20
	medicalPenalty    = 60

	scoreFloor = 5
)

// ComputeScore applies the four penalty reductions in order (bristol,
// symptoms, regularity, medical), clamps the result to [5,100], then
// blends with the baseline weighted by how much recent data exists.
// With no recent data at all the baseline is returned untouched.
func (s *HealthScoreService) ComputeScore(moments []models.Moment, symptomLogs []models.SymptomLog, baseline int) HealthScore {
	now := time.Now()
	cutoff := now.AddDate(0, 0, -scoreWindowDays)

	var recent []models.Moment
	for _, m := range moments {
		if !m.Timestamp.Before(cutoff) {
			recent = append(recent, m)
		}
	}
	var recentLogs []models.SymptomLog
	for _, l := range symptomLogs {
		if !l.Timestamp.Before(cutoff) {
			recentLogs = append(recentLogs, l)
		}
	}

	// New or inactive user: don't penalize an empty window.
	if len(recent) == 0 && len(recentLogs) == 0 {
		return scoreFromBaseline(baseline)
	}

	score := 100.0

	bristolPenalty := avgBristolPenalty(recent)
	score -= bristolPenalty

	symPenalty := symptomPenalty(recent, recentLogs)
	score -= float64(symPenalty)

	regPenalty := regularityPenalty(recent, now)
	score -= float64(regPenalty)

	redFlags := false
	for _, m := range recent {
		if m.HasRedFlags() {
			redFlags = true
			break
		}
	}
	if redFlags {
		score -= medicalPenalty
	}

	if score < scoreFloor {
		score = scoreFloor
	}
	if score > 100 {
		score = 100
	}

	breakdown := &HealthScoreBreakdown{
		Bristol:    bristolMaxPenalty - int(math.Round(bristolPenalty)),
		Symptoms:   symptomMaxPenalty - symPenalty,
		Regularity: regularMaxPenalty - regPenalty,
		Medical:    10,
	}
	if redFlags {
		breakdown.Medical = 0
	}

	return blendScore(score, baseline, len(recent)+len(recentLogs), breakdown)
}

// avgBristolPenalty averages the per-moment penalty over moments with a
// recorded Bristol type: 0 for the ideal 3-4 band, 10 for the
// acceptable 2/5 band, 30 for the concerning 1/6/7 band.
func avgBristolPenalty(moments []models.Moment) float64 {
	var sum float64
	var n int
	for _, m := range moments {
		if m.BristolType == nil {
			continue
		}
		n++
		switch *m.BristolType {
		case 3, 4:
			// ideal, no penalty
		case 2, 5:
			sum += 10
		default: // 1, 6, 7
			sum += 30
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// symptomPenalty counts symptomatic moments plus standalone symptom
// logs in the window and maps the count through fixed thresholds.
func symptomPenalty(moments []models.Moment, logs []models.SymptomLog) int {
	count := len(logs)
	for _, m := range moments {
		if m.HasSymptoms() {
			count++
		}
	}
	switch {
	case count == 0:
		return 0
	case count <= 2:
		return 10
	case count <= 4:
		return 20
	default:
		return 30
	}
}

// regularityPenalty looks at how often the user went in the window.
// A single moment gets a grace period when it is less than a day old,
// so a brand-new logger is not punished for lack of history.
func regularityPenalty(moments []models.Moment, now time.Time) int {
	switch n := len(moments); {
	case n >= 4:
		return 0
	case n >= 2:
		return 5
	case n == 1:
		if now.Sub(moments[0].Timestamp) < 24*time.Hour {
			return 5
		}
		return 15
	default:
		// Reachable only when standalone symptom logs kept the window
		// non-empty while no moments exist.
		return 20
	}
}

// blendScore weights the computed score against the baseline by the
// amount of recent data: sparse logs lean on the baseline, a full week
// of logs almost entirely on the computation.
func blendScore(computed float64, baseline, logCount int, breakdown *HealthScoreBreakdown) HealthScore {
	if logCount == 0 {
		return scoreFromBaseline(baseline)
	}

	var baselineWeight float64
	switch {
	case logCount <= 2:
		baselineWeight = 0.7
	case logCount <= 4:
		baselineWeight = 0.5
	case logCount <= 6:
		baselineWeight = 0.3
	default:
		baselineWeight = 0.1
	}

	blended := float64(baseline)*baselineWeight + computed*(1-baselineWeight)
	value := clampScore(int(math.Round(blended)))
	return HealthScore{Value: value, Grade: gradeFor(value), Breakdown: breakdown}
}

func scoreFromBaseline(baseline int) HealthScore {
	value := clampScore(baseline)
	return HealthScore{Value: value, Grade: gradeFor(value), IsBaseline: true}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func gradeFor(score int) HealthGrade {
	switch {
	case score >= 85:
		return GradeExcellent
	case score >= 65:
		return GradeGood
	case score >= 45:
		return GradeFair
	default:
		return GradePoor
	}
}
