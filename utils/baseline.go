package utils

// Onboarding quiz answers, as submitted by the app. Each field is a
// fixed choice key; unknown keys score as the worst option so a
// malformed payload can't inflate the baseline.
type OnboardingAnswers struct {
	// Usual stool consistency: "very_hard", "hard", "normal",
	// "soft", "watery".
	Consistency string `json:"consistency"`
	// How often things feel off: "rarely", "sometimes", "often".
	SymptomFrequency string `json:"symptom_frequency"`
	// Bowel movement regularity: "daily", "most_days", "irregular".
	Regularity string `json:"regularity"`
	// Ever noticed blood or mucus.
	MedicalFlags bool `json:"medical_flags"`
}

var consistencyPenalty = map[string]int{
	"very_hard": 25,
	"hard":      10,
	"normal":    0,
	"soft":      15,
	"watery":    30,
}

var symptomFrequencyPenalty = map[string]int{
	"rarely":    0,
	"sometimes": 15,
	"often":     30,
}

var regularityPenaltyTable = map[string]int{
	"daily":     0,
	"most_days": 10,
	"irregular": 20,
}

// ComputeBaselineScore turns quiz answers into the 0-100 starting
// score recent logs are blended against. Medical flags dominate: the
// flat 60 plus a 10 rider when consistency sits at either extreme.
func ComputeBaselineScore(a OnboardingAnswers) int {
	score := 100

	score -= lookupPenalty(consistencyPenalty, a.Consistency, 30)
	score -= lookupPenalty(symptomFrequencyPenalty, a.SymptomFrequency, 30)
	score -= lookupPenalty(regularityPenaltyTable, a.Regularity, 20)

	if a.MedicalFlags {
		score -= 60
		if a.Consistency == "very_hard" || a.Consistency == "watery" {
			score -= 10
		}
	}

	if score < 5 {
		score = 5
	}
	if score > 100 {
		score = 100
	}
	return score
}

func lookupPenalty(table map[string]int, key string, worst int) int {
	if p, ok := table[key]; ok {
		return p
	}
	return worst
}
