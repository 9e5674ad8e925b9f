package services

import (
	"context"
	"strings"
)

type FODMAPLevel string

const (
	FODMAPHigh     FODMAPLevel = "high"
	FODMAPModerate FODMAPLevel = "moderate"
	FODMAPLow      FODMAPLevel = "low"
)

type FODMAPInfo struct {
	Food     string      `json:"food"`
	Level    FODMAPLevel `json:"level"`
	Category string      `json:"category"` // dominant FODMAP group, e.g. fructan, lactose
}

// FODMAPService classifies foods against a built-in table and suggests
// low-FODMAP swaps. Lookups are by normalized name with a substring
// fallback, so "sourdough bread" still resolves via "bread".
type FODMAPService struct{}

func NewFODMAPService() *FODMAPService { return &FODMAPService{} }

type fodmapEntry struct {
	level    FODMAPLevel
	category string
}

var fodmapTable = map[string]fodmapEntry{
	"wheat":       {FODMAPHigh, "fructan"},
	"bread":       {FODMAPHigh, "fructan"},
	"pasta":       {FODMAPHigh, "fructan"},
	"rye":         {FODMAPHigh, "fructan"},
	"onion":       {FODMAPHigh, "fructan"},
	"garlic":      {FODMAPHigh, "fructan"},
	"leek":        {FODMAPHigh, "fructan"},
	"milk":        {FODMAPHigh, "lactose"},
	"yogurt":      {FODMAPHigh, "lactose"},
	"ice cream":   {FODMAPHigh, "lactose"},
	"soft cheese": {FODMAPHigh, "lactose"},
	"apple":       {FODMAPHigh, "fructose"},
	"pear":        {FODMAPHigh, "fructose"},
	"mango":       {FODMAPHigh, "fructose"},
	"honey":       {FODMAPHigh, "fructose"},
	"watermelon":  {FODMAPHigh, "fructose"},
	"beans":       {FODMAPHigh, "galactan"},
	"lentils":     {FODMAPHigh, "galactan"},
	"chickpeas":   {FODMAPHigh, "galactan"},
	"mushroom":    {FODMAPHigh, "polyol"},
	"cauliflower": {FODMAPHigh, "polyol"},
	"avocado":     {FODMAPModerate, "polyol"},
	"sweet corn":  {FODMAPModerate, "fructan"},
	"broccoli":    {FODMAPModerate, "fructan"},
	"rice":        {FODMAPLow, ""},
	"oats":        {FODMAPLow, ""},
	"quinoa":      {FODMAPLow, ""},
	"potato":      {FODMAPLow, ""},
	"carrot":      {FODMAPLow, ""},
	"spinach":     {FODMAPLow, ""},
	"banana":      {FODMAPLow, ""},
	"orange":      {FODMAPLow, ""},
	"strawberry":  {FODMAPLow, ""},
	"grapes":      {FODMAPLow, ""},
	"chicken":     {FODMAPLow, ""},
	"beef":        {FODMAPLow, ""},
	"fish":        {FODMAPLow, ""},
	"egg":         {FODMAPLow, ""},
	"tofu":        {FODMAPLow, ""},
}

var fodmapAlternatives = map[string][]string{
	"wheat":       {"rice", "quinoa", "oats"},
	"bread":       {"sourdough spelt bread", "gluten-free bread"},
	"pasta":       {"rice noodles", "gluten-free pasta"},
	"onion":       {"green onion tops", "chives"},
	"garlic":      {"garlic-infused oil"},
	"milk":        {"lactose-free milk", "almond milk"},
	"yogurt":      {"lactose-free yogurt", "coconut yogurt"},
	"apple":       {"banana", "orange", "strawberries"},
	"beans":       {"canned lentils (rinsed)", "firm tofu"},
	"mushroom":    {"oyster mushrooms"},
	"cauliflower": {"broccoli heads", "green beans"},
}

// AnalyzeFood classifies a single food name. Unknown foods return nil
// with no error; the caller decides how to treat missing data.
func (s *FODMAPService) AnalyzeFood(ctx context.Context, food string) (*FODMAPInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(food))
	if key == "" {
		return nil, nil
	}

	if entry, ok := fodmapTable[key]; ok {
		return &FODMAPInfo{Food: key, Level: entry.level, Category: entry.category}, nil
	}

	// Substring fallback: the longest table key contained in the name
	// wins, ties broken alphabetically so composite names resolve the
	// same way every call.
	var bestKey string
	var bestEntry fodmapEntry
	for tableKey, entry := range fodmapTable {
		if !strings.Contains(key, tableKey) {
			continue
		}
		if len(tableKey) > len(bestKey) ||
			(len(tableKey) == len(bestKey) && tableKey < bestKey) {
			bestKey = tableKey
			bestEntry = entry
		}
	}
	if bestKey == "" {
		return nil, nil
	}
	return &FODMAPInfo{Food: key, Level: bestEntry.level, Category: bestEntry.category}, nil
}

// LowFODMAPAlternatives suggests swaps for a high-FODMAP food. Empty
// slice when nothing is known.
func (s *FODMAPService) LowFODMAPAlternatives(food string) []string {
	key := strings.ToLower(strings.TrimSpace(food))
	if alts, ok := fodmapAlternatives[key]; ok {
		return alts
	}
	for tableKey, alts := range fodmapAlternatives {
		if strings.Contains(key, tableKey) {
			return alts
		}
	}
	return nil
}
