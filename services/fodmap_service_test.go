package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeFood_ExactMatch(t *testing.T) {
	svc := NewFODMAPService()

	info, err := svc.AnalyzeFood(context.Background(), "Garlic")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, FODMAPHigh, info.Level)
	assert.Equal(t, "fructan", info.Category)
}

func TestAnalyzeFood_SubstringFallback(t *testing.T) {
	svc := NewFODMAPService()

	info, err := svc.AnalyzeFood(context.Background(), "sourdough bread")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, FODMAPHigh, info.Level)
}

func TestAnalyzeFood_UnknownFood(t *testing.T) {
	svc := NewFODMAPService()

	info, err := svc.AnalyzeFood(context.Background(), "dragonfruit smoothie")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestAnalyzeFood_CancelledContext(t *testing.T) {
	svc := NewFODMAPService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.AnalyzeFood(ctx, "garlic")
	assert.Error(t, err)
}

func TestLowFODMAPAlternatives(t *testing.T) {
	svc := NewFODMAPService()

	assert.Contains(t, svc.LowFODMAPAlternatives("garlic"), "garlic-infused oil")
	assert.Contains(t, svc.LowFODMAPAlternatives("Whole Milk"), "lactose-free milk")
	assert.Empty(t, svc.LowFODMAPAlternatives("rice"))
}
