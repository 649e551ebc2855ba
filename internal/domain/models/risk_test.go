package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/pkg/constants"
)

func TestLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		risk float64
		want constants.RiskLevel
	}{
		{"zero", 0, constants.RiskLevelLow},
		{"just below forty", 39.9, constants.RiskLevelLow},
		{"exactly forty", 40.0, constants.RiskLevelLow},
		{"just above forty", 40.1, constants.RiskLevelModerate},
		{"exactly seventy", 70.0, constants.RiskLevelModerate},
		{"just above seventy", 70.1, constants.RiskLevelHigh},
		{"hundred", 100, constants.RiskLevelHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.LevelFor(tt.risk))
		})
	}
}

func TestFormatOutcome(t *testing.T) {
	assert.Equal(t, "63.5% Risk", models.FormatOutcome(63.5))
	assert.Equal(t, "0.0% Risk", models.FormatOutcome(0))
	assert.Equal(t, "100.0% Risk", models.FormatOutcome(100))
	// One decimal place, rounded.
	assert.Equal(t, "33.3% Risk", models.FormatOutcome(33.333))
}

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome string
		want    float64
		ok      bool
	}{
		{"decimal", "63.5% Risk", 63.5, true},
		{"integer", "80% Risk", 80, true},
		{"zero", "0.0% Risk", 0, true},
		{"embedded", "result: 12.5% Risk (degraded)", 12.5, true},
		{"chat status", "Responded", 0, false},
		{"empty", "", 0, false},
		{"percent only", "63.5%", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := models.ParseOutcome(tt.outcome)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutcome_RoundTrip(t *testing.T) {
	// The stored label must parse back to the value that produced it.
	for _, risk := range []float64{0, 10.0, 40.0, 63.5, 70.0, 99.9} {
		got, ok := models.ParseOutcome(models.FormatOutcome(risk))
		require.True(t, ok)
		assert.Equal(t, risk, got)
	}
}

func TestScoreResult_Outcome(t *testing.T) {
	r := models.ScoreResult{RiskPercent: 63.5, Level: constants.RiskLevelModerate}
	assert.Equal(t, "63.5% Risk", r.Outcome())
	assert.False(t, r.Failed())
}

func TestPredictionRecord_IsRiskAssessment(t *testing.T) {
	assert.True(t, (&models.PredictionRecord{PredictionType: "Heart Disease"}).IsRiskAssessment())
	assert.True(t, (&models.PredictionRecord{PredictionType: "Diabetes"}).IsRiskAssessment())
	assert.True(t, (&models.PredictionRecord{PredictionType: "Parkinson's"}).IsRiskAssessment())
	assert.False(t, (&models.PredictionRecord{PredictionType: "Medical Bot"}).IsRiskAssessment())
	assert.False(t, (&models.PredictionRecord{PredictionType: "Triage Bot"}).IsRiskAssessment())
}
