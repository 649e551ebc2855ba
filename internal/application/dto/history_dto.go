package dto

import (
	"encoding/json"
	"time"

	"github.com/healthpredict/healthpredict/internal/domain/models"
)

// PredictionRecordDTO is one logged prediction as shown to its owner.
type PredictionRecordDTO struct {
	ID             string                 `json:"id"`
	PredictionType string                 `json:"prediction_type"`
	InputData      map[string]interface{} `json:"input_data,omitempty"`
	Outcome        string                 `json:"outcome"`
	RiskPercent    *float64               `json:"risk_percent,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// HistoryResponse lists a user's predictions newest first, together with
// the composite wellness score derived from the latest risk assessments.
type HistoryResponse struct {
	Records       []PredictionRecordDTO `json:"records"`
	WellnessScore float64               `json:"wellness_score"`
	LatestRisk    map[string]float64    `json:"latest_risk"`
}

// AdminRecordDTO is one logged prediction as shown on the admin panel,
// with the submitting account resolved to a display name.
type AdminRecordDTO struct {
	ID             string    `json:"id"`
	UserName       string    `json:"user_name"`
	PredictionType string    `json:"prediction_type"`
	Outcome        string    `json:"outcome"`
	CreatedAt      time.Time `json:"created_at"`
}

// AdminStatsResponse summarizes platform activity for the admin panel.
type AdminStatsResponse struct {
	TotalUsers        int64            `json:"total_users"`
	TotalPredictions  int64            `json:"total_predictions"`
	RecentPredictions []AdminRecordDTO `json:"recent_predictions"`
}

// NewPredictionRecordDTO maps a stored record onto its owner-facing view.
// The stored input snapshot is JSON; rows with an undecodable snapshot
// keep an empty input map rather than failing the listing.
func NewPredictionRecordDTO(rec *models.PredictionRecord) PredictionRecordDTO {
	var input map[string]interface{}
	if rec.InputData != "" {
		if err := json.Unmarshal([]byte(rec.InputData), &input); err != nil {
			input = nil
		}
	}
	return PredictionRecordDTO{
		ID:             rec.ID,
		PredictionType: rec.PredictionType,
		InputData:      input,
		Outcome:        rec.Outcome,
		RiskPercent:    rec.RiskPercent,
		CreatedAt:      rec.CreatedAt,
	}
}
