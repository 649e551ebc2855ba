package models

import (
	"time"

	"github.com/healthpredict/healthpredict/pkg/constants"
)

// PredictionRecord is one immutable row in the prediction log. Records are
// created once per submission and never updated. The owning user reference
// is weak: a record without a user, or whose user was removed, displays as
// a guest entry.
type PredictionRecord struct {
	// ID is the surrogate primary key.
	ID string `json:"id" gorm:"type:varchar(36);primaryKey"`

	// UserID references the owning account, nil for anonymous submissions.
	UserID *string `json:"user_id,omitempty" gorm:"type:varchar(36);index"`

	// PredictionType is the assessment type tag, one of the stable literal
	// strings "Heart Disease", "Diabetes", "Parkinson's", "Medical Bot",
	// "Triage Bot".
	PredictionType string `json:"prediction_type" gorm:"type:varchar(32);index;not null"`

	// InputData is the submitted feature snapshot, either a short summary
	// string or canonical JSON of the structured inputs.
	InputData string `json:"input_data" gorm:"type:text"`

	// Outcome is the display string, "<pct>% Risk" for risk assessments or
	// a status string for chat interactions.
	Outcome string `json:"outcome" gorm:"type:varchar(255)"`

	// RiskPercent is the typed risk value for risk-assessment rows. Nil for
	// chat rows and for legacy rows written before the column existed; the
	// aggregator falls back to parsing Outcome for those.
	RiskPercent *float64 `json:"risk_percent,omitempty"`

	// CreatedAt is the server-assigned record timestamp.
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName sets the table name for gorm.
func (PredictionRecord) TableName() string {
	return "predictions"
}

// IsRiskAssessment reports whether the record belongs to one of the three
// risk-assessment types that feed the wellness score.
func (r *PredictionRecord) IsRiskAssessment() bool {
	switch constants.AssessmentType(r.PredictionType) {
	case constants.AssessmentHeart, constants.AssessmentDiabetes, constants.AssessmentParkinsons:
		return true
	}
	return false
}
