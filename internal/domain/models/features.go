package models

import "github.com/healthpredict/healthpredict/pkg/constants"

// FeatureSet is one typed assessment submission. Vector projects it into
// the fixed column order the frozen classifier for its type was trained
// with; the projection fails with an unknown-category error when a
// categorical field carries a value outside its encoding table.
type FeatureSet interface {
	Vector() ([]float64, error)
	AssessmentType() constants.AssessmentType
	InputSummary() map[string]interface{}
}
