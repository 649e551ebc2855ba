// Package artifacts loads frozen model artifacts from disk and exposes
// them behind the domain scoring ports. Artifacts are JSON exports of the
// trained sklearn estimators; they are read-only and versioned with the
// deployment, never trained here.
package artifacts

import (
	"fmt"
	"math"

	"github.com/healthpredict/healthpredict/internal/domain/service"
)

// logisticRegression is a frozen binary logistic-regression classifier.
type logisticRegression struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

var _ service.Classifier = (*logisticRegression)(nil)

// PredictProba returns [p_class0, p_class1] for the vector. The vector
// width must match the coefficient count the model was trained with.
func (m *logisticRegression) PredictProba(vector []float64) ([]float64, error) {
	if len(vector) != len(m.Coefficients) {
		return nil, fmt.Errorf("feature count mismatch: got %d, want %d", len(vector), len(m.Coefficients))
	}
	z := m.Intercept
	for i, w := range m.Coefficients {
		z += w * vector[i]
	}
	p := 1 / (1 + math.Exp(-z))
	return []float64{1 - p, p}, nil
}

// standardScaler reproduces sklearn's StandardScaler transform.
type standardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

var _ service.Scaler = (*standardScaler)(nil)

// Transform normalizes each column as (x - mean) / scale.
func (s *standardScaler) Transform(vector []float64) ([]float64, error) {
	if len(vector) != len(s.Mean) || len(s.Mean) != len(s.Scale) {
		return nil, fmt.Errorf("feature count mismatch: got %d, want %d", len(vector), len(s.Mean))
	}
	out := make([]float64, len(vector))
	for i, x := range vector {
		scale := s.Scale[i]
		if scale == 0 {
			// Zero-variance columns pass through unscaled, matching the
			// training-time behavior.
			scale = 1
		}
		out[i] = (x - s.Mean[i]) / scale
	}
	return out, nil
}
