package models

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/healthpredict/healthpredict/pkg/constants"
)

// ScoreResult is the typed outcome of one scoring call. Callers can tell a
// genuinely low risk apart from a failed scoring attempt: on failure Err is
// set and RiskPercent is 0 with an explicit indicator downstream.
type ScoreResult struct {
	// RiskPercent is the positive-class probability times 100, in [0,100].
	RiskPercent float64 `json:"risk_percent"`

	// Level is the banded classification of RiskPercent.
	Level constants.RiskLevel `json:"level"`

	// Degraded is set when the vector was scored without its training-time
	// scaler, reducing accuracy.
	Degraded bool `json:"degraded"`

	// Err carries the scoring failure when one occurred, nil otherwise.
	Err error `json:"-"`
}

// Failed reports whether the scoring call produced no usable probability.
func (r ScoreResult) Failed() bool {
	return r.Err != nil
}

// Outcome renders the stored outcome label for this result.
func (r ScoreResult) Outcome() string {
	return FormatOutcome(r.RiskPercent)
}

// LevelFor bands a risk percentage. Boundaries are strict: exactly 70 is
// Moderate and exactly 40 is Low.
func LevelFor(riskPercent float64) constants.RiskLevel {
	switch {
	case riskPercent > 70:
		return constants.RiskLevelHigh
	case riskPercent > 40:
		return constants.RiskLevelModerate
	default:
		return constants.RiskLevelLow
	}
}

// FormatOutcome renders a risk percentage into the outcome label stored in
// prediction records, e.g. "63.5% Risk". The format is a contract with
// ParseOutcome and with legacy rows; never change it.
func FormatOutcome(riskPercent float64) string {
	return fmt.Sprintf(constants.OutcomeFormat, riskPercent)
}

// outcomePattern matches an optional-decimal number immediately followed by
// "% Risk", as produced by FormatOutcome.
var outcomePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)% Risk`)

// ParseOutcome extracts the risk percentage from an outcome label. The
// second return is false when the label does not match the pattern.
func ParseOutcome(outcome string) (float64, bool) {
	m := outcomePattern.FindStringSubmatch(outcome)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
