package models

import "github.com/healthpredict/healthpredict/pkg/constants"

// ParkinsonsFeatures is the typed schema for one Parkinson's voice-analysis
// submission. The 22 vector columns are acoustic measurements; age, sex and
// family history are carried for the narrative prompt only.
type ParkinsonsFeatures struct {
	Fo        float64 `json:"fo"`
	Fhi       float64 `json:"fhi"`
	Flo       float64 `json:"flo"`
	JitterPct float64 `json:"jitter_percent"`
	JitterAbs float64 `json:"jitter_abs"`
	RAP       float64 `json:"rap"`
	PPQ       float64 `json:"ppq"`
	DDP       float64 `json:"ddp"`
	Shimmer   float64 `json:"shimmer"`
	ShimmerDB float64 `json:"shimmer_db"`
	APQ3      float64 `json:"apq3"`
	APQ5      float64 `json:"apq5"`
	APQ       float64 `json:"apq"`
	DDA       float64 `json:"dda"`
	NHR       float64 `json:"nhr"`
	HNR       float64 `json:"hnr"`
	RPDE      float64 `json:"rpde"`
	DFA       float64 `json:"dfa"`
	Spread1   float64 `json:"spread1"`
	Spread2   float64 `json:"spread2"`
	D2        float64 `json:"d2"`
	PPE       float64 `json:"ppe"`

	Age           int    `json:"age"`
	Sex           string `json:"sex"`
	FamilyHistory string `json:"family_history"`
}

// Vector projects the submission into the fixed 22-column order the frozen
// Parkinson's classifier was trained with:
// Fo, Fhi, Flo, Jitter(%), Jitter(Abs), RAP, PPQ, DDP, Shimmer,
// Shimmer(dB), APQ3, APQ5, APQ, DDA, NHR, HNR, RPDE, DFA, spread1,
// spread2, D2, PPE.
func (f *ParkinsonsFeatures) Vector() ([]float64, error) {
	return []float64{
		f.Fo, f.Fhi, f.Flo,
		f.JitterPct, f.JitterAbs, f.RAP, f.PPQ, f.DDP,
		f.Shimmer, f.ShimmerDB, f.APQ3, f.APQ5, f.APQ, f.DDA,
		f.NHR, f.HNR,
		f.RPDE, f.DFA, f.Spread1, f.Spread2, f.D2, f.PPE,
	}, nil
}

// AssessmentType returns the type tag stored in prediction records.
func (f *ParkinsonsFeatures) AssessmentType() constants.AssessmentType {
	return constants.AssessmentParkinsons
}

// InputSummary returns the short snapshot logged alongside the outcome.
func (f *ParkinsonsFeatures) InputSummary() map[string]interface{} {
	return map[string]interface{}{
		"age":     f.Age,
		"fo":      f.Fo,
		"jitter":  f.JitterPct,
		"shimmer": f.Shimmer,
		"hnr":     f.HNR,
	}
}
