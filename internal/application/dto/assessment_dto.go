package dto

import (
	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/pkg/constants"
)

// HeartAssessmentRequest mirrors the heart disease intake form. Numeric
// bounds follow the original form limits; categorical fields are checked
// against the encoding tables when the feature vector is built.
type HeartAssessmentRequest struct {
	Age            int     `json:"age" validate:"gte=18,lte=120"`
	Sex            string  `json:"sex" validate:"required"`
	ChestPain      string  `json:"chest_pain" validate:"required"`
	RestingBP      int     `json:"resting_bp" validate:"gte=80,lte=200"`
	Cholesterol    int     `json:"cholesterol" validate:"gte=100,lte=400"`
	FastingBS      string  `json:"fasting_blood_sugar" validate:"required"`
	RestECG        string  `json:"rest_ecg" validate:"required"`
	MaxHeartRate   int     `json:"max_heart_rate" validate:"gte=60,lte=220"`
	ExerciseAngina string  `json:"exercise_angina" validate:"required"`
	STDepression   float64 `json:"st_depression" validate:"gte=0,lte=10"`
	Slope          string  `json:"slope" validate:"required"`
	MajorVessels   int     `json:"major_vessels" validate:"gte=0,lte=3"`
	Thalassemia    string  `json:"thalassemia" validate:"required"`

	BMI           float64 `json:"bmi" validate:"gte=15,lte=50"`
	FamilyHistory string  `json:"family_history" validate:"omitempty"`
	Diabetes      string  `json:"diabetes" validate:"omitempty"`
	Hypertension  string  `json:"hypertension" validate:"omitempty"`
	Smoking       string  `json:"smoking" validate:"omitempty"`
	ExerciseFreq  string  `json:"exercise_frequency" validate:"omitempty"`

	Lang string `json:"lang" validate:"omitempty"`
}

// Features maps the request onto the typed assessment schema.
func (r *HeartAssessmentRequest) Features() *models.HeartFeatures {
	return &models.HeartFeatures{
		Age:            r.Age,
		Sex:            r.Sex,
		ChestPain:      r.ChestPain,
		RestingBP:      r.RestingBP,
		Cholesterol:    r.Cholesterol,
		FastingBS:      r.FastingBS,
		RestECG:        r.RestECG,
		MaxHeartRate:   r.MaxHeartRate,
		ExerciseAngina: r.ExerciseAngina,
		STDepression:   r.STDepression,
		Slope:          r.Slope,
		MajorVessels:   r.MajorVessels,
		Thalassemia:    r.Thalassemia,
		BMI:            r.BMI,
		FamilyHistory:  r.FamilyHistory,
		Diabetes:       r.Diabetes,
		Hypertension:   r.Hypertension,
		Smoking:        r.Smoking,
		ExerciseFreq:   r.ExerciseFreq,
	}
}

// Language returns the normalized narrative locale for the request.
func (r *HeartAssessmentRequest) Language() constants.Language {
	return normalizeLanguage(r.Lang)
}

// DiabetesAssessmentRequest mirrors the diabetes intake form.
type DiabetesAssessmentRequest struct {
	Pregnancies   int     `json:"pregnancies" validate:"gte=0,lte=20"`
	Glucose       int     `json:"glucose" validate:"gte=0,lte=250"`
	BloodPressure int     `json:"blood_pressure" validate:"gte=0,lte=200"`
	SkinThickness int     `json:"skin_thickness" validate:"gte=0,lte=100"`
	Insulin       int     `json:"insulin" validate:"gte=0,lte=900"`
	BMI           float64 `json:"bmi" validate:"gte=15,lte=70"`
	Pedigree      float64 `json:"diabetes_pedigree" validate:"gte=0,lte=2.5"`
	Age           int     `json:"age" validate:"gte=18,lte=120"`

	Sex           string `json:"sex" validate:"omitempty"`
	FamilyHistory string `json:"family_history" validate:"omitempty"`
	Activity      string `json:"physical_activity" validate:"omitempty"`
	Smoking       string `json:"smoking" validate:"omitempty"`
	DietQuality   string `json:"diet_quality" validate:"omitempty"`
	Hypertension  string `json:"hypertension" validate:"omitempty"`
	SleepHours    int    `json:"sleep_hours" validate:"omitempty,gte=3,lte=12"`

	Lang string `json:"lang" validate:"omitempty"`
}

// Features maps the request onto the typed assessment schema.
func (r *DiabetesAssessmentRequest) Features() *models.DiabetesFeatures {
	return &models.DiabetesFeatures{
		Pregnancies:   r.Pregnancies,
		Glucose:       r.Glucose,
		BloodPressure: r.BloodPressure,
		SkinThickness: r.SkinThickness,
		Insulin:       r.Insulin,
		BMI:           r.BMI,
		Pedigree:      r.Pedigree,
		Age:           r.Age,
		Sex:           r.Sex,
		FamilyHistory: r.FamilyHistory,
		Activity:      r.Activity,
		Smoking:       r.Smoking,
		DietQuality:   r.DietQuality,
		Hypertension:  r.Hypertension,
		SleepHours:    r.SleepHours,
	}
}

// Language returns the normalized narrative locale for the request.
func (r *DiabetesAssessmentRequest) Language() constants.Language {
	return normalizeLanguage(r.Lang)
}

// ParkinsonsAssessmentRequest mirrors the voice-analysis intake form.
// Bounds follow the measurement ranges of the original instrument panel.
type ParkinsonsAssessmentRequest struct {
	Fo        float64 `json:"fo" validate:"gte=80,lte=300"`
	Fhi       float64 `json:"fhi" validate:"gte=100,lte=600"`
	Flo       float64 `json:"flo" validate:"gte=60,lte=250"`
	JitterPct float64 `json:"jitter_percent" validate:"gte=0,lte=0.1"`
	JitterAbs float64 `json:"jitter_abs" validate:"gte=0,lte=0.001"`
	RAP       float64 `json:"rap" validate:"gte=0,lte=0.05"`
	PPQ       float64 `json:"ppq" validate:"gte=0,lte=0.05"`
	DDP       float64 `json:"ddp" validate:"gte=0,lte=0.15"`
	Shimmer   float64 `json:"shimmer" validate:"gte=0,lte=0.3"`
	ShimmerDB float64 `json:"shimmer_db" validate:"gte=0,lte=3"`
	APQ3      float64 `json:"apq3" validate:"gte=0,lte=0.15"`
	APQ5      float64 `json:"apq5" validate:"gte=0,lte=0.15"`
	APQ       float64 `json:"apq" validate:"gte=0,lte=0.2"`
	DDA       float64 `json:"dda" validate:"gte=0,lte=0.5"`
	NHR       float64 `json:"nhr" validate:"gte=0,lte=0.5"`
	HNR       float64 `json:"hnr" validate:"gte=0,lte=40"`
	RPDE      float64 `json:"rpde" validate:"gte=0,lte=1"`
	DFA       float64 `json:"dfa" validate:"gte=0,lte=1"`
	Spread1   float64 `json:"spread1" validate:"gte=-10,lte=0"`
	Spread2   float64 `json:"spread2" validate:"gte=0,lte=1"`
	D2        float64 `json:"d2" validate:"gte=0,lte=5"`
	PPE       float64 `json:"ppe" validate:"gte=0,lte=1"`

	Age           int    `json:"age" validate:"gte=18,lte=100"`
	Sex           string `json:"sex" validate:"omitempty"`
	FamilyHistory string `json:"family_history" validate:"omitempty"`

	Lang string `json:"lang" validate:"omitempty"`
}

// Features maps the request onto the typed assessment schema.
func (r *ParkinsonsAssessmentRequest) Features() *models.ParkinsonsFeatures {
	return &models.ParkinsonsFeatures{
		Fo: r.Fo, Fhi: r.Fhi, Flo: r.Flo,
		JitterPct: r.JitterPct, JitterAbs: r.JitterAbs,
		RAP: r.RAP, PPQ: r.PPQ, DDP: r.DDP,
		Shimmer: r.Shimmer, ShimmerDB: r.ShimmerDB,
		APQ3: r.APQ3, APQ5: r.APQ5, APQ: r.APQ, DDA: r.DDA,
		NHR: r.NHR, HNR: r.HNR,
		RPDE: r.RPDE, DFA: r.DFA,
		Spread1: r.Spread1, Spread2: r.Spread2,
		D2: r.D2, PPE: r.PPE,
		Age:           r.Age,
		Sex:           r.Sex,
		FamilyHistory: r.FamilyHistory,
	}
}

// Language returns the normalized narrative locale for the request.
func (r *ParkinsonsAssessmentRequest) Language() constants.Language {
	return normalizeLanguage(r.Lang)
}

// AssessmentReport is the full answer to one assessment submission.
type AssessmentReport struct {
	AssessmentType string                 `json:"assessment_type"`
	RiskPercent    float64                `json:"risk_percent"`
	RiskLevel      string                 `json:"risk_level"`
	Outcome        string                 `json:"outcome"`
	InputSummary   map[string]interface{} `json:"input_summary"`
	Narrative      string                 `json:"narrative,omitempty"`
	Degraded       bool                   `json:"degraded,omitempty"`
	ScoringFailed  bool                   `json:"scoring_failed,omitempty"`
}

// normalizeLanguage maps a raw lang field onto a supported locale.
// Anything outside the supported set falls back to the default rather
// than failing the request.
func normalizeLanguage(lang string) constants.Language {
	switch constants.Language(lang) {
	case constants.LangEnglish, constants.LangMarathi:
		return constants.Language(lang)
	default:
		return constants.DefaultLanguage
	}
}
