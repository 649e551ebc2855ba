package models

import (
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
)

// Heart disease categorical encodings. The numeric codes are a contract
// with the frozen classifier and must never change without retraining.
var (
	sexEncoding = map[string]float64{
		"Male":   1,
		"Female": 0,
	}

	chestPainEncoding = map[string]float64{
		"Asymptomatic":     0,
		"Non-anginal Pain": 1,
		"Atypical Angina":  2,
		"Typical Angina":   3,
	}

	restECGEncoding = map[string]float64{
		"Normal":                       0,
		"ST-T Abnormality":             1,
		"Left Ventricular Hypertrophy": 2,
	}

	yesNoEncoding = map[string]float64{
		"No":  0,
		"Yes": 1,
	}

	slopeEncoding = map[string]float64{
		"Upsloping":   0,
		"Flat":        1,
		"Downsloping": 2,
	}

	thalEncoding = map[string]float64{
		"Normal":            1,
		"Fixed Defect":      2,
		"Reversible Defect": 3,
	}
)

// HeartFeatures is the typed schema for one heart disease submission.
// Clinical fields feed the feature vector; lifestyle fields (BMI, family
// history, smoking and the rest) are carried for the narrative prompt and
// input snapshot only.
type HeartFeatures struct {
	Age             int     `json:"age"`
	Sex             string  `json:"sex"`
	ChestPain       string  `json:"chest_pain"`
	RestingBP       int     `json:"resting_bp"`
	Cholesterol     int     `json:"cholesterol"`
	FastingBS       string  `json:"fasting_blood_sugar"`
	RestECG         string  `json:"rest_ecg"`
	MaxHeartRate    int     `json:"max_heart_rate"`
	ExerciseAngina  string  `json:"exercise_angina"`
	STDepression    float64 `json:"st_depression"`
	Slope           string  `json:"slope"`
	MajorVessels    int     `json:"major_vessels"`
	Thalassemia     string  `json:"thalassemia"`
	BMI             float64 `json:"bmi"`
	FamilyHistory   string  `json:"family_history"`
	Diabetes        string  `json:"diabetes"`
	Hypertension    string  `json:"hypertension"`
	Smoking         string  `json:"smoking"`
	ExerciseFreq    string  `json:"exercise_frequency"`
}

// Vector projects the submission into the fixed 13-column order the frozen
// heart classifier was trained with:
// age, sex, cp, trestbps, chol, fbs, restecg, thalach, exang, oldpeak,
// slope, ca, thal.
func (f *HeartFeatures) Vector() ([]float64, error) {
	sex, ok := sexEncoding[f.Sex]
	if !ok {
		return nil, errors.ErrUnknownCategoryValue("sex", f.Sex)
	}
	cp, ok := chestPainEncoding[f.ChestPain]
	if !ok {
		return nil, errors.ErrUnknownCategoryValue("chest_pain", f.ChestPain)
	}
	fbs, ok := yesNoEncoding[f.FastingBS]
	if !ok {
		return nil, errors.ErrUnknownCategoryValue("fasting_blood_sugar", f.FastingBS)
	}
	ecg, ok := restECGEncoding[f.RestECG]
	if !ok {
		return nil, errors.ErrUnknownCategoryValue("rest_ecg", f.RestECG)
	}
	exang, ok := yesNoEncoding[f.ExerciseAngina]
	if !ok {
		return nil, errors.ErrUnknownCategoryValue("exercise_angina", f.ExerciseAngina)
	}
	slope, ok := slopeEncoding[f.Slope]
	if !ok {
		return nil, errors.ErrUnknownCategoryValue("slope", f.Slope)
	}
	thal, ok := thalEncoding[f.Thalassemia]
	if !ok {
		return nil, errors.ErrUnknownCategoryValue("thalassemia", f.Thalassemia)
	}

	return []float64{
		float64(f.Age),
		sex,
		cp,
		float64(f.RestingBP),
		float64(f.Cholesterol),
		fbs,
		ecg,
		float64(f.MaxHeartRate),
		exang,
		f.STDepression,
		slope,
		float64(f.MajorVessels),
		thal,
	}, nil
}

// AssessmentType returns the type tag stored in prediction records.
func (f *HeartFeatures) AssessmentType() constants.AssessmentType {
	return constants.AssessmentHeart
}

// InputSummary returns the short snapshot logged alongside the outcome,
// matching the admin panel's display convention.
func (f *HeartFeatures) InputSummary() map[string]interface{} {
	return map[string]interface{}{
		"age":         f.Age,
		"resting_bp":  f.RestingBP,
		"cholesterol": f.Cholesterol,
		"bmi":         f.BMI,
	}
}
