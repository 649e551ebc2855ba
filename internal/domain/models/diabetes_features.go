package models

import "github.com/healthpredict/healthpredict/pkg/constants"

// DiabetesFeatures is the typed schema for one diabetes submission. All
// vector columns are numeric; the categorical lifestyle fields are carried
// for the narrative prompt and input snapshot only.
type DiabetesFeatures struct {
	Pregnancies   int     `json:"pregnancies"`
	Glucose       int     `json:"glucose"`
	BloodPressure int     `json:"blood_pressure"`
	SkinThickness int     `json:"skin_thickness"`
	Insulin       int     `json:"insulin"`
	BMI           float64 `json:"bmi"`
	Pedigree      float64 `json:"diabetes_pedigree"`
	Age           int     `json:"age"`

	Sex            string `json:"sex"`
	FamilyHistory  string `json:"family_history"`
	Activity       string `json:"physical_activity"`
	Smoking        string `json:"smoking"`
	DietQuality    string `json:"diet_quality"`
	Hypertension   string `json:"hypertension"`
	SleepHours     int    `json:"sleep_hours"`
}

// Vector projects the submission into the fixed 8-column order the frozen
// diabetes classifier was trained with:
// pregnancies, glucose, blood pressure, skin thickness, insulin, BMI,
// pedigree function, age.
func (f *DiabetesFeatures) Vector() ([]float64, error) {
	return []float64{
		float64(f.Pregnancies),
		float64(f.Glucose),
		float64(f.BloodPressure),
		float64(f.SkinThickness),
		float64(f.Insulin),
		f.BMI,
		f.Pedigree,
		float64(f.Age),
	}, nil
}

// AssessmentType returns the type tag stored in prediction records.
func (f *DiabetesFeatures) AssessmentType() constants.AssessmentType {
	return constants.AssessmentDiabetes
}

// InputSummary returns the short snapshot logged alongside the outcome.
func (f *DiabetesFeatures) InputSummary() map[string]interface{} {
	return map[string]interface{}{
		"age":     f.Age,
		"glucose": f.Glucose,
		"bmi":     f.BMI,
		"insulin": f.Insulin,
	}
}
