package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
)

func validHeartFeatures() *models.HeartFeatures {
	return &models.HeartFeatures{
		Age:            50,
		Sex:            "Male",
		ChestPain:      "Atypical Angina",
		RestingBP:      120,
		Cholesterol:    200,
		FastingBS:      "No",
		RestECG:        "Normal",
		MaxHeartRate:   150,
		ExerciseAngina: "Yes",
		STDepression:   1.5,
		Slope:          "Flat",
		MajorVessels:   2,
		Thalassemia:    "Reversible Defect",
		BMI:            25.0,
	}
}

func TestHeartFeatures_Vector(t *testing.T) {
	vec, err := validHeartFeatures().Vector()
	require.NoError(t, err)
	require.Len(t, vec, constants.HeartFeatureCount)

	// Column order is the frozen-model contract:
	// age, sex, cp, trestbps, chol, fbs, restecg, thalach, exang,
	// oldpeak, slope, ca, thal.
	expected := []float64{50, 1, 2, 120, 200, 0, 0, 150, 1, 1.5, 1, 2, 3}
	assert.Equal(t, expected, vec)
}

func TestHeartFeatures_Vector_Encodings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *models.HeartFeatures)
		column int
		want   float64
	}{
		{"female", func(f *models.HeartFeatures) { f.Sex = "Female" }, 1, 0},
		{"asymptomatic chest pain", func(f *models.HeartFeatures) { f.ChestPain = "Asymptomatic" }, 2, 0},
		{"non-anginal chest pain", func(f *models.HeartFeatures) { f.ChestPain = "Non-anginal Pain" }, 2, 1},
		{"typical angina", func(f *models.HeartFeatures) { f.ChestPain = "Typical Angina" }, 2, 3},
		{"fasting blood sugar yes", func(f *models.HeartFeatures) { f.FastingBS = "Yes" }, 5, 1},
		{"st-t abnormality", func(f *models.HeartFeatures) { f.RestECG = "ST-T Abnormality" }, 6, 1},
		{"lv hypertrophy", func(f *models.HeartFeatures) { f.RestECG = "Left Ventricular Hypertrophy" }, 6, 2},
		{"upsloping", func(f *models.HeartFeatures) { f.Slope = "Upsloping" }, 10, 0},
		{"downsloping", func(f *models.HeartFeatures) { f.Slope = "Downsloping" }, 10, 2},
		{"normal thal", func(f *models.HeartFeatures) { f.Thalassemia = "Normal" }, 12, 1},
		{"fixed defect", func(f *models.HeartFeatures) { f.Thalassemia = "Fixed Defect" }, 12, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validHeartFeatures()
			tt.mutate(f)
			vec, err := f.Vector()
			require.NoError(t, err)
			assert.Equal(t, tt.want, vec[tt.column])
		})
	}
}

func TestHeartFeatures_Vector_UnknownCategory(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *models.HeartFeatures)
		field  string
	}{
		{"bad sex", func(f *models.HeartFeatures) { f.Sex = "Other" }, "sex"},
		{"bad chest pain", func(f *models.HeartFeatures) { f.ChestPain = "Sharp" }, "chest_pain"},
		{"bad fasting blood sugar", func(f *models.HeartFeatures) { f.FastingBS = "Maybe" }, "fasting_blood_sugar"},
		{"bad rest ecg", func(f *models.HeartFeatures) { f.RestECG = "Irregular" }, "rest_ecg"},
		{"bad exercise angina", func(f *models.HeartFeatures) { f.ExerciseAngina = "" }, "exercise_angina"},
		{"bad slope", func(f *models.HeartFeatures) { f.Slope = "Steep" }, "slope"},
		{"bad thal", func(f *models.HeartFeatures) { f.Thalassemia = "Unknown" }, "thalassemia"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validHeartFeatures()
			tt.mutate(f)
			vec, err := f.Vector()
			assert.Nil(t, vec)
			require.Error(t, err)
			appErr, ok := errors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, constants.ErrCodeUnknownCategory, appErr.Code())
			assert.Contains(t, appErr.Details(), tt.field)
		})
	}
}

func TestDiabetesFeatures_Vector(t *testing.T) {
	f := &models.DiabetesFeatures{
		Pregnancies:   2,
		Glucose:       140,
		BloodPressure: 80,
		SkinThickness: 20,
		Insulin:       85,
		BMI:           31.4,
		Pedigree:      0.52,
		Age:           45,
	}
	vec, err := f.Vector()
	require.NoError(t, err)
	require.Len(t, vec, constants.DiabetesFeatureCount)
	assert.Equal(t, []float64{2, 140, 80, 20, 85, 31.4, 0.52, 45}, vec)
}

func TestParkinsonsFeatures_Vector(t *testing.T) {
	f := &models.ParkinsonsFeatures{
		Fo: 150.1, Fhi: 200.2, Flo: 100.3,
		JitterPct: 0.005, JitterAbs: 0.00005, RAP: 0.003, PPQ: 0.0031, DDP: 0.009,
		Shimmer: 0.03, ShimmerDB: 0.3, APQ3: 0.015, APQ5: 0.02, APQ: 0.025, DDA: 0.045,
		NHR: 0.02, HNR: 22.0,
		RPDE: 0.5, DFA: 0.7, Spread1: -5.0, Spread2: 0.2, D2: 2.5, PPE: 0.2,
	}
	vec, err := f.Vector()
	require.NoError(t, err)
	require.Len(t, vec, constants.ParkinsonsFeatureCount)

	expected := []float64{
		150.1, 200.2, 100.3,
		0.005, 0.00005, 0.003, 0.0031, 0.009,
		0.03, 0.3, 0.015, 0.02, 0.025, 0.045,
		0.02, 22.0,
		0.5, 0.7, -5.0, 0.2, 2.5, 0.2,
	}
	assert.Equal(t, expected, vec)
}

func TestFeatureSet_AssessmentTypes(t *testing.T) {
	assert.Equal(t, constants.AssessmentHeart, validHeartFeatures().AssessmentType())
	assert.Equal(t, constants.AssessmentDiabetes, (&models.DiabetesFeatures{}).AssessmentType())
	assert.Equal(t, constants.AssessmentParkinsons, (&models.ParkinsonsFeatures{}).AssessmentType())
}
