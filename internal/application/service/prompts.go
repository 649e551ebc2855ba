package service

import (
	"fmt"
	"strings"

	"github.com/healthpredict/healthpredict/internal/domain/models"
	"github.com/healthpredict/healthpredict/pkg/constants"
)

// Narrative prompt builders. The structure of these prompts is part of the
// product: the model prediction leads, the patient profile follows, and
// every prompt ends with the non-diagnosis disclaimer instruction.

const marathiInstruction = "\nImportant: Response MUST be in Marathi language."

// medicalBotSystemPrompt steers the general Q&A surface.
const medicalBotSystemPrompt = "You are a medical information assistant. Answer in clear, plain English. " +
	"IMPORTANT: Always remind the user that you are not a substitute for professional medical advice. " +
	"If the user asks a non-medical question, say it's not medical related."

// triageBotSystemPrompt steers the symptom-routing surface.
const triageBotSystemPrompt = `You are an AI Medical Triage Assistant for the HealthPredict platform.
Your goal is to analyze user symptoms and recommend one of the following assessments:
1. Heart Disease Assessment (for chest pain, breathlessness, irregular heartbeat)
2. Diabetes Risk Assessment (for frequent thirst, fatigue, blurred vision, slow-healing wounds)
3. Parkinson's Disease Assessment (for tremors, stiffness, slow movement, voice changes)

If symptoms are severe (e.g., severe chest pain, stroke signs), recommend IMMEDIATE EMERGENCY CARE.

RESPONSE FORMAT:
- Acknowledge symptoms.
- Map them to the specific risk assessment above.
- Provide a clear recommendation.`

func systemPromptFor(bot constants.ConversationType, lang constants.Language) string {
	var prompt string
	if bot == constants.ConversationTriage {
		prompt = triageBotSystemPrompt
	} else {
		prompt = medicalBotSystemPrompt
	}
	if lang == constants.LangMarathi {
		prompt += marathiInstruction
	}
	return prompt
}

func riskClassification(riskPercent float64) string {
	switch models.LevelFor(riskPercent) {
	case constants.RiskLevelHigh:
		return "HIGH RISK"
	case constants.RiskLevelModerate:
		return "MODERATE RISK"
	default:
		return "LOW RISK"
	}
}

func heartAssessmentPrompt(f *models.HeartFeatures, riskPercent float64, lang constants.Language) string {
	var b strings.Builder
	b.WriteString("You are a medical AI assistant. Based on the following health metrics and AI model prediction, provide a comprehensive heart disease risk assessment:\n\n")
	fmt.Fprintf(&b, "MODEL PREDICTION RESULT:\n- Risk Percentage: %.1f%%\n- Risk Classification: %s\n\n", riskPercent, riskClassification(riskPercent))
	b.WriteString("Patient Profile:\n")
	fmt.Fprintf(&b, "- Age: %d years\n", f.Age)
	fmt.Fprintf(&b, "- Sex: %s\n", f.Sex)
	fmt.Fprintf(&b, "- BMI: %.1f\n", f.BMI)
	fmt.Fprintf(&b, "- Resting Blood Pressure: %d mmHg\n", f.RestingBP)
	fmt.Fprintf(&b, "- Serum Cholesterol: %d mg/dl\n", f.Cholesterol)
	fmt.Fprintf(&b, "- Fasting Blood Sugar > 120: %s\n", f.FastingBS)
	fmt.Fprintf(&b, "- Max Heart Rate: %d bpm\n", f.MaxHeartRate)
	fmt.Fprintf(&b, "- Exercise Induced Angina: %s\n", f.ExerciseAngina)
	fmt.Fprintf(&b, "- ST Depression: %g\n", f.STDepression)
	fmt.Fprintf(&b, "- Slope of ST Segment: %s\n", f.Slope)
	fmt.Fprintf(&b, "- Number of Major Vessels: %d\n", f.MajorVessels)
	fmt.Fprintf(&b, "- Thalassemia: %s\n", f.Thalassemia)
	fmt.Fprintf(&b, "- Chest Pain Type: %s\n", f.ChestPain)
	fmt.Fprintf(&b, "- Resting ECG: %s\n", f.RestECG)
	fmt.Fprintf(&b, "- Family History: %s\n", f.FamilyHistory)
	fmt.Fprintf(&b, "- Smoking Status: %s\n", f.Smoking)
	fmt.Fprintf(&b, "- Diabetes: %s\n", f.Diabetes)
	fmt.Fprintf(&b, "- Hypertension: %s\n", f.Hypertension)
	fmt.Fprintf(&b, "- Exercise Frequency: %s\n", f.ExerciseFreq)
	fmt.Fprintf(&b, "\nPlease provide:\n1. Risk Level Assessment (based on the model's %.1f%% prediction)\n", riskPercent)
	b.WriteString("2. Key Risk Factors\n3. Protective Factors (if any)\n4. Recommendations for Risk Reduction\n5. When to Consult a Cardiologist\n")
	b.WriteString("\nImportant: This is NOT a medical diagnosis. Always recommend consulting with a healthcare professional.\n")
	b.WriteString("Keep the response clear, actionable, and between 400-600 words.\n")
	if lang == constants.LangMarathi {
		b.WriteString(marathiInstruction)
	}
	return b.String()
}

func diabetesAssessmentPrompt(f *models.DiabetesFeatures, riskPercent float64, lang constants.Language) string {
	var b strings.Builder
	b.WriteString("You are a medical AI assistant. Based on the following health metrics and AI model prediction, provide a comprehensive diabetes risk assessment:\n\n")
	fmt.Fprintf(&b, "MODEL PREDICTION RESULT:\n- Risk Percentage: %.1f%%\n- Risk Classification: %s\n\n", riskPercent, riskClassification(riskPercent))
	b.WriteString("Patient Profile:\n")
	fmt.Fprintf(&b, "- Age: %d years\n", f.Age)
	fmt.Fprintf(&b, "- Sex: %s\n", f.Sex)
	fmt.Fprintf(&b, "- BMI: %.1f\n", f.BMI)
	fmt.Fprintf(&b, "- Pregnancies: %d\n", f.Pregnancies)
	fmt.Fprintf(&b, "- Glucose Level: %d mg/dl\n", f.Glucose)
	fmt.Fprintf(&b, "- Blood Pressure: %d mmHg\n", f.BloodPressure)
	fmt.Fprintf(&b, "- Skin Thickness: %d mm\n", f.SkinThickness)
	fmt.Fprintf(&b, "- Insulin: %d mu U/ml\n", f.Insulin)
	fmt.Fprintf(&b, "- Diabetes Pedigree Function: %g\n", f.Pedigree)
	fmt.Fprintf(&b, "- Family History: %s\n", f.FamilyHistory)
	fmt.Fprintf(&b, "- Physical Activity: %s\n", f.Activity)
	fmt.Fprintf(&b, "- Smoking Status: %s\n", f.Smoking)
	fmt.Fprintf(&b, "- Diet Quality: %s\n", f.DietQuality)
	fmt.Fprintf(&b, "- Hypertension: %s\n", f.Hypertension)
	fmt.Fprintf(&b, "- Sleep Hours: %d\n", f.SleepHours)
	fmt.Fprintf(&b, "\nPlease provide:\n1. Risk Level Assessment (based on the model's %.1f%% prediction)\n", riskPercent)
	b.WriteString("2. Key Risk Factors Present\n3. Protective Factors (if any)\n4. Lifestyle Modifications for Risk Reduction\n5. When to Consult an Endocrinologist\n")
	b.WriteString("\nImportant: This is NOT a medical diagnosis. Always recommend consulting with a healthcare professional.\n")
	b.WriteString("Keep the response clear, actionable, and between 400-600 words.\n")
	if lang == constants.LangMarathi {
		b.WriteString(marathiInstruction)
	}
	return b.String()
}

func parkinsonsAssessmentPrompt(f *models.ParkinsonsFeatures, riskPercent float64, lang constants.Language) string {
	var b strings.Builder
	b.WriteString("You are a medical AI assistant. Based on the following voice measurements and AI model prediction, provide a comprehensive Parkinson's disease risk assessment:\n\n")
	fmt.Fprintf(&b, "MODEL PREDICTION RESULT:\n- Risk Percentage: %.1f%%\n- Risk Classification: %s\n\n", riskPercent, riskClassification(riskPercent))
	b.WriteString("Patient Profile:\n")
	fmt.Fprintf(&b, "- Age: %d years\n", f.Age)
	fmt.Fprintf(&b, "- Sex: %s\n", f.Sex)
	fmt.Fprintf(&b, "- Family History: %s\n", f.FamilyHistory)
	b.WriteString("\nVoice Measurements:\n")
	fmt.Fprintf(&b, "- Average Vocal Frequency (Fo): %g Hz\n", f.Fo)
	fmt.Fprintf(&b, "- Maximum Vocal Frequency (Fhi): %g Hz\n", f.Fhi)
	fmt.Fprintf(&b, "- Minimum Vocal Frequency (Flo): %g Hz\n", f.Flo)
	fmt.Fprintf(&b, "- Jitter: %g%%\n", f.JitterPct)
	fmt.Fprintf(&b, "- Shimmer: %g\n", f.Shimmer)
	fmt.Fprintf(&b, "- Noise-to-Harmonics Ratio: %g\n", f.NHR)
	fmt.Fprintf(&b, "- Harmonics-to-Noise Ratio: %g\n", f.HNR)
	fmt.Fprintf(&b, "- RPDE: %g\n", f.RPDE)
	fmt.Fprintf(&b, "- DFA: %g\n", f.DFA)
	fmt.Fprintf(&b, "- PPE: %g\n", f.PPE)
	fmt.Fprintf(&b, "\nPlease provide:\n1. Risk Level Assessment (based on the model's %.1f%% prediction)\n", riskPercent)
	b.WriteString("2. Voice Characteristics Analysis (what the measurements indicate)\n3. Key Indicators Present\n4. Recommendations for Further Evaluation\n5. When to Consult a Neurologist\n")
	b.WriteString("\nImportant: This is NOT a medical diagnosis. Voice analysis is a screening tool only. Always recommend consulting with a qualified neurologist or movement disorder specialist for proper evaluation.\n")
	b.WriteString("Keep the response clear, actionable, and between 400-600 words.\n")
	if lang == constants.LangMarathi {
		b.WriteString(marathiInstruction)
	}
	return b.String()
}
