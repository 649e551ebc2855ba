// Package constants defines system-wide constants for the HealthPredict service.
// This package provides type-safe constant definitions used across all modules.
package constants

import "time"

// ================================================================================
// Assessment Type Constants
// ================================================================================

// AssessmentType identifies a risk assessment category. The string values are
// stored verbatim in prediction records, so they must never change.
type AssessmentType string

const (
	// AssessmentHeart represents a heart disease risk assessment
	AssessmentHeart AssessmentType = "Heart Disease"

	// AssessmentDiabetes represents a diabetes risk assessment
	AssessmentDiabetes AssessmentType = "Diabetes"

	// AssessmentParkinsons represents a Parkinson's disease risk assessment
	AssessmentParkinsons AssessmentType = "Parkinson's"
)

// WellnessTypes lists the assessment categories that contribute to the
// composite wellness score, in report order.
var WellnessTypes = []AssessmentType{
	AssessmentHeart,
	AssessmentDiabetes,
	AssessmentParkinsons,
}

// ================================================================================
// Conversation Type Constants
// ================================================================================

// ConversationType identifies a chat interaction category recorded alongside
// assessments in the prediction log.
type ConversationType string

const (
	// ConversationMedical represents a general medical Q&A exchange
	ConversationMedical ConversationType = "Medical Bot"

	// ConversationTriage represents a triage suggestion exchange
	ConversationTriage ConversationType = "Triage Bot"
)

// ================================================================================
// Risk Level Constants
// ================================================================================

// RiskLevel represents the banded severity of a risk percentage
type RiskLevel string

const (
	// RiskLevelLow covers risk percentages up to and including 40
	RiskLevelLow RiskLevel = "low"

	// RiskLevelModerate covers risk percentages above 40 up to and including 70
	RiskLevelModerate RiskLevel = "moderate"

	// RiskLevelHigh covers risk percentages strictly above 70
	RiskLevelHigh RiskLevel = "high"
)

// ================================================================================
// User Role Constants
// ================================================================================

// UserRole represents an authorization role attached to an account
type UserRole string

const (
	// RoleUser is the default role for registered accounts
	RoleUser UserRole = "user"

	// RoleAdmin grants access to the aggregate statistics endpoints
	RoleAdmin UserRole = "admin"
)

// ================================================================================
// Language Constants
// ================================================================================

// Language is a report and narrative locale tag
type Language string

const (
	// LangEnglish selects English narratives
	LangEnglish Language = "en"

	// LangMarathi selects Marathi narratives
	LangMarathi Language = "mr"
)

// DefaultLanguage is applied when a request carries no locale.
const DefaultLanguage = LangEnglish

// ================================================================================
// Token Constants
// ================================================================================

// TokenTypeBearer is the token type for the HTTP Authorization header
const TokenTypeBearer = "Bearer"

// AuthorizationHeader is the HTTP header carrying the bearer token
const AuthorizationHeader = "Authorization"

// ================================================================================
// Context Key Constants
// ================================================================================

// ContextKey is the type for request-scoped context keys
type ContextKey string

const (
	// ContextKeyRequestID carries the per-request correlation ID
	ContextKeyRequestID ContextKey = "request_id"

	// ContextKeyUserID carries the authenticated account ID
	ContextKeyUserID ContextKey = "user_id"

	// ContextKeyUserEmail carries the authenticated account email
	ContextKeyUserEmail ContextKey = "user_email"

	// ContextKeyUserRole carries the authenticated account role
	ContextKeyUserRole ContextKey = "user_role"
)

// ================================================================================
// String Format Constants
// ================================================================================

const (
	// AnonymousEmail is recorded when no account identity is available
	AnonymousEmail = "anonymous@demo.local"

	// OutcomeFormat renders a risk percentage into the stored outcome label,
	// e.g. "63.2% Risk". Consumed by fmt.Sprintf with a float64 argument.
	OutcomeFormat = "%.1f%% Risk"

	// ChatOutcomeResponded is logged for completed medical bot exchanges
	ChatOutcomeResponded = "Responded"

	// ChatOutcomeTriage is logged for completed triage bot exchanges
	ChatOutcomeTriage = "Triage Suggestion Provided"
)

// ================================================================================
// Timeout and TTL Constants
// ================================================================================

const (
	// DefaultNarrativeTimeout bounds a single narrative generation call
	DefaultNarrativeTimeout = 30 * time.Second

	// DefaultChatSessionTTL is how long an idle chat session history is kept
	DefaultChatSessionTTL = 30 * time.Minute

	// DefaultArtifactCacheTTL is how long a loaded model artifact stays cached
	DefaultArtifactCacheTTL = 12 * time.Hour

	// DefaultShutdownTimeout bounds graceful HTTP server shutdown
	DefaultShutdownTimeout = 15 * time.Second

	// DefaultAccessTokenTTL is the default JWT lifetime
	DefaultAccessTokenTTL = 24 * time.Hour
)

// ================================================================================
// Feature Vector Width Constants
// ================================================================================

const (
	// HeartFeatureCount is the fixed width of a heart disease feature vector
	HeartFeatureCount = 13

	// DiabetesFeatureCount is the fixed width of a diabetes feature vector
	DiabetesFeatureCount = 8

	// ParkinsonsFeatureCount is the fixed width of a Parkinson's feature vector
	ParkinsonsFeatureCount = 22
)

// ================================================================================
// Error Code Constants
// ================================================================================

// ErrorCode identifies an error category in API responses
type ErrorCode string

const (
	// ErrCodeValidation indicates a malformed or out-of-range request field
	ErrCodeValidation ErrorCode = "validation_error"

	// ErrCodeUnknownCategory indicates a categorical field value outside its encode table
	ErrCodeUnknownCategory ErrorCode = "unknown_category_value"

	// ErrCodeUnauthorized indicates missing or invalid credentials
	ErrCodeUnauthorized ErrorCode = "unauthorized"

	// ErrCodeForbidden indicates insufficient role for the resource
	ErrCodeForbidden ErrorCode = "forbidden"

	// ErrCodeNotFound indicates a missing resource
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeConflict indicates a uniqueness violation, e.g. duplicate email
	ErrCodeConflict ErrorCode = "conflict"

	// ErrCodeScoring indicates the classifier could not produce a probability
	ErrCodeScoring ErrorCode = "scoring_error"

	// ErrCodeInternal indicates an unexpected server condition
	ErrCodeInternal ErrorCode = "internal_error"

	// ErrCodeUnavailable indicates a dependency is temporarily unreachable
	ErrCodeUnavailable ErrorCode = "service_unavailable"
)
