package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/healthpredict/healthpredict/internal/application/dto"
	"github.com/healthpredict/healthpredict/internal/application/service"
	"github.com/healthpredict/healthpredict/internal/config"
	httpiface "github.com/healthpredict/healthpredict/internal/interfaces/http"
	"github.com/healthpredict/healthpredict/internal/interfaces/http/handlers"
	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *authServiceMock) ValidateToken(ctx context.Context, token string) (*service.IdentityClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.IdentityClaims), args.Error(1)
}

type assessmentServiceMock struct {
	mock.Mock
}

func (m *assessmentServiceMock) AssessHeart(ctx context.Context, email string, req *dto.HeartAssessmentRequest) (*dto.AssessmentReport, error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AssessmentReport), args.Error(1)
}

func (m *assessmentServiceMock) AssessDiabetes(ctx context.Context, email string, req *dto.DiabetesAssessmentRequest) (*dto.AssessmentReport, error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AssessmentReport), args.Error(1)
}

func (m *assessmentServiceMock) AssessParkinsons(ctx context.Context, email string, req *dto.ParkinsonsAssessmentRequest) (*dto.AssessmentReport, error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AssessmentReport), args.Error(1)
}

type chatServiceMock struct {
	mock.Mock
}

func (m *chatServiceMock) MedicalChat(ctx context.Context, email string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatResponse), args.Error(1)
}

func (m *chatServiceMock) TriageChat(ctx context.Context, email string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatResponse), args.Error(1)
}

type historyServiceMock struct {
	mock.Mock
}

func (m *historyServiceMock) History(ctx context.Context, userID string) (*dto.HistoryResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HistoryResponse), args.Error(1)
}

type adminServiceMock struct {
	mock.Mock
}

func (m *adminServiceMock) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AdminStatsResponse), args.Error(1)
}

type pingerStub struct {
	err error
}

func (p pingerStub) Ping(context.Context) error { return p.err }

type testMocks struct {
	auth        *authServiceMock
	assessments *assessmentServiceMock
	chat        *chatServiceMock
	history     *historyServiceMock
	admin       *adminServiceMock
}

func newTestRouter(t *testing.T) (*httpiface.Router, *testMocks) {
	t.Helper()
	m := &testMocks{
		auth:        new(authServiceMock),
		assessments: new(assessmentServiceMock),
		chat:        new(chatServiceMock),
		history:     new(historyServiceMock),
		admin:       new(adminServiceMock),
	}
	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080}}
	router := httpiface.NewRouter(
		cfg,
		logger.NewNoopLogger(),
		m.auth,
		nil,
		nil,
		handlers.NewHealthHandler(pingerStub{}),
		handlers.NewAuthHandler(m.auth),
		handlers.NewAssessmentHandler(m.assessments),
		handlers.NewChatHandler(m.chat),
		handlers.NewHistoryHandler(m.history),
		handlers.NewAdminHandler(m.admin),
	)
	router.SetupRoutes()
	return router, m
}

func doRequest(router *httpiface.Router, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var envelope dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestRouter_Auth(t *testing.T) {
	t.Run("register returns 201 with envelope", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.On("Register", mock.Anything, mock.MatchedBy(func(r *dto.RegisterRequest) bool {
			return r.Email == "user@example.com"
		})).Return(&dto.AuthResponse{AccessToken: "tok", TokenType: "Bearer"}, nil)

		w := doRequest(router, http.MethodPost, "/api/v1/auth/register",
			`{"email":"user@example.com","password":"secret-password","fullname":"Test User"}`, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.True(t, envelope.Success)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("login failure maps the error status", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.On("Login", mock.Anything, mock.Anything).
			Return(nil, errors.ErrUnauthorized("invalid email or password"))

		w := doRequest(router, http.MethodPost, "/api/v1/auth/login",
			`{"email":"user@example.com","password":"wrong"}`, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.False(t, envelope.Success)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "unauthorized", envelope.Error.Code)
	})

	t.Run("malformed body is a validation error", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w := doRequest(router, http.MethodPost, "/api/v1/auth/register", `{"email":`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_Assessments(t *testing.T) {
	t.Run("anonymous submission passes an empty email", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.assessments.On("AssessHeart", mock.Anything, "", mock.Anything).
			Return(&dto.AssessmentReport{RiskPercent: 10.0, Outcome: "10.0% Risk"}, nil)

		w := doRequest(router, http.MethodPost, "/api/v1/assess/heart", `{"age":50}`, "")
		assert.Equal(t, http.StatusOK, w.Code)
		m.assessments.AssertExpectations(t)
	})

	t.Run("authenticated submission passes the token email", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.On("ValidateToken", mock.Anything, "good-token").
			Return(&service.IdentityClaims{UserID: "u1", Email: "user@example.com"}, nil)
		m.assessments.On("AssessDiabetes", mock.Anything, "user@example.com", mock.Anything).
			Return(&dto.AssessmentReport{RiskPercent: 41.0}, nil)

		w := doRequest(router, http.MethodPost, "/api/v1/assess/diabetes", `{"age":45}`, "good-token")
		assert.Equal(t, http.StatusOK, w.Code)
		m.assessments.AssertExpectations(t)
	})

	t.Run("invalid token still allows an anonymous submission", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.On("ValidateToken", mock.Anything, "bad-token").
			Return(nil, errors.ErrUnauthorized("invalid or expired token"))
		m.assessments.On("AssessParkinsons", mock.Anything, "", mock.Anything).
			Return(&dto.AssessmentReport{RiskPercent: 5.0}, nil)

		w := doRequest(router, http.MethodPost, "/api/v1/assess/parkinsons", `{"age":60}`, "bad-token")
		assert.Equal(t, http.StatusOK, w.Code)
		m.assessments.AssertExpectations(t)
	})
}

func TestRouter_History(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w := doRequest(router, http.MethodGet, "/api/v1/history", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("serves the caller's history", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.On("ValidateToken", mock.Anything, "good-token").
			Return(&service.IdentityClaims{UserID: "u1", Email: "user@example.com"}, nil)
		m.history.On("History", mock.Anything, "u1").
			Return(&dto.HistoryResponse{WellnessScore: 66.7}, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/history", "", "good-token")
		assert.Equal(t, http.StatusOK, w.Code)
		m.history.AssertExpectations(t)
	})
}

func TestRouter_AdminStats(t *testing.T) {
	t.Run("non-admin is forbidden", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.On("ValidateToken", mock.Anything, "user-token").
			Return(&service.IdentityClaims{UserID: "u1"}, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/admin/stats", "", "user-token")
		assert.Equal(t, http.StatusForbidden, w.Code)
		m.admin.AssertNotCalled(t, "Stats")
	})

	t.Run("admin gets the stats", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.On("ValidateToken", mock.Anything, "admin-token").
			Return(&service.IdentityClaims{UserID: "a1", IsAdmin: true}, nil)
		m.admin.On("Stats", mock.Anything).
			Return(&dto.AdminStatsResponse{TotalUsers: 3, TotalPredictions: 9}, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/admin/stats", "", "admin-token")
		assert.Equal(t, http.StatusOK, w.Code)
		m.admin.AssertExpectations(t)
	})
}

func TestRouter_Chat(t *testing.T) {
	router, m := newTestRouter(t)
	m.chat.On("MedicalChat", mock.Anything, "", mock.MatchedBy(func(r *dto.ChatRequest) bool {
		return r.SessionID == "s1" && r.Message == "hello"
	})).Return(&dto.ChatResponse{SessionID: "s1", Reply: "hi"}, nil)

	w := doRequest(router, http.MethodPost, "/api/v1/chat/medical",
		`{"session_id":"s1","message":"hello"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	m.chat.AssertExpectations(t)
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health/live", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/no/such/route", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
