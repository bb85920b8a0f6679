package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/def_finance/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

type MockAnalytics struct {
	mock.Mock
}

func (m *MockAnalytics) IsInitialized() bool {
	return m.Called().Bool(0)
}

func (m *MockAnalytics) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

func signToken(t *testing.T, secret, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Issuer:    "def-finance-test",
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(extra...)
	r.GET("/api/v1/things/:id", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": userID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", "u1", time.Hour), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, testSecret, "u1", -time.Hour), http.StatusUnauthorized},
		{"missing subject", "Bearer " + signToken(t, testSecret, "", time.Hour), http.StatusUnauthorized},
		{"valid", "Bearer " + signToken(t, testSecret, "u1", time.Hour), http.StatusOK},
	}
	router := newRouter(middleware.StructuredLoggingMiddleware(slogDiscard()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/things/1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestPosthogMiddleware_TracksAuthenticatedSuccess(t *testing.T) {
	analytics := new(MockAnalytics)
	analytics.On("IsInitialized").Return(true)
	analytics.On("Enqueue", "u1", "api_v1_things_id", mock.MatchedBy(func(p map[string]any) bool {
		return p["status_code"] == http.StatusOK && p["method"] == http.MethodGet
	})).Once()

	router := newRouter(middleware.PosthogMiddleware(analytics))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/things/7", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "u1", time.Hour))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	analytics.AssertExpectations(t)
}

func TestPosthogMiddleware_SkipsFailures(t *testing.T) {
	analytics := new(MockAnalytics)
	analytics.On("IsInitialized").Return(true)

	router := newRouter(middleware.PosthogMiddleware(analytics))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/things/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	analytics.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything)
}

func TestRateLimit(t *testing.T) {
	limiter, err := middleware.NewMemoryLimiter("2-M")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/imports", middleware.RateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/imports", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusAccepted, http.StatusAccepted, http.StatusTooManyRequests}, codes)
}

func TestNewMemoryLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewMemoryLimiter("lots")
	assert.Error(t, err)
}
