package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/authenticating"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		header    string
		validator fakeValidator
		status    int
		body      string
	}{
		{
			name:   "rota pública sem token",
			path:   "/api/auth/login",
			status: http.StatusOK,
		},
		{
			name:   "callback do OAuth é público",
			path:   "/api/facebook/callback",
			status: http.StatusOK,
		},
		{
			name:   "sem cabeçalho Authorization",
			path:   "/api/accounts",
			status: http.StatusUnauthorized,
			body:   "AUTH_006",
		},
		{
			name:   "cabeçalho sem Bearer",
			path:   "/api/accounts",
			header: "Token abc",
			status: http.StatusUnauthorized,
			body:   "AUTH_006",
		},
		{
			name:      "token expirado",
			path:      "/api/accounts",
			header:    "Bearer abc",
			validator: fakeValidator{err: authenticating.ErrTokenExpired},
			status:    http.StatusUnauthorized,
			body:      "AUTH_007",
		},
		{
			name:      "token válido",
			path:      "/api/accounts",
			header:    "Bearer abc",
			validator: fakeValidator{claims: &domain.Claims{UserID: "u1"}},
			status:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Contains(t, rec.Body.String(), tt.body)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	handler := AdminOnly()(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/cron/status", nil)
	req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, &domain.Claims{UserID: "u1", UserRole: domain.UserRoleUser}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, &domain.Claims{UserID: "u2", UserRole: domain.UserRoleAdmin}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiters_Auth(t *testing.T) {
	limiters := NewRateLimiters(config.RateLimit{
		Enabled:      true,
		AuthRequests: 2,
		AuthWindow:   time.Minute,
		APIRequests:  100,
		APIWindow:    time.Hour,
		MetaRequests: 100,
		MetaWindow:   time.Hour,
	})
	handler := limiters.Auth(okHandler)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
		if i < 2 {
			assert.Equal(t, http.StatusOK, last.Code)
		}
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
	assert.Contains(t, last.Body.String(), "RATE_001")
	assert.Contains(t, last.Body.String(), "retryAfter")
}

func TestRateLimiters_PorUsuario(t *testing.T) {
	limiters := NewRateLimiters(config.RateLimit{
		Enabled:      true,
		AuthRequests: 5,
		AuthWindow:   time.Minute,
		APIRequests:  1,
		APIWindow:    time.Minute,
		MetaRequests: 1,
		MetaWindow:   time.Minute,
	})
	handler := limiters.API(okHandler)

	send := func(userID string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, &domain.Claims{UserID: userID}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("u1"))
	assert.Equal(t, http.StatusTooManyRequests, send("u1"))
	assert.Equal(t, http.StatusOK, send("u2"), "mesmo IP com outro usuário tem cota própria")
}

func TestRateLimiters_Desabilitado(t *testing.T) {
	limiters := NewRateLimiters(config.RateLimit{Enabled: false})
	handler := limiters.Auth(okHandler)

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("boom"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/accounts", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/accounts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
