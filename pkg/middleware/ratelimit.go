package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
)

// RateLimiters agrupa os limitadores usados pelas rotas
type RateLimiters struct {
	Auth func(http.Handler) http.Handler
	API  func(http.Handler) http.Handler
	Meta func(http.Handler) http.Handler
}

func NewRateLimiters(cfg config.RateLimit) *RateLimiters {
	if !cfg.Enabled {
		return &RateLimiters{Auth: passThrough, API: passThrough, Meta: passThrough}
	}

	return &RateLimiters{
		Auth: newLimiter("auth", cfg.AuthRequests, cfg.AuthWindow, httprate.KeyByIP),
		API:  newLimiter("api", cfg.APIRequests, cfg.APIWindow, KeyByUserOrIP),
		Meta: newLimiter("meta", cfg.MetaRequests, cfg.MetaWindow, KeyByUserOrIP),
	}
}

func newLimiter(scope string, requests int, window time.Duration, keyFunc httprate.KeyFunc) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(limitHandler(scope, window)),
	)
}

// KeyByUserOrIP usa o ID do usuário autenticado e cai para o IP quando não há claims
func KeyByUserOrIP(r *http.Request) (string, error) {
	if claims, ok := ClaimsFromContext(r.Context()); ok {
		return "user:" + claims.UserID, nil
	}
	return httprate.KeyByIP(r)
}

func limitHandler(scope string, window time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		retryAfter := w.Header().Get("Retry-After")
		if retryAfter == "" {
			retryAfter = strconv.Itoa(int(math.Ceil(window.Seconds())))
			w.Header().Set("Retry-After", retryAfter)
		}

		seconds, _ := strconv.Atoi(retryAfter)

		logrus.WithFields(logrus.Fields{
			"scope":  scope,
			"path":   r.URL.Path,
			"remote": r.RemoteAddr,
		}).Warn("Limite de requisições excedido")

		apiErrors.WriteError(w, apiErrors.ErrRateLimitExceeded, "Muitas requisições, tente novamente mais tarde", map[string]int{
			"retryAfter": seconds,
		})
	}
}

func passThrough(next http.Handler) http.Handler {
	return next
}
