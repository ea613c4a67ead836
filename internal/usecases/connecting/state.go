package connecting

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
)

var (
	ErrInvalidState       = errors.New("state do OAuth inválido")
	ErrStateExpired       = errors.New("state do OAuth expirado")
	ErrStateMissingUser   = errors.New("state do OAuth sem usuário")
	ErrStateReplayed      = errors.New("state do OAuth já utilizado")
	ErrStateFromFuture    = errors.New("state do OAuth emitido no futuro")
	ErrStateSecretMissing = errors.New("segredo de assinatura do state não configurado")
)

const (
	// DefaultStateWindow é a validade do state entre o redirecionamento e o callback
	DefaultStateWindow = 5 * time.Minute

	// tolerância para relógios levemente adiantados entre instâncias
	stateClockSkew = 30 * time.Second

	stateIssuer = "meta-ads-manager-api/oauth-state"
)

type stateClaims struct {
	domain.OAuthState
	jwt.RegisteredClaims
}

// EncodeState assina o state com HS256. O issuer separa o state dos tokens de login,
// que usam o mesmo segredo.
func EncodeState(state domain.OAuthState, secret string) (string, error) {
	if secret == "" {
		return "", ErrStateSecretMissing
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, stateClaims{
		OAuthState:       state,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: stateIssuer},
	})

	return token.SignedString([]byte(secret))
}

// DecodeState valida assinatura, usuário e janela de validade antes de qualquer chamada externa
func DecodeState(raw, secret string, now time.Time, window time.Duration) (*domain.OAuthState, error) {
	if secret == "" {
		return nil, ErrStateSecretMissing
	}
	if raw == "" {
		return nil, ErrInvalidState
	}

	claims := &stateClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(stateIssuer),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidState, err)
	}

	state := claims.OAuthState
	if state.UserID == "" {
		return nil, ErrStateMissingUser
	}

	issuedAt := time.UnixMilli(state.Timestamp)
	if state.Timestamp <= 0 || now.Sub(issuedAt) > window {
		return nil, ErrStateExpired
	}
	if issuedAt.After(now.Add(stateClockSkew)) {
		return nil, ErrStateFromFuture
	}

	return &state, nil
}
