package metaclient

import (
	"errors"
	"fmt"

	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
)

// ProviderError é um erro retornado pela Graph API
type ProviderError struct {
	Code       int
	Message    string
	Subcode    int
	Type       string
	FBTraceID  string
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("Meta API Error %d: %s (%d)", e.Code, e.Message, e.Subcode)
}

// IsTokenExpired indica se o token usado na chamada expirou ou foi invalidado
func (e *ProviderError) IsTokenExpired() bool {
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.Subcode == 460 || e.Subcode == 463 || e.Subcode == 467))
}

// TransportError é uma falha de rede ou timeout ao falar com a Graph API
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("meta %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func AsProviderError(err error) (*ProviderError, bool) {
	var providerErr *ProviderError
	ok := errors.As(err, &providerErr)
	return providerErr, ok
}

func AsTransportError(err error) (*TransportError, bool) {
	var transportErr *TransportError
	ok := errors.As(err, &transportErr)
	return transportErr, ok
}

// ErrorCode devolve o código de API para uma falha vinda do cliente do Meta
func ErrorCode(err error) string {
	if _, ok := AsProviderError(err); ok {
		return apiErrors.ErrExternalService
	}
	if _, ok := AsTransportError(err); ok {
		return apiErrors.ErrCommunication
	}
	return apiErrors.ErrInternalServer
}
