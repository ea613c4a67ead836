package connecting

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration     = errors.New("integração com o Meta não configurada")
	ErrAppNotFound       = errors.New("app do Meta não encontrado")
	ErrAccountNotFound   = errors.New("conta de anúncio não encontrada")
	ErrPageNotFound      = errors.New("página não encontrada")
	ErrTokenExchange     = errors.New("falha ao trocar o código de autorização")
	ErrDiscovery         = errors.New("falha ao buscar contas e páginas no Meta")
	ErrEncryption        = errors.New("erro ao proteger token de acesso")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

type ConnectError struct {
	Err     error
	Code    string
	Details string
}

func (e *ConnectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func (e *ConnectError) APICode() string {
	return e.Code
}

func NewConnectError(baseErr error, code string, details string) *ConnectError {
	return &ConnectError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func wrap(base, cause error) error {
	return fmt.Errorf("%w: %w", base, cause)
}
