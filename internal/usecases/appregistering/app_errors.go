package appregistering

import (
	"errors"
	"fmt"
)

var (
	ErrAppNotFound        = errors.New("app do Meta não encontrado")
	ErrAppAlreadyExists   = errors.New("app do Meta já cadastrado")
	ErrInvalidCredentials = errors.New("credenciais do app rejeitadas pelo Meta")
	ErrMetaIntegration    = errors.New("erro na integração com o Meta")
	ErrEncryption         = errors.New("erro ao proteger segredo do app")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
)

type AppError struct {
	Err     error
	Code    string
	Details string
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) APICode() string {
	return e.Code
}

func NewAppError(baseErr error, code string, details string) *AppError {
	return &AppError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// wrap mantém o erro original na cadeia para que errors.As encontre a causa
func wrap(base, cause error) error {
	return fmt.Errorf("%w: %w", base, cause)
}
