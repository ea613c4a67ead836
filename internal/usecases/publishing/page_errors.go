package publishing

import (
	"errors"
	"fmt"
)

var (
	ErrPageNotFound      = errors.New("página não encontrada")
	ErrInvalidPeriod     = errors.New("período de insights inválido")
	ErrMetaIntegration   = errors.New("erro na integração com o Meta")
	ErrDecryptToken      = errors.New("erro ao decifrar token da página")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

type PageError struct {
	Err     error
	Code    string
	PageID  string
	Details string
}

func (e *PageError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PageError) Unwrap() error {
	return e.Err
}

func (e *PageError) APICode() string {
	return e.Code
}

func NewPageError(baseErr error, code string, pageID string, details string) *PageError {
	return &PageError{
		Err:     baseErr,
		Code:    code,
		PageID:  pageID,
		Details: details,
	}
}
