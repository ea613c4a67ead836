package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contas
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrMetaIntegration   = errors.New("error fetching account from Meta")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchAccounts     = errors.New("error fetching accounts from database")
	ErrDecryptToken      = errors.New("error decrypting account token")
)

// AccountError é um erro com contexto adicional para contas
type AccountError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func (e *AccountError) APICode() string {
	return e.Code
}

func NewAccountError(baseErr error, code string, details string) *AccountError {
	return &AccountError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewAccountErrorWithID(baseErr error, code string, accountID string, details string) *AccountError {
	return &AccountError{
		Err:       baseErr,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
