package apiErrors

import (
	"net/http"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidState        = "VAL_004" // State do OAuth inválido ou expirado

	ErrNotFound          = "NF_001"   // Recurso não encontrado
	ErrConflict          = "CONF_001" // Recurso já existe
	ErrRateLimitExceeded = "RATE_001" // Limite de requisições excedido
	ErrConfiguration     = "CFG_001"  // Configuração ausente

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro retornado pelo Meta
	ErrCommunication     = "SRV_004" // Falha de comunicação com o Meta
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidState:          http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrConflict:              http.StatusConflict,
	ErrRateLimitExceeded:     http.StatusTooManyRequests,
	ErrConfiguration:         http.StatusInternalServerError,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// CodedError é implementado pelos erros dos casos de uso que já sabem
// qual código de API representam
type CodedError interface {
	error
	APICode() string
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

var exposeInternal atomic.Bool

// ExposeInternalErrors controla se mensagens de erros internos vão para o cliente.
// Só deve ser habilitado em desenvolvimento.
func ExposeInternalErrors(expose bool) {
	exposeInternal.Store(expose)
}

func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	if (code == ErrInternalServer || code == ErrDatabaseOperation) && !exposeInternal.Load() {
		message = "Erro interno do servidor"
		details = nil
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	if coded, ok := err.(CodedError); ok {
		code = coded.APICode()
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
