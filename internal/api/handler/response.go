package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/log"
	"github.com/vfg2006/meta-ads-manager-api/pkg/middleware"
	"github.com/vfg2006/meta-ads-manager-api/pkg/tracking"
	"github.com/vfg2006/meta-ads-manager-api/pkg/validation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

// requestError é um erro de entrada detectado no próprio handler
type requestError struct {
	code    string
	message string
}

func (e *requestError) Error() string   { return e.message }
func (e *requestError) APICode() string { return e.code }

func badRequest(message string) error {
	return &requestError{code: apiErrors.ErrInvalidRequest, message: message}
}

func invalidFormat(message string) error {
	return &requestError{code: apiErrors.ErrInvalidFormat, message: message}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("erro ao enviar resposta")
	}
}

// decodeAndValidate lê o corpo JSON e aplica as regras de validação da struct
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return badRequest("Formato de requisição inválido")
	}
	return validation.ValidateStruct(dst)
}

func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}
	return claims.UserID, true
}

func param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

func queryUint(r *http.Request, name string) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, invalidFormat(name + " deve ser um número inteiro positivo")
	}
	return value, nil
}

// handleError converte o erro do caso de uso na resposta padronizada. Erros
// do Meta levam o código original e uma mensagem amigável nos detalhes.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dados inválidos", validationErr.Fields)
		return
	}

	code := apiErrors.ErrInternalServer
	var coded apiErrors.CodedError
	if errors.As(err, &coded) {
		code = coded.APICode()
	}

	message := err.Error()
	var details any

	if providerErr, ok := metaclient.AsProviderError(err); ok {
		if coded == nil {
			code = apiErrors.ErrExternalService
		}
		message = meta.FriendlyMessage(providerErr.Code)
		details = map[string]any{
			"providerCode":    providerErr.Code,
			"providerSubcode": providerErr.Subcode,
			"providerMessage": providerErr.Message,
			"tokenExpired":    providerErr.IsTokenExpired(),
		}
	} else if _, ok := metaclient.AsTransportError(err); ok {
		if coded == nil {
			code = apiErrors.ErrCommunication
		}
		message = "Falha de comunicação com o Meta"
	}

	status := apiErrors.StatusFor(code)
	if status >= http.StatusInternalServerError {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"code":   code,
			"error":  err.Error(),
		}).Error("erro ao processar requisição")
		tracking.CaptureError(err, map[string]string{
			"path":           r.URL.Path,
			"code":           code,
			"correlation_id": log.GetCorrelationID(r.Context()),
		})
	}

	apiErrors.WriteError(w, code, message, details)
}
