package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/connecting"
)

const (
	callbackErrorOAuth      = "oauth_error"
	callbackErrorInvalid    = "invalid_request"
	callbackErrorConnection = "connection_failed"
)

// MetaConnect devolve a URL do diálogo de autorização do Meta. O app do
// usuário pode ser escolhido com ?metaAppId=, senão usa o app da plataforma.
func MetaConnect(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		authURL, err := service.BeginAuthorization(r.Context(), id, r.URL.Query().Get("metaAppId"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.AuthorizationURLResponse{AuthURL: authURL})
	}
}

// MetaCallback conclui o OAuth e sempre redireciona para o dashboard do cliente
func MetaCallback(service connecting.Connector, clientURL string) http.HandlerFunc {
	dashboard := strings.TrimRight(clientURL, "/") + "/dashboard"

	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if providerErr := query.Get("error"); providerErr != "" {
			details := query.Get("error_description")
			if details == "" {
				details = providerErr
			}
			logrus.WithField("error", providerErr).Warn("oauth: usuário recusou ou o Meta retornou erro")
			redirectWithError(w, r, dashboard, callbackErrorOAuth, details)
			return
		}

		code, state := query.Get("code"), query.Get("state")
		if code == "" || state == "" {
			redirectWithError(w, r, dashboard, callbackErrorInvalid, "")
			return
		}

		result, err := service.CompleteAuthorization(r.Context(), code, state)
		if err != nil {
			if providerErr, ok := metaclient.AsProviderError(err); ok {
				redirectWithError(w, r, dashboard, callbackErrorOAuth, meta.FriendlyMessage(providerErr.Code))
				return
			}
			redirectWithError(w, r, dashboard, callbackErrorConnection, "")
			return
		}

		target := fmt.Sprintf("%s?connected=true&accounts=%d&pages=%d", dashboard, len(result.Accounts), len(result.Pages))
		http.Redirect(w, r, target, http.StatusFound)
	}
}

func redirectWithError(w http.ResponseWriter, r *http.Request, dashboard, reason, details string) {
	target := dashboard + "?error=" + url.QueryEscape(reason)
	if details != "" {
		target += "&details=" + url.QueryEscape(details)
	}

	http.Redirect(w, r, target, http.StatusFound)
}
