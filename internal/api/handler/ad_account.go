package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/account"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/connecting"
)

func ListAccounts(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		accounts, err := service.List(r.Context(), id)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	}
}

// GetAccount devolve a conta com saldo e valor gasto consultados no Meta
func GetAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		details, err := service.GetDetails(r.Context(), param(r, "id"), id)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, details)
	}
}

func SyncAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		synced, err := service.SyncAccount(r.Context(), param(r, "id"), id)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, synced)
	}
}

func DisconnectAccount(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		if err := service.DisconnectAccount(r.Context(), param(r, "id"), id); err != nil {
			handleError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
