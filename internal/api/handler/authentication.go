package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/authenticating"
)

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		resp, err := service.Register(r.Context(), req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		resp, err := service.Login(r.Context(), req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// GetMe retorna o perfil do usuário dono do token
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
