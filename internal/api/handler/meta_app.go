package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/appregistering"
)

func CreateMetaApp(service appregistering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.CreateMetaAppRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		app, err := service.Create(r.Context(), id, req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, app)
	}
}

func ListMetaApps(service appregistering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		apps, err := service.List(r.Context(), id)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, apps)
	}
}

func GetMetaApp(service appregistering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		app, err := service.Get(r.Context(), param(r, "id"), id)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, app)
	}
}

func UpdateMetaApp(service appregistering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateMetaAppRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		app, err := service.Update(r.Context(), param(r, "id"), id, req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, app)
	}
}

// DeleteMetaApp desativa o app e, em cascata, as contas conectadas por ele
func DeleteMetaApp(service appregistering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), param(r, "id"), id); err != nil {
			handleError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func VerifyMetaApp(service appregistering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		app, err := service.Verify(r.Context(), param(r, "id"), id)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, app)
	}
}
