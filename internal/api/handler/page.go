package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/connecting"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/publishing"
	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
)

func ListPages(service publishing.PageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		pages, err := service.ListPages(r.Context(), id)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, pages)
	}
}

// GetPageInsights aceita metric, period, since e until (YYYY-MM-DD) na query
func GetPageInsights(service publishing.PageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		insightsQuery := domain.PageInsightsQuery{
			Metric: query.Get("metric"),
			Period: query.Get("period"),
		}

		since, err := utils.ParseDate(query.Get("since"))
		if err != nil {
			handleError(w, r, invalidFormat("since deve estar no formato YYYY-MM-DD"))
			return
		}
		if since != nil {
			insightsQuery.Since = *since
		}

		until, err := utils.ParseDate(query.Get("until"))
		if err != nil {
			handleError(w, r, invalidFormat("until deve estar no formato YYYY-MM-DD"))
			return
		}
		if until != nil {
			insightsQuery.Until = *until
		}

		insights, err := service.GetPageInsights(r.Context(), id, param(r, "pageId"), insightsQuery)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, insights)
	}
}

func CreatePagePost(service publishing.PageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.CreatePagePostRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		post, err := service.CreatePost(r.Context(), id, param(r, "pageId"), req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, post)
	}
}

// SyncPages confirma a página da rota e sincroniza todas as páginas do usuário
func SyncPages(service publishing.PageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		report, err := service.SyncAllPages(r.Context(), id, param(r, "pageId"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func DisconnectPage(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		if err := service.DisconnectPage(r.Context(), param(r, "pageId"), id); err != nil {
			handleError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
