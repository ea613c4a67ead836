package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
)

// GetMetrics aceita campaignId, campaignIds (separados por vírgula),
// startDate, endDate e limit (máximo 1000)
func GetMetrics(service analyzing.AnalyticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		metricsQuery := domain.MetricsQuery{CampaignID: query.Get("campaignId")}

		if raw := query.Get("campaignIds"); raw != "" {
			for _, campaignID := range strings.Split(raw, ",") {
				if campaignID = strings.TrimSpace(campaignID); campaignID != "" {
					metricsQuery.CampaignIDs = append(metricsQuery.CampaignIDs, campaignID)
				}
			}
		}

		var err error
		if metricsQuery.StartDate, err = utils.ParseDate(query.Get("startDate")); err != nil {
			handleError(w, r, invalidFormat("startDate deve estar no formato YYYY-MM-DD"))
			return
		}
		if metricsQuery.EndDate, err = utils.ParseDate(query.Get("endDate")); err != nil {
			handleError(w, r, invalidFormat("endDate deve estar no formato YYYY-MM-DD"))
			return
		}
		if metricsQuery.Limit, err = queryUint(r, "limit"); err != nil {
			handleError(w, r, err)
			return
		}

		result, err := service.GetMetrics(r.Context(), id, metricsQuery)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func SyncCampaignMetrics(service analyzing.AnalyticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		metric, err := service.SyncCampaignMetrics(r.Context(), id, param(r, "campaignId"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"synced": metric != nil,
			"metric": metric,
		})
	}
}
