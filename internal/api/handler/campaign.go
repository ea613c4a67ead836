package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/meta-ads-manager-api/pkg/validation"
)

type campaignFiltersQuery struct {
	Status        string `json:"status" validate:"omitempty,oneof=ACTIVE PAUSED DELETED ARCHIVED"`
	MetaAccountID string `json:"metaAccountId" validate:"omitempty,uuid"`
	Limit         uint64 `json:"limit" validate:"max=100"`
	Offset        uint64 `json:"offset"`
}

func CreateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.CreateCampaignRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		campaign, err := service.Create(r.Context(), id, req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}

// ListCampaigns aceita status, metaAccountId, limit (padrão 50) e offset
func ListCampaigns(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		limit, err := queryUint(r, "limit")
		if err != nil {
			handleError(w, r, err)
			return
		}
		offset, err := queryUint(r, "offset")
		if err != nil {
			handleError(w, r, err)
			return
		}

		filters := campaignFiltersQuery{
			Status:        r.URL.Query().Get("status"),
			MetaAccountID: r.URL.Query().Get("metaAccountId"),
			Limit:         limit,
			Offset:        offset,
		}
		if err := validation.ValidateStruct(filters); err != nil {
			handleError(w, r, err)
			return
		}

		campaigns, err := service.List(r.Context(), id, domain.CampaignFilters{
			Status:        domain.CampaignStatus(filters.Status),
			MetaAccountID: filters.MetaAccountID,
			Limit:         filters.Limit,
			Offset:        filters.Offset,
		})
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}

func GetCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		details, err := service.Get(r.Context(), param(r, "id"), id)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, details)
	}
}

func UpdateCampaignStatus(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateCampaignStatusRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		campaign, err := service.UpdateStatus(r.Context(), param(r, "id"), id, req.Status)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func BulkCampaignStatus(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.BulkCampaignActionRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		results := service.BulkUpdateStatus(r.Context(), id, req)

		succeeded := 0
		for _, result := range results {
			if result.Success {
				succeeded++
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"results":   results,
			"succeeded": succeeded,
			"failed":    len(results) - succeeded,
		})
	}
}
