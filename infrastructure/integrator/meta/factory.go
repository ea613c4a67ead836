package meta

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
)

// FactoryMetaAccount converte uma conta de anúncio da Graph API na conta conectada local.
// O token recebido aqui ainda está em texto puro; quem persiste é responsável por cifrá-lo.
func FactoryMetaAccount(adAccount metadomain.AdAccount, userID, metaAppID, accessToken string, expiresAt *time.Time, permissions []string) *domain.MetaAccount {
	accountID := adAccount.AccountID
	if accountID == "" {
		accountID = strings.TrimPrefix(adAccount.ID, "act_")
	}

	account := &domain.MetaAccount{
		ID:             utils.GenerateID(),
		UserID:         userID,
		MetaAppID:      metaAppID,
		AccountID:      accountID,
		AccountName:    adAccount.Name,
		AccessToken:    accessToken,
		TokenExpiresAt: expiresAt,
		AccountStatus:  adAccount.AccountStatus,
		Currency:       adAccount.Currency,
		Timezone:       adAccount.TimezoneName,
		Permissions:    permissions,
		IsActive:       true,
	}

	if adAccount.Business != nil && adAccount.Business.ID != "" {
		businessID := adAccount.Business.ID
		account.BusinessID = &businessID
	}

	if account.Permissions == nil {
		account.Permissions = []string{}
	}

	return account
}

func FactoryFacebookPage(page metadomain.Page, userID, metaAppID string) *domain.FacebookPage {
	fbPage := &domain.FacebookPage{
		ID:              utils.GenerateID(),
		UserID:          userID,
		MetaAppID:       metaAppID,
		PageID:          page.ID,
		PageName:        page.Name,
		PageAccessToken: page.AccessToken,
		FanCount:        page.FanCount,
		Permissions:     page.Tasks,
		IsActive:        true,
	}

	if page.Category != "" {
		category := page.Category
		fbPage.PageCategory = &category
	}
	if page.Link != "" {
		link := page.Link
		fbPage.PageURL = &link
	}
	if fbPage.Permissions == nil {
		fbPage.Permissions = []string{}
	}

	return fbPage
}

func FactoryPageInsights(insights []metadomain.PageInsight) []domain.PageInsight {
	result := make([]domain.PageInsight, 0, len(insights))
	for _, insight := range insights {
		values := make([]domain.PageInsightValue, 0, len(insight.Values))
		for _, v := range insight.Values {
			values = append(values, domain.PageInsightValue{Value: v.Value, EndTime: v.EndTime})
		}

		result = append(result, domain.PageInsight{
			Name:        insight.Name,
			Period:      insight.Period,
			Title:       insight.Title,
			Description: insight.Description,
			Values:      values,
		})
	}
	return result
}

// FactoryMetric converte o insight de uma campanha na linha diária de métricas.
// As taxas que a Graph API não enviar são calculadas a partir dos totais.
func FactoryMetric(campaignID string, date time.Time, insight *metadomain.CampaignInsight) *domain.Metric {
	impressions := parseInt(insight.Impressions, "impressions")
	clicks := parseInt(insight.Clicks, "clicks")
	spend := parseFloat(insight.Spend, "spend")
	conversions := int64(metadomain.SumActions(insight.Conversions))
	roas := metadomain.SumActions(insight.PurchaseROAS)

	calculated := domain.CalculateMetrics(impressions, clicks, conversions, spend, roas*spend)

	metric := &domain.Metric{
		ID:          utils.GenerateID(),
		CampaignID:  campaignID,
		Date:        utils.StartOfDay(date),
		Impressions: impressions,
		Clicks:      clicks,
		Spend:       utils.RoundWithTwoDecimalPlace(spend),
		Conversions: conversions,
		CTR:         calculated.CTR,
		CPC:         calculated.CPC,
		CPM:         calculated.CPM,
		ROAS:        utils.RoundWithTwoDecimalPlace(roas),
	}

	if insight.CTR != "" {
		metric.CTR = utils.RoundWithTwoDecimalPlace(parseFloat(insight.CTR, "ctr"))
	}
	if insight.CPC != "" {
		metric.CPC = utils.RoundWithTwoDecimalPlace(parseFloat(insight.CPC, "cpc"))
	}
	if insight.CPM != "" {
		metric.CPM = utils.RoundWithTwoDecimalPlace(parseFloat(insight.CPM, "cpm"))
	}

	return metric
}

func parseInt(value, field string) int64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: erro ao converter valor para inteiro")
		return 0
	}
	return parsed
}

func parseFloat(value, field string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: erro ao converter valor para float")
		return 0
	}
	return parsed
}
