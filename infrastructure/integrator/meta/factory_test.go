package meta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
)

func TestFactoryMetaAccount(t *testing.T) {
	expiresAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	account := FactoryMetaAccount(metadomain.AdAccount{
		ID:            "act_123",
		Name:          "Loja Centro",
		AccountStatus: 1,
		Business:      &metadomain.Business{ID: "bm1", Name: "BM"},
		Currency:      "BRL",
		TimezoneName:  "America/Sao_Paulo",
	}, "user-1", "app-1", "token", &expiresAt, nil)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "123", account.AccountID)
	assert.Equal(t, "user-1", account.UserID)
	assert.Equal(t, "app-1", account.MetaAppID)
	assert.Equal(t, "America/Sao_Paulo", account.Timezone)
	require.NotNil(t, account.BusinessID)
	assert.Equal(t, "bm1", *account.BusinessID)
	assert.Equal(t, []string{}, account.Permissions)
	assert.True(t, account.IsActive)
}

func TestFactoryFacebookPage(t *testing.T) {
	page := FactoryFacebookPage(metadomain.Page{
		ID:          "p1",
		Name:        "Loja",
		Category:    "Varejo",
		FanCount:    42,
		AccessToken: "page-token",
		Tasks:       []string{"ADVERTISE", "ANALYZE"},
	}, "user-1", "app-1")

	assert.Equal(t, "p1", page.PageID)
	assert.Equal(t, "page-token", page.PageAccessToken)
	require.NotNil(t, page.PageCategory)
	assert.Equal(t, "Varejo", *page.PageCategory)
	assert.Nil(t, page.PageURL)
	assert.Equal(t, int64(42), page.FanCount)
	assert.Equal(t, []string{"ADVERTISE", "ANALYZE"}, page.Permissions)
}

func TestFactoryMetric(t *testing.T) {
	date := time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		insight  *metadomain.CampaignInsight
		validate func(t *testing.T, impressions, clicks int64, ctr, cpc, cpm, roas float64)
	}{
		{
			name: "calcula taxas ausentes",
			insight: &metadomain.CampaignInsight{
				Impressions: "1000",
				Clicks:      "20",
				Spend:       "50",
			},
			validate: func(t *testing.T, impressions, clicks int64, ctr, cpc, cpm, roas float64) {
				assert.Equal(t, int64(1000), impressions)
				assert.Equal(t, int64(20), clicks)
				assert.Equal(t, 2.0, ctr)
				assert.Equal(t, 2.5, cpc)
				assert.Equal(t, 50.0, cpm)
				assert.Equal(t, 0.0, roas)
			},
		},
		{
			name: "usa taxas enviadas pelo provedor",
			insight: &metadomain.CampaignInsight{
				Impressions:  "1000",
				Clicks:       "20",
				Spend:        "50",
				CTR:          "2.123",
				CPC:          "2.5",
				CPM:          "50",
				PurchaseROAS: []metadomain.Action{{ActionType: "omni_purchase", Value: "3.456"}},
			},
			validate: func(t *testing.T, impressions, clicks int64, ctr, cpc, cpm, roas float64) {
				assert.Equal(t, 2.12, ctr)
				assert.Equal(t, 3.46, roas)
			},
		},
		{
			name:    "sem impressões tudo zero",
			insight: &metadomain.CampaignInsight{Impressions: "0", Clicks: "x"},
			validate: func(t *testing.T, impressions, clicks int64, ctr, cpc, cpm, roas float64) {
				assert.Zero(t, impressions)
				assert.Zero(t, clicks)
				assert.Zero(t, ctr)
				assert.Zero(t, cpc)
				assert.Zero(t, cpm)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metric := FactoryMetric("c1", date, tt.insight)

			assert.Equal(t, "c1", metric.CampaignID)
			assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), metric.Date)
			tt.validate(t, metric.Impressions, metric.Clicks, metric.CTR, metric.CPC, metric.CPM, metric.ROAS)
		})
	}
}

func TestFriendlyMessage(t *testing.T) {
	assert.Equal(t, "Token de acesso expirado ou inválido. Reconecte sua conta.", FriendlyMessage(190))
	assert.Equal(t, "Erro ao comunicar com o Meta.", FriendlyMessage(99999))
}
