package analyzing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	metamocks "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

var fixedNow = time.Date(2026, 5, 2, 14, 30, 0, 0, time.UTC)

type fixture struct {
	service      *Service
	campaignRepo *mocks.MockCampaignRepository
	accountRepo  *mocks.MockMetaAccountRepository
	metricRepo   *mocks.MockMetricRepository
	client       *metamocks.MockClient
	token        string
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cipher, err := vault.New("chave-de-teste")
	require.NoError(t, err)

	token, err := cipher.Encrypt("token-conta")
	require.NoError(t, err)

	f := &fixture{
		campaignRepo: mocks.NewMockCampaignRepository(ctrl),
		accountRepo:  mocks.NewMockMetaAccountRepository(ctrl),
		metricRepo:   mocks.NewMockMetricRepository(ctrl),
		client:       metamocks.NewMockClient(ctrl),
		token:        token,
	}
	f.service = &Service{
		campaignRepo: f.campaignRepo,
		accountRepo:  f.accountRepo,
		metricRepo:   f.metricRepo,
		client:       f.client,
		cipher:       cipher,
		window:       defaultSyncWindow,
		now:          func() time.Time { return fixedNow },
	}
	return f
}

func (f *fixture) syncable() *domain.SyncableCampaign {
	metaID := "238000"
	return &domain.SyncableCampaign{
		Campaign:    &domain.Campaign{ID: "c1", MetaAccountID: "acc-1", MetaCampaignID: &metaID},
		AccountID:   "123",
		AccessToken: f.token,
	}
}

func TestService_GetMetrics(t *testing.T) {
	t.Run("Aplica limite padrão e filtra pela campanha", func(t *testing.T) {
		f := newFixture(t)

		f.metricRepo.EXPECT().Query(gomock.Any(), "u1", domain.MetricsQuery{CampaignIDs: []string{"c1"}, Limit: 100}).
			Return([]*domain.Metric{{ID: "m1", CampaignID: "c1"}}, nil)

		result, err := f.service.GetMetrics(context.Background(), "u1", domain.MetricsQuery{CampaignID: "c1"})
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("Limite acima do teto", func(t *testing.T) {
		f := newFixture(t)

		f.metricRepo.EXPECT().Query(gomock.Any(), "u1", domain.MetricsQuery{Limit: 1000}).Return(nil, nil)

		_, err := f.service.GetMetrics(context.Background(), "u1", domain.MetricsQuery{Limit: 5000})
		require.NoError(t, err)
	})

	t.Run("Intervalo invertido", func(t *testing.T) {
		f := newFixture(t)
		start := fixedNow
		end := fixedNow.AddDate(0, 0, -1)

		_, err := f.service.GetMetrics(context.Background(), "u1", domain.MetricsQuery{StartDate: &start, EndDate: &end})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestService_SyncCampaign(t *testing.T) {
	t.Run("Grava a linha do dia com as taxas calculadas", func(t *testing.T) {
		f := newFixture(t)

		f.client.EXPECT().GetCampaignInsights(gomock.Any(), "token-conta", "238000", &metadomain.TimeRange{
			Since: "2026-05-01",
			Until: "2026-05-02",
		}).Return(&metadomain.CampaignInsight{Impressions: "1000", Clicks: "20", Spend: "50"}, nil)

		f.metricRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		metric, err := f.service.SyncCampaign(context.Background(), f.syncable(), fixedNow)
		require.NoError(t, err)
		assert.Equal(t, "c1", metric.CampaignID)
		assert.Equal(t, time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), metric.Date)
		assert.Equal(t, 2.0, metric.CTR)
		assert.Equal(t, 2.5, metric.CPC)
		assert.Equal(t, 50.0, metric.CPM)
	})

	t.Run("Sem insights não grava", func(t *testing.T) {
		f := newFixture(t)

		f.client.EXPECT().GetCampaignInsights(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.metricRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

		metric, err := f.service.SyncCampaign(context.Background(), f.syncable(), fixedNow)
		require.NoError(t, err)
		assert.Nil(t, metric)
	})

	t.Run("Erro do Meta vira SRV_003", func(t *testing.T) {
		f := newFixture(t)

		f.client.EXPECT().GetCampaignInsights(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &metaclient.ProviderError{Code: 190, Message: "expired"})

		_, err := f.service.SyncCampaign(context.Background(), f.syncable(), fixedNow)
		require.ErrorIs(t, err, ErrMetaIntegration)

		var analyticsErr *AnalyticsError
		require.ErrorAs(t, err, &analyticsErr)
		assert.Equal(t, apiErrors.ErrExternalService, analyticsErr.APICode())
	})

	t.Run("Campanha sem id no Meta", func(t *testing.T) {
		f := newFixture(t)
		campaign := f.syncable()
		campaign.MetaCampaignID = nil

		_, err := f.service.SyncCampaign(context.Background(), campaign, fixedNow)
		assert.ErrorIs(t, err, ErrNotSynced)
	})
}

func TestService_SyncCampaignMetrics(t *testing.T) {
	t.Run("Campanha de outro usuário", func(t *testing.T) {
		f := newFixture(t)

		f.campaignRepo.EXPECT().GetByID(gomock.Any(), "c1", "u2").Return(nil, nil)

		_, err := f.service.SyncCampaignMetrics(context.Background(), "u2", "c1")
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("Conta desativada", func(t *testing.T) {
		f := newFixture(t)

		f.campaignRepo.EXPECT().GetByID(gomock.Any(), "c1", "u1").Return(f.syncable().Campaign, nil)
		f.accountRepo.EXPECT().GetActiveByID(gomock.Any(), "acc-1", "u1").Return(nil, nil)

		_, err := f.service.SyncCampaignMetrics(context.Background(), "u1", "c1")
		assert.ErrorIs(t, err, ErrAccountInactive)
	})

	t.Run("Usa o token da conta dona", func(t *testing.T) {
		f := newFixture(t)

		f.campaignRepo.EXPECT().GetByID(gomock.Any(), "c1", "u1").Return(f.syncable().Campaign, nil)
		f.accountRepo.EXPECT().GetActiveByID(gomock.Any(), "acc-1", "u1").
			Return(&domain.MetaAccount{ID: "acc-1", AccountID: "123", AccessToken: f.token, IsActive: true}, nil)
		f.client.EXPECT().GetCampaignInsights(gomock.Any(), "token-conta", "238000", gomock.Any()).
			Return(&metadomain.CampaignInsight{Impressions: "10"}, nil)
		f.metricRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		metric, err := f.service.SyncCampaignMetrics(context.Background(), "u1", "c1")
		require.NoError(t, err)
		assert.Equal(t, int64(10), metric.Impressions)
	})
}
