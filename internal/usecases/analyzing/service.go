package analyzing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/metrics"
	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

const defaultSyncWindow = 24 * time.Hour

type AnalyticsService interface {
	GetMetrics(ctx context.Context, userID string, query domain.MetricsQuery) ([]*domain.Metric, error)
	SyncCampaignMetrics(ctx context.Context, userID, campaignID string) (*domain.Metric, error)
	SyncCampaign(ctx context.Context, campaign *domain.SyncableCampaign, now time.Time) (*domain.Metric, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	accountRepo  repository.MetaAccountRepository
	metricRepo   repository.MetricRepository
	client       metaclient.Client
	cipher       vault.Cipher
	window       time.Duration
	now          func() time.Time
}

func NewService(
	cfg config.MetricsSync,
	campaignRepo repository.CampaignRepository,
	accountRepo repository.MetaAccountRepository,
	metricRepo repository.MetricRepository,
	client metaclient.Client,
	cipher vault.Cipher,
) AnalyticsService {
	window := cfg.Window
	if window <= 0 {
		window = defaultSyncWindow
	}

	return &Service{
		campaignRepo: campaignRepo,
		accountRepo:  accountRepo,
		metricRepo:   metricRepo,
		client:       client,
		cipher:       cipher,
		window:       window,
		now:          time.Now,
	}
}

func (s *Service) GetMetrics(ctx context.Context, userID string, query domain.MetricsQuery) ([]*domain.Metric, error) {
	if query.StartDate != nil && query.EndDate != nil && query.StartDate.After(*query.EndDate) {
		return nil, NewAnalyticsError(ErrInvalidDateRange, apiErrors.ErrInvalidFormat, query.CampaignID)
	}

	query.Normalize()

	result, err := s.metricRepo.Query(ctx, userID, query)
	if err != nil {
		return nil, NewAnalyticsError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "")
	}
	return result, nil
}

// SyncCampaignMetrics sincroniza sob demanda uma campanha do próprio usuário
func (s *Service) SyncCampaignMetrics(ctx context.Context, userID, campaignID string) (*domain.Metric, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID, userID)
	if err != nil {
		return nil, NewAnalyticsError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, campaignID)
	}
	if campaign == nil {
		return nil, NewAnalyticsError(ErrCampaignNotFound, apiErrors.ErrNotFound, campaignID)
	}

	account, err := s.accountRepo.GetActiveByID(ctx, campaign.MetaAccountID, userID)
	if err != nil {
		return nil, NewAnalyticsError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, campaignID)
	}
	if account == nil {
		return nil, NewAnalyticsError(ErrAccountInactive, apiErrors.ErrNotFound, campaignID)
	}

	return s.SyncCampaign(ctx, &domain.SyncableCampaign{
		Campaign:    campaign,
		AccountID:   account.AccountID,
		AccessToken: account.AccessToken,
	}, s.now())
}

// SyncCampaign busca os insights da janela [now-window, hoje] e grava a linha
// do dia. Sem dados no Meta nada é gravado e o retorno é nil.
func (s *Service) SyncCampaign(ctx context.Context, campaign *domain.SyncableCampaign, now time.Time) (*domain.Metric, error) {
	if campaign.MetaCampaignID == nil || *campaign.MetaCampaignID == "" {
		return nil, NewAnalyticsError(ErrNotSynced, apiErrors.ErrInvalidRequest, campaign.ID)
	}

	token, err := s.cipher.Decrypt(campaign.AccessToken)
	if err != nil {
		return nil, NewAnalyticsError(wrap(ErrDecryptToken, err), apiErrors.ErrInternalServer, campaign.ID)
	}

	timeRange := &metadomain.TimeRange{
		Since: utils.FormatDate(now.Add(-s.window)),
		Until: utils.FormatDate(now),
	}

	insight, err := s.client.GetCampaignInsights(ctx, token, *campaign.MetaCampaignID, timeRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id":      campaign.ID,
			"meta_campaign_id": *campaign.MetaCampaignID,
			"error":            err.Error(),
		}).Error("analytics: falha ao buscar insights da campanha")
		return nil, NewAnalyticsError(wrap(ErrMetaIntegration, err), metaclient.ErrorCode(err), campaign.ID)
	}
	if insight == nil {
		logrus.WithField("campaign_id", campaign.ID).Debug("analytics: campanha sem insights na janela")
		return nil, nil
	}

	metric := meta.FactoryMetric(campaign.ID, now, insight)
	if err := s.metricRepo.Upsert(ctx, metric); err != nil {
		return nil, NewAnalyticsError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, campaign.ID)
	}

	metrics.MetricsUpsertedTotal.Inc()

	return metric, nil
}
