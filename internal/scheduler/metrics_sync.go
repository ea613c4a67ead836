package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
)

const (
	MetricsSyncJobName = "metrics"

	defaultSyncBatchSize     = 100
	defaultSyncMaxConcurrent = 5
)

var syncableStatuses = []domain.CampaignStatus{domain.CampaignStatusActive, domain.CampaignStatusPaused}

// MetricsSyncJob busca os insights das campanhas ativas ou pausadas cuja conta
// ainda está ativa. Uma campanha com erro não interrompe o lote.
type MetricsSyncJob struct {
	cfg          config.MetricsSync
	campaignRepo repository.CampaignRepository
	analytics    analyzing.AnalyticsService
	clock        Clock
}

type syncSummary struct {
	mu     sync.Mutex
	synced int
	empty  int
	failed int
}

func NewMetricsSyncJob(cfg config.MetricsSync, campaignRepo repository.CampaignRepository, analytics analyzing.AnalyticsService, clock Clock) *MetricsSyncJob {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultSyncBatchSize
	}
	if cfg.MaxConcurrentJobs <= 0 {
		cfg.MaxConcurrentJobs = defaultSyncMaxConcurrent
	}
	if clock == nil {
		clock = SystemClock()
	}

	return &MetricsSyncJob{
		cfg:          cfg,
		campaignRepo: campaignRepo,
		analytics:    analytics,
		clock:        clock,
	}
}

func (j *MetricsSyncJob) Name() string         { return MetricsSyncJobName }
func (j *MetricsSyncJob) CronSchedule() string { return j.cfg.CronSchedule }
func (j *MetricsSyncJob) Enabled() bool        { return j.cfg.Enabled }

func (j *MetricsSyncJob) RunOnce(ctx context.Context) error {
	campaigns, err := j.campaignRepo.ListSyncable(ctx, syncableStatuses, uint64(j.cfg.BatchSize))
	if err != nil {
		return fmt.Errorf("erro ao listar campanhas para sincronização: %w", err)
	}

	if len(campaigns) == 0 {
		logrus.Info("metrics sync: nenhuma campanha para sincronizar")
		return nil
	}

	now := j.clock.Now()
	summary := &syncSummary{}

	utils.ForEachBounded(len(campaigns), j.cfg.MaxConcurrentJobs, func(i int) {
		campaign := campaigns[i]

		metric, err := j.analytics.SyncCampaign(ctx, campaign, now)

		summary.mu.Lock()
		defer summary.mu.Unlock()

		switch {
		case err != nil:
			summary.failed++
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"account_id":  campaign.AccountID,
				"error":       err.Error(),
			}).Warn("metrics sync: falha ao sincronizar campanha")
		case metric == nil:
			summary.empty++
		default:
			summary.synced++
		}
	})

	logrus.WithFields(logrus.Fields{
		"campaigns": len(campaigns),
		"synced":    summary.synced,
		"empty":     summary.empty,
		"failed":    summary.failed,
	}).Info("metrics sync: rodada concluída")

	return nil
}
