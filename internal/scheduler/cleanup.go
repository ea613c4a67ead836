package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
)

const (
	CleanupJobName = "cleanup"

	defaultMetricsRetentionDays = 90
	defaultInactiveAccountDays  = 30
)

// CleanupJob remove métricas antigas e contas desativadas há muito tempo
type CleanupJob struct {
	cfg         config.Cleanup
	metricRepo  repository.MetricRepository
	accountRepo repository.MetaAccountRepository
	clock       Clock
}

func NewCleanupJob(cfg config.Cleanup, metricRepo repository.MetricRepository, accountRepo repository.MetaAccountRepository, clock Clock) *CleanupJob {
	if cfg.MetricsRetentionDays <= 0 {
		cfg.MetricsRetentionDays = defaultMetricsRetentionDays
	}
	if cfg.InactiveAccountDays <= 0 {
		cfg.InactiveAccountDays = defaultInactiveAccountDays
	}
	if clock == nil {
		clock = SystemClock()
	}

	return &CleanupJob{
		cfg:         cfg,
		metricRepo:  metricRepo,
		accountRepo: accountRepo,
		clock:       clock,
	}
}

func (j *CleanupJob) Name() string         { return CleanupJobName }
func (j *CleanupJob) CronSchedule() string { return j.cfg.CronSchedule }
func (j *CleanupJob) Enabled() bool        { return j.cfg.Enabled }

// RunOnce executa as duas limpezas mesmo que a primeira falhe
func (j *CleanupJob) RunOnce(ctx context.Context) error {
	now := j.clock.Now()
	var errs []error

	metricsCutoff := now.AddDate(0, 0, -j.cfg.MetricsRetentionDays)
	deletedMetrics, err := j.metricRepo.DeleteOlderThan(ctx, metricsCutoff)
	if err != nil {
		errs = append(errs, fmt.Errorf("erro ao remover métricas antigas: %w", err))
	}

	accountsCutoff := now.AddDate(0, 0, -j.cfg.InactiveAccountDays)
	deletedAccounts, err := j.accountRepo.DeleteInactiveOlderThan(ctx, accountsCutoff)
	if err != nil {
		errs = append(errs, fmt.Errorf("erro ao remover contas inativas: %w", err))
	}

	logrus.WithFields(logrus.Fields{
		"metrics_cutoff":   metricsCutoff.Format("2006-01-02"),
		"metrics_deleted":  deletedMetrics,
		"accounts_cutoff":  accountsCutoff.Format("2006-01-02"),
		"accounts_deleted": deletedAccounts,
	}).Info("cleanup: limpeza concluída")

	return errors.Join(errs...)
}
