package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
)

const metricsTable = "metrics"

type MetricRepository interface {
	Upsert(ctx context.Context, metric *domain.Metric) error
	Query(ctx context.Context, userID string, query domain.MetricsQuery) ([]*domain.Metric, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type metricRepository struct {
	conn *postgres.Connection
}

func NewMetricRepository(conn *postgres.Connection) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

// upsertMetricQuery mantém uma única linha por (campaign_id, date)
func upsertMetricQuery(metric *domain.Metric) squirrel.InsertBuilder {
	return squirrel.
		Insert(metricsTable).
		Columns("id", "campaign_id", "ad_set_id", "ad_id", "date", "impressions", "clicks",
			"spend", "conversions", "ctr", "cpc", "cpm", "roas").
		Values(metric.ID, metric.CampaignID, metric.AdSetID, metric.AdID, metric.Date, metric.Impressions,
			metric.Clicks, metric.Spend, metric.Conversions, metric.CTR, metric.CPC, metric.CPM, metric.ROAS).
		Suffix(`ON CONFLICT (campaign_id, date) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				spend = EXCLUDED.spend,
				conversions = EXCLUDED.conversions,
				ctr = EXCLUDED.ctr,
				cpc = EXCLUDED.cpc,
				cpm = EXCLUDED.cpm,
				roas = EXCLUDED.roas,
				updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *metricRepository) Upsert(ctx context.Context, metric *domain.Metric) error {
	query, args, err := upsertMetricQuery(metric).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&metric.ID, &metric.CreatedAt, &metric.UpdatedAt); err != nil {
		return wrapDBError(err)
	}

	return nil
}

// Query retorna apenas métricas de campanhas do usuário, da data mais recente para a mais antiga
func (r *metricRepository) Query(ctx context.Context, userID string, q domain.MetricsQuery) ([]*domain.Metric, error) {
	q.Normalize()

	builder := squirrel.
		Select("m.id", "m.campaign_id", "m.ad_set_id", "m.ad_id", "m.date", "m.impressions", "m.clicks",
			"m.spend", "m.conversions", "m.ctr", "m.cpc", "m.cpm", "m.roas", "m.created_at", "m.updated_at").
		From(metricsTable + " m").
		Join(campaignsTable + " c ON c.id = m.campaign_id").
		Where(squirrel.Eq{"c.user_id": userID}).
		OrderBy("m.date DESC").
		Limit(q.Limit).
		PlaceholderFormat(squirrel.Dollar)

	if len(q.CampaignIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"m.campaign_id": q.CampaignIDs})
	}

	if q.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"m.date": *q.StartDate})
	}

	if q.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"m.date": *q.EndDate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	metrics := make([]*domain.Metric, 0)
	for rows.Next() {
		m := &domain.Metric{}
		if err := rows.Scan(
			&m.ID,
			&m.CampaignID,
			&m.AdSetID,
			&m.AdID,
			&m.Date,
			&m.Impressions,
			&m.Clicks,
			&m.Spend,
			&m.Conversions,
			&m.CTR,
			&m.CPC,
			&m.CPM,
			&m.ROAS,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, wrapDBError(err)
		}
		metrics = append(metrics, m)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}

	return metrics, nil
}

func (r *metricRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(metricsTable).
		Where(squirrel.Lt{"date": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrapDBError(err)
	}

	return result.RowsAffected()
}
