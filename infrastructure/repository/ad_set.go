package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
)

const (
	adSetsTable = "ad_sets"
	adsTable    = "ads"
)

type AdSetRepository interface {
	ListByCampaign(ctx context.Context, campaignID string) ([]*domain.AdSet, error)
}

type adSetRepository struct {
	conn *postgres.Connection
}

func NewAdSetRepository(conn *postgres.Connection) AdSetRepository {
	return &adSetRepository{
		conn: conn,
	}
}

// ListByCampaign retorna os conjuntos de anúncios da campanha já com seus anúncios
func (r *adSetRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*domain.AdSet, error) {
	query, args, err := squirrel.
		Select("id", "campaign_id", "meta_ad_set_id", "name", "status", "budget_type", "budget",
			"bid_strategy", "targeting", "placements", "optimization", "created_at", "updated_at").
		From(adSetsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	adSets := make([]*domain.AdSet, 0)
	byID := make(map[string]*domain.AdSet)

	for rows.Next() {
		adSet := &domain.AdSet{Ads: make([]*domain.Ad, 0)}
		var targeting, placements, optimization []byte

		if err := rows.Scan(
			&adSet.ID,
			&adSet.CampaignID,
			&adSet.MetaAdSetID,
			&adSet.Name,
			&adSet.Status,
			&adSet.BudgetType,
			&adSet.Budget,
			&adSet.BidStrategy,
			&targeting,
			&placements,
			&optimization,
			&adSet.CreatedAt,
			&adSet.UpdatedAt,
		); err != nil {
			return nil, wrapDBError(err)
		}

		if err := unmarshalJSONB(targeting, &adSet.Targeting); err != nil {
			return nil, fmt.Errorf("failed to decode targeting: %w", err)
		}
		if err := unmarshalJSONB(placements, &adSet.Placements); err != nil {
			return nil, fmt.Errorf("failed to decode placements: %w", err)
		}
		if err := unmarshalJSONB(optimization, &adSet.Optimization); err != nil {
			return nil, fmt.Errorf("failed to decode optimization: %w", err)
		}

		adSets = append(adSets, adSet)
		byID[adSet.ID] = adSet
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}

	if len(adSets) == 0 {
		return adSets, nil
	}

	if err := r.attachAds(ctx, byID); err != nil {
		return nil, err
	}

	return adSets, nil
}

func (r *adSetRepository) attachAds(ctx context.Context, byID map[string]*domain.AdSet) error {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query, args, err := squirrel.
		Select("id", "ad_set_id", "meta_ad_id", "name", "status", "creative", "ad_format", "created_at", "updated_at").
		From(adsTable).
		Where(squirrel.Eq{"ad_set_id": ids}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err)
	}
	defer rows.Close()

	for rows.Next() {
		ad := &domain.Ad{}
		var creative []byte

		if err := rows.Scan(
			&ad.ID,
			&ad.AdSetID,
			&ad.MetaAdID,
			&ad.Name,
			&ad.Status,
			&creative,
			&ad.AdFormat,
			&ad.CreatedAt,
			&ad.UpdatedAt,
		); err != nil {
			return wrapDBError(err)
		}

		if err := unmarshalJSONB(creative, &ad.Creative); err != nil {
			return fmt.Errorf("failed to decode creative: %w", err)
		}

		if adSet, ok := byID[ad.AdSetID]; ok {
			adSet.Ads = append(adSet.Ads, ad)
		}
	}

	if err := rows.Err(); err != nil {
		return wrapDBError(err)
	}

	return nil
}
