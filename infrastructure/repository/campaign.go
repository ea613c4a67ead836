package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
)

const (
	campaignsTable       = "campaigns"
	defaultCampaignLimit = 50
)

var campaignColumns = []string{
	"c.id", "c.user_id", "c.meta_account_id", "c.meta_campaign_id", "c.name", "c.objective", "c.status",
	"c.budget_type", "c.budget", "c.start_time", "c.end_time", "c.configuration", "c.created_at", "c.updated_at",
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	GetByID(ctx context.Context, id, userID string) (*domain.Campaign, error)
	List(ctx context.Context, userID string, filters domain.CampaignFilters) ([]*domain.Campaign, error)
	UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) error
	ListSyncable(ctx context.Context, statuses []domain.CampaignStatus, limit uint64) ([]*domain.SyncableCampaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	configuration, err := marshalJSONB(campaign.Configuration)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	query, args, err := squirrel.
		Insert(campaignsTable).
		Columns("id", "user_id", "meta_account_id", "meta_campaign_id", "name", "objective", "status",
			"budget_type", "budget", "start_time", "end_time", "configuration").
		Values(campaign.ID, campaign.UserID, campaign.MetaAccountID, campaign.MetaCampaignID, campaign.Name,
			campaign.Objective, campaign.Status, campaign.BudgetType, campaign.Budget, campaign.StartTime,
			campaign.EndTime, configuration).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&campaign.CreatedAt, &campaign.UpdatedAt); err != nil {
		return wrapDBError(err)
	}

	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id, userID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable + " c").
		Where(squirrel.Eq{"c.id": id, "c.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	return campaign, nil
}

func (r *campaignRepository) List(ctx context.Context, userID string, filters domain.CampaignFilters) ([]*domain.Campaign, error) {
	limit := filters.Limit
	if limit == 0 {
		limit = defaultCampaignLimit
	}

	builder := squirrel.
		Select(campaignColumns...).
		From(campaignsTable + " c").
		Where(squirrel.Eq{"c.user_id": userID}).
		OrderBy("c.created_at DESC").
		Limit(limit).
		Offset(filters.Offset).
		PlaceholderFormat(squirrel.Dollar)

	if filters.Status != "" {
		builder = builder.Where(squirrel.Eq{"c.status": filters.Status})
	}

	if filters.MetaAccountID != "" {
		builder = builder.Where(squirrel.Eq{"c.meta_account_id": filters.MetaAccountID})
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, wrapDBError(err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}

	return campaigns, nil
}

func (r *campaignRepository) UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) error {
	query, args, err := squirrel.
		Update(campaignsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapDBError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListSyncable retorna campanhas com id no Meta cuja conta dona ainda está ativa
func (r *campaignRepository) ListSyncable(ctx context.Context, statuses []domain.CampaignStatus, limit uint64) ([]*domain.SyncableCampaign, error) {
	columns := append(append([]string{}, campaignColumns...), "a.account_id", "a.access_token")

	query, args, err := squirrel.
		Select(columns...).
		From(campaignsTable + " c").
		Join(metaAccountsTable + " a ON a.id = c.meta_account_id").
		Where(squirrel.Eq{"a.is_active": true, "c.status": statuses}).
		Where(squirrel.NotEq{"c.meta_campaign_id": nil}).
		OrderBy("c.updated_at ASC").
		Limit(limit).
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

	campaigns := make([]*domain.SyncableCampaign, 0)
	for rows.Next() {
		item := &domain.SyncableCampaign{Campaign: &domain.Campaign{}}
		var configuration []byte

		if err := rows.Scan(append(campaignDest(item.Campaign, &configuration), &item.AccountID, &item.AccessToken)...); err != nil {
			return nil, wrapDBError(err)
		}
		if err := unmarshalJSONB(configuration, &item.Configuration); err != nil {
			return nil, fmt.Errorf("failed to decode configuration: %w", err)
		}

		campaigns = append(campaigns, item)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}

	return campaigns, nil
}

func campaignDest(c *domain.Campaign, configuration *[]byte) []any {
	return []any{
		&c.ID,
		&c.UserID,
		&c.MetaAccountID,
		&c.MetaCampaignID,
		&c.Name,
		&c.Objective,
		&c.Status,
		&c.BudgetType,
		&c.Budget,
		&c.StartTime,
		&c.EndTime,
		configuration,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	var configuration []byte

	if err := row.Scan(campaignDest(campaign, &configuration)...); err != nil {
		return nil, err
	}

	if err := unmarshalJSONB(configuration, &campaign.Configuration); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return campaign, nil
}
