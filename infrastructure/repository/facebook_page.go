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

const facebookPagesTable = "facebook_pages"

var facebookPageColumns = []string{
	"id", "user_id", "meta_app_id", "page_id", "page_name", "page_access_token", "page_category",
	"page_url", "fan_count", "permissions", "is_active", "last_sync_at", "created_at", "updated_at",
}

type FacebookPageRepository interface {
	Upsert(ctx context.Context, page *domain.FacebookPage) (*domain.FacebookPage, error)
	ListActiveByUser(ctx context.Context, userID string) ([]*domain.FacebookPage, error)
	GetActiveByPageID(ctx context.Context, userID, pageID string) (*domain.FacebookPage, error)
	UpdateSyncedData(ctx context.Context, page *domain.FacebookPage) error
	Deactivate(ctx context.Context, userID, pageID string) error
}

type facebookPageRepository struct {
	conn *postgres.Connection
}

func NewFacebookPageRepository(conn *postgres.Connection) FacebookPageRepository {
	return &facebookPageRepository{
		conn: conn,
	}
}

func upsertFacebookPageQuery(page *domain.FacebookPage, permissions []byte) squirrel.InsertBuilder {
	return squirrel.
		Insert(facebookPagesTable).
		Columns("id", "user_id", "meta_app_id", "page_id", "page_name", "page_access_token",
			"page_category", "page_url", "fan_count", "permissions", "is_active", "last_sync_at").
		Values(page.ID, page.UserID, page.MetaAppID, page.PageID, page.PageName, page.PageAccessToken,
			page.PageCategory, page.PageURL, page.FanCount, permissions, true, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (meta_app_id, page_id) DO UPDATE SET
				page_name = EXCLUDED.page_name,
				page_access_token = EXCLUDED.page_access_token,
				page_category = EXCLUDED.page_category,
				page_url = EXCLUDED.page_url,
				fan_count = EXCLUDED.fan_count,
				permissions = EXCLUDED.permissions,
				is_active = TRUE,
				last_sync_at = NOW(),
				updated_at = NOW()
			WHERE facebook_pages.user_id = EXCLUDED.user_id
			RETURNING ` + joinColumns(facebookPageColumns)).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *facebookPageRepository) Upsert(ctx context.Context, page *domain.FacebookPage) (*domain.FacebookPage, error) {
	permissions, err := marshalJSONB(page.Permissions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode permissions: %w", err)
	}

	query, args, err := upsertFacebookPageQuery(page, permissions).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	saved, err := scanFacebookPage(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: page %s belongs to another user", ErrDuplicate, page.PageID)
		}
		return nil, wrapDBError(err)
	}

	return saved, nil
}

// ListActiveByUser retorna as páginas ativas, das mais recentes para as mais antigas
func (r *facebookPageRepository) ListActiveByUser(ctx context.Context, userID string) ([]*domain.FacebookPage, error) {
	query, args, err := squirrel.
		Select(facebookPageColumns...).
		From(facebookPagesTable).
		Where(squirrel.Eq{"user_id": userID, "is_active": true}).
		OrderBy("created_at DESC").
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

	pages := make([]*domain.FacebookPage, 0)
	for rows.Next() {
		page, err := scanFacebookPage(rows)
		if err != nil {
			return nil, wrapDBError(err)
		}
		pages = append(pages, page)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}

	return pages, nil
}

func (r *facebookPageRepository) GetActiveByPageID(ctx context.Context, userID, pageID string) (*domain.FacebookPage, error) {
	query, args, err := squirrel.
		Select(facebookPageColumns...).
		From(facebookPagesTable).
		Where(squirrel.Eq{"user_id": userID, "page_id": pageID, "is_active": true}).
		OrderBy("last_sync_at DESC NULLS LAST").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	page, err := scanFacebookPage(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	return page, nil
}

func (r *facebookPageRepository) UpdateSyncedData(ctx context.Context, page *domain.FacebookPage) error {
	query, args, err := squirrel.
		Update(facebookPagesTable).
		Set("page_name", page.PageName).
		Set("page_category", page.PageCategory).
		Set("page_url", page.PageURL).
		Set("fan_count", page.FanCount).
		Set("last_sync_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": page.ID, "user_id": page.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return r.execAffecting(ctx, query, args)
}

// Deactivate desativa a página em todos os apps do usuário
func (r *facebookPageRepository) Deactivate(ctx context.Context, userID, pageID string) error {
	query, args, err := squirrel.
		Update(facebookPagesTable).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID, "page_id": pageID, "is_active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return r.execAffecting(ctx, query, args)
}

func (r *facebookPageRepository) execAffecting(ctx context.Context, query string, args []any) error {
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

func scanFacebookPage(row scanner) (*domain.FacebookPage, error) {
	page := &domain.FacebookPage{}
	var permissions []byte

	if err := row.Scan(
		&page.ID,
		&page.UserID,
		&page.MetaAppID,
		&page.PageID,
		&page.PageName,
		&page.PageAccessToken,
		&page.PageCategory,
		&page.PageURL,
		&page.FanCount,
		&permissions,
		&page.IsActive,
		&page.LastSyncAt,
		&page.CreatedAt,
		&page.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := unmarshalJSONB(permissions, &page.Permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	return page, nil
}
