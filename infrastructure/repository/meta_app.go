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

const metaAppsTable = "meta_apps"

var metaAppColumns = []string{
	"id", "user_id", "app_id", "app_secret", "app_name", "webhook_url", "is_active",
	"is_verified", "verification_status", "last_verified_at", "created_at", "updated_at",
}

type MetaAppRepository interface {
	Create(ctx context.Context, app *domain.MetaApp) error
	GetByID(ctx context.Context, id, userID string) (*domain.MetaApp, error)
	GetByAppID(ctx context.Context, userID, appID string) (*domain.MetaApp, error)
	ListActiveByUser(ctx context.Context, userID string) ([]*domain.MetaApp, error)
	Update(ctx context.Context, app *domain.MetaApp) error
	Deactivate(ctx context.Context, id, userID string) error
}

type metaAppRepository struct {
	conn *postgres.Connection
}

func NewMetaAppRepository(conn *postgres.Connection) MetaAppRepository {
	return &metaAppRepository{
		conn: conn,
	}
}

func (r *metaAppRepository) Create(ctx context.Context, app *domain.MetaApp) error {
	query, args, err := squirrel.
		Insert(metaAppsTable).
		Columns("id", "user_id", "app_id", "app_secret", "app_name", "webhook_url",
			"is_active", "is_verified", "verification_status", "last_verified_at").
		Values(app.ID, app.UserID, app.AppID, app.AppSecret, app.AppName, app.WebhookURL,
			app.IsActive, app.IsVerified, app.VerificationStatus, app.LastVerifiedAt).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&app.CreatedAt, &app.UpdatedAt); err != nil {
		return wrapDBError(err)
	}

	return nil
}

// GetByID retorna apenas apps ativos do próprio usuário
func (r *metaAppRepository) GetByID(ctx context.Context, id, userID string) (*domain.MetaApp, error) {
	query, args, err := squirrel.
		Select(metaAppColumns...).
		From(metaAppsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID, "is_active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	app, err := scanMetaApp(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	return app, nil
}

// GetByAppID ignora is_active: a unicidade (user_id, app_id) vale também para apps desativados
func (r *metaAppRepository) GetByAppID(ctx context.Context, userID, appID string) (*domain.MetaApp, error) {
	query, args, err := getMetaAppByAppIDQuery(userID, appID)
	if err != nil {
		return nil, err
	}

	app, err := scanMetaApp(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	return app, nil
}

func getMetaAppByAppIDQuery(userID, appID string) (string, []any, error) {
	query, args, err := squirrel.
		Select(metaAppColumns...).
		From(metaAppsTable).
		Where(squirrel.Eq{"user_id": userID, "app_id": appID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build query: %w", err)
	}

	return query, args, nil
}

func (r *metaAppRepository) ListActiveByUser(ctx context.Context, userID string) ([]*domain.MetaApp, error) {
	query, args, err := squirrel.
		Select(metaAppColumns...).
		From(metaAppsTable).
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

	apps := make([]*domain.MetaApp, 0)
	for rows.Next() {
		app, err := scanMetaApp(rows)
		if err != nil {
			return nil, wrapDBError(err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}

	return apps, nil
}

func (r *metaAppRepository) Update(ctx context.Context, app *domain.MetaApp) error {
	query, args, err := squirrel.
		Update(metaAppsTable).
		Set("app_name", app.AppName).
		Set("app_secret", app.AppSecret).
		Set("webhook_url", app.WebhookURL).
		Set("is_verified", app.IsVerified).
		Set("verification_status", app.VerificationStatus).
		Set("last_verified_at", app.LastVerifiedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": app.ID, "user_id": app.UserID, "is_active": true}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&app.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return wrapDBError(err)
	}

	return nil
}

// Deactivate desativa o app e todas as contas conectadas por ele na mesma transação
func (r *metaAppRepository) Deactivate(ctx context.Context, id, userID string) error {
	appQuery, appArgs, err := squirrel.
		Update(metaAppsTable).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "user_id": userID, "is_active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	accountsQuery, accountsArgs, err := squirrel.
		Update(metaAccountsTable).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"meta_app_id": id, "is_active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, appQuery, appArgs...)
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

		if _, err := tx.ExecContext(ctx, accountsQuery, accountsArgs...); err != nil {
			return wrapDBError(err)
		}

		return nil
	})
}

func scanMetaApp(row scanner) (*domain.MetaApp, error) {
	app := &domain.MetaApp{}
	if err := row.Scan(
		&app.ID,
		&app.UserID,
		&app.AppID,
		&app.AppSecret,
		&app.AppName,
		&app.WebhookURL,
		&app.IsActive,
		&app.IsVerified,
		&app.VerificationStatus,
		&app.LastVerifiedAt,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return app, nil
}
