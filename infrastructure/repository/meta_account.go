package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
)

const metaAccountsTable = "meta_accounts"

var metaAccountColumns = []string{
	"id", "user_id", "meta_app_id", "account_id", "account_name", "access_token", "refresh_token",
	"token_expires_at", "account_status", "currency", "timezone", "business_id", "permissions",
	"is_active", "created_at", "updated_at",
}

type MetaAccountRepository interface {
	Upsert(ctx context.Context, account *domain.MetaAccount) (*domain.MetaAccount, error)
	GetByID(ctx context.Context, id, userID string) (*domain.MetaAccount, error)
	GetActiveByID(ctx context.Context, id, userID string) (*domain.MetaAccount, error)
	ListActiveByUser(ctx context.Context, userID string) ([]*domain.MetaAccount, error)
	UpdateSyncedData(ctx context.Context, account *domain.MetaAccount) error
	Deactivate(ctx context.Context, id, userID string) error
	ListExpiringTokens(ctx context.Context, before time.Time) ([]*domain.MetaAccount, error)
	UpdateToken(ctx context.Context, id, accessToken string, expiresAt *time.Time) error
	DeleteInactiveOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type metaAccountRepository struct {
	conn *postgres.Connection
}

func NewMetaAccountRepository(conn *postgres.Connection) MetaAccountRepository {
	return &metaAccountRepository{
		conn: conn,
	}
}

// upsertMetaAccountQuery grava a conta pela chave (meta_app_id, account_id).
// Uma conta já conectada por outro usuário não é sobrescrita.
func upsertMetaAccountQuery(account *domain.MetaAccount, permissions []byte) squirrel.InsertBuilder {
	return squirrel.
		Insert(metaAccountsTable).
		Columns("id", "user_id", "meta_app_id", "account_id", "account_name", "access_token",
			"refresh_token", "token_expires_at", "account_status", "currency", "timezone",
			"business_id", "permissions", "is_active").
		Values(account.ID, account.UserID, account.MetaAppID, account.AccountID, account.AccountName,
			account.AccessToken, account.RefreshToken, account.TokenExpiresAt, account.AccountStatus,
			account.Currency, account.Timezone, account.BusinessID, permissions, true).
		Suffix(`ON CONFLICT (meta_app_id, account_id) DO UPDATE SET
				account_name = EXCLUDED.account_name,
				access_token = EXCLUDED.access_token,
				refresh_token = EXCLUDED.refresh_token,
				token_expires_at = EXCLUDED.token_expires_at,
				account_status = EXCLUDED.account_status,
				currency = EXCLUDED.currency,
				timezone = EXCLUDED.timezone,
				business_id = EXCLUDED.business_id,
				permissions = EXCLUDED.permissions,
				is_active = TRUE,
				updated_at = NOW()
			WHERE meta_accounts.user_id = EXCLUDED.user_id
			RETURNING ` + joinColumns(metaAccountColumns)).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *metaAccountRepository) Upsert(ctx context.Context, account *domain.MetaAccount) (*domain.MetaAccount, error) {
	permissions, err := marshalJSONB(account.Permissions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode permissions: %w", err)
	}

	query, args, err := upsertMetaAccountQuery(account, permissions).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	saved, err := scanMetaAccount(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s belongs to another user", ErrDuplicate, account.AccountID)
		}
		return nil, wrapDBError(err)
	}

	return saved, nil
}

func (r *metaAccountRepository) GetByID(ctx context.Context, id, userID string) (*domain.MetaAccount, error) {
	return r.get(ctx, squirrel.Eq{"id": id, "user_id": userID})
}

func (r *metaAccountRepository) GetActiveByID(ctx context.Context, id, userID string) (*domain.MetaAccount, error) {
	return r.get(ctx, squirrel.Eq{"id": id, "user_id": userID, "is_active": true})
}

func (r *metaAccountRepository) get(ctx context.Context, where squirrel.Sqlizer) (*domain.MetaAccount, error) {
	query, args, err := squirrel.
		Select(metaAccountColumns...).
		From(metaAccountsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	account, err := scanMetaAccount(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	return account, nil
}

func (r *metaAccountRepository) ListActiveByUser(ctx context.Context, userID string) ([]*domain.MetaAccount, error) {
	return r.list(ctx, squirrel.
		Select(metaAccountColumns...).
		From(metaAccountsTable).
		Where(squirrel.Eq{"user_id": userID, "is_active": true}).
		OrderBy("created_at DESC"))
}

func (r *metaAccountRepository) ListExpiringTokens(ctx context.Context, before time.Time) ([]*domain.MetaAccount, error) {
	return r.list(ctx, squirrel.
		Select(metaAccountColumns...).
		From(metaAccountsTable).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.NotEq{"token_expires_at": nil}).
		Where(squirrel.Lt{"token_expires_at": before}).
		OrderBy("token_expires_at ASC"))
}

func (r *metaAccountRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.MetaAccount, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	accounts := make([]*domain.MetaAccount, 0)
	for rows.Next() {
		account, err := scanMetaAccount(rows)
		if err != nil {
			return nil, wrapDBError(err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}

	return accounts, nil
}

func (r *metaAccountRepository) UpdateSyncedData(ctx context.Context, account *domain.MetaAccount) error {
	return r.exec(ctx, squirrel.
		Update(metaAccountsTable).
		Set("account_name", account.AccountName).
		Set("account_status", account.AccountStatus).
		Set("currency", account.Currency).
		Set("timezone", account.Timezone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": account.ID, "user_id": account.UserID}))
}

func (r *metaAccountRepository) Deactivate(ctx context.Context, id, userID string) error {
	return r.exec(ctx, squirrel.
		Update(metaAccountsTable).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "user_id": userID, "is_active": true}))
}

func (r *metaAccountRepository) UpdateToken(ctx context.Context, id, accessToken string, expiresAt *time.Time) error {
	return r.exec(ctx, squirrel.
		Update(metaAccountsTable).
		Set("access_token", accessToken).
		Set("token_expires_at", expiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// DeleteInactiveOlderThan remove definitivamente contas desativadas antes do corte
func (r *metaAccountRepository) DeleteInactiveOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(metaAccountsTable).
		Where(squirrel.Eq{"is_active": false}).
		Where(squirrel.Lt{"updated_at": cutoff}).
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

func (r *metaAccountRepository) exec(ctx context.Context, builder squirrel.UpdateBuilder) error {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
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

func scanMetaAccount(row scanner) (*domain.MetaAccount, error) {
	account := &domain.MetaAccount{}
	var permissions []byte

	if err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.MetaAppID,
		&account.AccountID,
		&account.AccountName,
		&account.AccessToken,
		&account.RefreshToken,
		&account.TokenExpiresAt,
		&account.AccountStatus,
		&account.Currency,
		&account.Timezone,
		&account.BusinessID,
		&permissions,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := unmarshalJSONB(permissions, &account.Permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	return account, nil
}
