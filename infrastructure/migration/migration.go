package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/database/postgres"
)

const migrationsTable = "schema_migrations"

//go:embed sql/*.sql
var scriptsFS embed.FS

type Script struct {
	Version string
	SQL     string
}

// Scripts retorna os scripts embutidos em ordem lexical
func Scripts() ([]Script, error) {
	entries, err := scriptsFS.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	scripts := make([]Script, 0, len(names))
	for _, name := range names {
		raw, err := scriptsFS.ReadFile("sql/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		scripts = append(scripts, Script{Version: strings.TrimSuffix(name, ".sql"), SQL: string(raw)})
	}

	return scripts, nil
}

// Apply executa os scripts ainda não registrados, cada um na sua transação.
// Retorna as versões aplicadas nesta execução.
func Apply(ctx context.Context, conn *postgres.Connection) ([]string, error) {
	if _, err := conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationsTable+` (
		version    VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", migrationsTable, err)
	}

	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return nil, err
	}

	scripts, err := Scripts()
	if err != nil {
		return nil, err
	}

	executed := make([]string, 0)
	for _, script := range scripts {
		if applied[script.Version] {
			continue
		}

		start := time.Now()
		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, script.SQL); err != nil {
				return err
			}

			query, args, err := squirrel.
				Insert(migrationsTable).
				Columns("version").
				Values(script.Version).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, query, args...)
			return err
		})
		if err != nil {
			return executed, fmt.Errorf("failed to apply migration %s: %w", script.Version, err)
		}

		logrus.WithFields(logrus.Fields{
			"version":  script.Version,
			"duration": time.Since(start).String(),
		}).Info("Migração aplicada")
		executed = append(executed, script.Version)
	}

	return executed, nil
}

func appliedVersions(ctx context.Context, conn *postgres.Connection) (map[string]bool, error) {
	rows, err := conn.QueryContext(ctx, "SELECT version FROM "+migrationsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to list applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
