package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationFiles nombres de los scripts embebidos en orden de aplicación.
func MigrationFiles() ([]string, error) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Migrate aplica los scripts pendientes, cada uno en su propia transacción,
// y los registra en schema_migrations. Devuelve los que aplicó.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return nil, fmt.Errorf("crear schema_migrations: %w", err)
	}

	applied, err := appliedVersions(ctx, pool)
	if err != nil {
		return nil, err
	}
	names, err := MigrationFiles()
	if err != nil {
		return nil, err
	}

	var done []string
	for _, name := range names {
		if applied[name] {
			continue
		}
		script, err := migrationsFS.ReadFile(name)
		if err != nil {
			return done, err
		}
		if err := applyOne(ctx, pool, name, string(script)); err != nil {
			return done, err
		}
		log.Info().Str("migracion", name).Msg("migración aplicada")
		done = append(done, name)
	}
	return done, nil
}

func appliedVersions(ctx context.Context, pool *pgxpool.Pool) (map[string]bool, error) {
	rows, err := pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("leer schema_migrations: %w", err)
	}
	defer rows.Close()

	out := map[string]bool{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out[v] = true
	}
	return out, rows.Err()
}

func applyOne(ctx context.Context, pool *pgxpool.Pool, name, script string) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Sin argumentos pgx usa el protocolo simple y acepta varias sentencias.
	if _, err := tx.Exec(ctx, script); err != nil {
		return fmt.Errorf("aplicar %s: %w", name, err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
		return fmt.Errorf("registrar %s: %w", name, err)
	}
	return tx.Commit(ctx)
}
