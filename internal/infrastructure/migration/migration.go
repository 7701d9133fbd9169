package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_exports_table",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createExportsTable(ctx, pool)
			},
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// createExportsTable creates the exports table if it doesn't exist
func createExportsTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS exports (
			id UUID PRIMARY KEY,
			session_id UUID NOT NULL,
			template TEXT NOT NULL,
			filename TEXT NOT NULL,
			file_size INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - the table may already exist
		slog.Warn("Error creating exports table (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully ensured exports table")
	return nil
}
