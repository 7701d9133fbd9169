package repository

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
)

// ExportsRepo persists export records. A nil pool makes every call a no-op
// so the server runs fine without a database.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) Save(ctx context.Context, rec *domain.ExportRecord) error {
	if r.pool == nil {
		return nil
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO exports (id, session_id, template, filename, file_size, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET template = EXCLUDED.template, filename = EXCLUDED.filename, file_size = EXCLUDED.file_size`,
		rec.ID, rec.SessionID, rec.Template, rec.Filename, rec.FileSize, rec.CreatedAt)
	return err
}
