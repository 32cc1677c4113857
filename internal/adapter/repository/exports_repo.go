package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"career-hub/internal/domain"
)

type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) SaveExport(ctx context.Context, j *domain.ExportJob) error {
	if r.pool == nil {
		return domain.ErrUnavailable
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO resume_exports (id, user_id, template, status, file_path, error, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NULLIF($5, ''),NULLIF($6, ''),$7,$8)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, file_path = EXCLUDED.file_path, error = EXCLUDED.error, updated_at = EXCLUDED.updated_at`,
		j.ID, j.UserID, j.Template, string(j.Status), j.FilePath, j.Error, j.CreatedAt, j.UpdatedAt)
	return translate(err, "upsert resume export")
}

func (r *ExportsRepo) GetExport(ctx context.Context, userID, id uuid.UUID) (*domain.ExportJob, error) {
	if r.pool == nil {
		return nil, domain.ErrUnavailable
	}

	var j domain.ExportJob
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, template, status, COALESCE(file_path, ''), COALESCE(error, ''), created_at, updated_at
		FROM resume_exports WHERE user_id = $1 AND id = $2`, userID, id).
		Scan(&j.ID, &j.UserID, &j.Template, &j.Status, &j.FilePath, &j.Error, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, translate(err, "select resume export")
	}
	return &j, nil
}
