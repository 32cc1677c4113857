package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"career-hub/internal/domain"
)

// ResumeRepo stores skills, projects and certifications. Every statement is
// scoped to the owning user.
type ResumeRepo struct {
	pool *pgxpool.Pool
}

func NewResumeRepo(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

func (r *ResumeRepo) ListSkills(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	if r.pool == nil {
		return nil, domain.ErrUnavailable
	}
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, name, level, created_at
		FROM skills WHERE user_id = $1 ORDER BY created_at, name`, userID)
	if err != nil {
		return nil, translate(err, "select skills")
	}
	defer rows.Close()

	out := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Level, &s.CreatedAt); err != nil {
			return nil, translate(err, "scan skill")
		}
		out = append(out, s)
	}
	return out, translate(rows.Err(), "select skills")
}

func (r *ResumeRepo) InsertSkill(ctx context.Context, s *domain.Skill) error {
	if r.pool == nil {
		return domain.ErrUnavailable
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO skills (id, user_id, name, level, created_at) VALUES ($1,$2,$3,$4,$5)`,
		s.ID, s.UserID, s.Name, string(s.Level), s.CreatedAt)
	return translate(err, "insert skill")
}

func (r *ResumeRepo) UpdateSkillLevel(ctx context.Context, userID, id uuid.UUID, level domain.SkillLevel) error {
	if r.pool == nil {
		return domain.ErrUnavailable
	}
	tag, err := r.pool.Exec(ctx, `UPDATE skills SET level = $3 WHERE user_id = $1 AND id = $2`, userID, id, string(level))
	if err != nil {
		return translate(err, "update skill")
	}
	return affected(tag, "update skill")
}

func (r *ResumeRepo) DeleteSkill(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, "skills", userID, id)
}

func (r *ResumeRepo) ListProjects(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	if r.pool == nil {
		return nil, domain.ErrUnavailable
	}
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, title, description, technologies, created_at
		FROM projects WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, translate(err, "select projects")
	}
	defer rows.Close()

	out := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Technologies, &p.CreatedAt); err != nil {
			return nil, translate(err, "scan project")
		}
		out = append(out, p)
	}
	return out, translate(rows.Err(), "select projects")
}

func (r *ResumeRepo) InsertProject(ctx context.Context, p *domain.Project) error {
	if r.pool == nil {
		return domain.ErrUnavailable
	}
	techs := p.Technologies
	if techs == nil {
		techs = []string{}
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO projects (id, user_id, title, description, technologies, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`, p.ID, p.UserID, p.Title, p.Description, techs, p.CreatedAt)
	return translate(err, "insert project")
}

func (r *ResumeRepo) DeleteProject(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, "projects", userID, id)
}

func (r *ResumeRepo) ListCertifications(ctx context.Context, userID uuid.UUID) ([]domain.Certification, error) {
	if r.pool == nil {
		return nil, domain.ErrUnavailable
	}
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, name, issuer, issued_on, COALESCE(url, ''), created_at
		FROM certifications WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, translate(err, "select certifications")
	}
	defer rows.Close()

	out := []domain.Certification{}
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Issuer, &c.Date, &c.URL, &c.CreatedAt); err != nil {
			return nil, translate(err, "scan certification")
		}
		out = append(out, c)
	}
	return out, translate(rows.Err(), "select certifications")
}

func (r *ResumeRepo) InsertCertification(ctx context.Context, c *domain.Certification) error {
	if r.pool == nil {
		return domain.ErrUnavailable
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO certifications (id, user_id, name, issuer, issued_on, url, created_at)
		VALUES ($1,$2,$3,$4,$5,NULLIF($6, ''),$7)`, c.ID, c.UserID, c.Name, c.Issuer, c.Date, c.URL, c.CreatedAt)
	return translate(err, "insert certification")
}

func (r *ResumeRepo) DeleteCertification(ctx context.Context, userID, id uuid.UUID) error {
	return r.deleteOwned(ctx, "certifications", userID, id)
}

// deleteOwned removes a row of table owned by userID. table is always one of
// the constants above, never user input.
func (r *ResumeRepo) deleteOwned(ctx context.Context, table string, userID, id uuid.UUID) error {
	if r.pool == nil {
		return domain.ErrUnavailable
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM `+table+` WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return translate(err, "delete from "+table)
	}
	return affected(tag, "delete from "+table)
}
