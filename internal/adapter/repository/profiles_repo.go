package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"career-hub/internal/domain"
)

type ProfilesRepo struct {
	pool *pgxpool.Pool
}

func NewProfilesRepo(pool *pgxpool.Pool) *ProfilesRepo {
	return &ProfilesRepo{pool: pool}
}

func (r *ProfilesRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if r.pool == nil {
		return nil, domain.ErrUnavailable
	}

	var p domain.Profile
	err := r.pool.QueryRow(ctx, `SELECT user_id, first_name, last_name, phone,
			COALESCE(to_char(date_of_birth, 'YYYY-MM-DD'), ''), location, occupation, company, bio,
			skills, experience_level, preferred_work_type, course, academic_year, updated_at
		FROM profiles WHERE user_id = $1`, userID).
		Scan(&p.UserID, &p.FirstName, &p.LastName, &p.Phone,
			&p.DateOfBirth, &p.Location, &p.Occupation, &p.Company, &p.Bio,
			&p.Skills, &p.ExperienceLevel, &p.PreferredWorkType, &p.Course, &p.AcademicYear, &p.UpdatedAt)
	if err != nil {
		return nil, translate(err, "select profile")
	}
	return &p, nil
}

func (r *ProfilesRepo) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	if r.pool == nil {
		return domain.ErrUnavailable
	}

	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO profiles (user_id, first_name, last_name, phone, date_of_birth,
			location, occupation, company, bio, skills, experience_level, preferred_work_type, course, academic_year, updated_at)
		VALUES ($1,$2,$3,$4,NULLIF($5, '')::date,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (user_id) DO UPDATE SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone, date_of_birth = EXCLUDED.date_of_birth, location = EXCLUDED.location,
			occupation = EXCLUDED.occupation, company = EXCLUDED.company, bio = EXCLUDED.bio, skills = EXCLUDED.skills,
			experience_level = EXCLUDED.experience_level, preferred_work_type = EXCLUDED.preferred_work_type,
			course = EXCLUDED.course, academic_year = EXCLUDED.academic_year, updated_at = EXCLUDED.updated_at`,
		p.UserID, p.FirstName, p.LastName, p.Phone, p.DateOfBirth,
		p.Location, p.Occupation, p.Company, p.Bio, skills, p.ExperienceLevel, p.PreferredWorkType, p.Course, p.AcademicYear, p.UpdatedAt)
	return translate(err, "upsert profile")
}
