package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return errors.Wrapf(err, "migration %s", m.Name)
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

// Migrations returns the schema steps in the order they are applied. Every
// step is idempotent.
func Migrations() []Migration {
	return []Migration{
		{Name: "create_profiles", Up: execSQL(createProfiles)},
		{Name: "create_skills", Up: execSQL(createSkills)},
		{Name: "create_skills_user_name_index", Up: execSQL(createSkillsUserNameIndex)},
		{Name: "create_projects", Up: execSQL(createProjects)},
		{Name: "create_certifications", Up: execSQL(createCertifications)},
		{Name: "create_resume_exports", Up: execSQL(createResumeExports)},
	}
}

func execSQL(query string) func(ctx context.Context, pool *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		_, err := pool.Exec(ctx, query)
		return err
	}
}

const createProfiles = `
	CREATE TABLE IF NOT EXISTS profiles (
		user_id             UUID PRIMARY KEY,
		first_name          TEXT NOT NULL DEFAULT '',
		last_name           TEXT NOT NULL DEFAULT '',
		phone               TEXT NOT NULL DEFAULT '',
		date_of_birth       DATE,
		location            TEXT NOT NULL DEFAULT '',
		occupation          TEXT NOT NULL DEFAULT '',
		company             TEXT NOT NULL DEFAULT '',
		bio                 TEXT NOT NULL DEFAULT '',
		skills              TEXT[] NOT NULL DEFAULT '{}',
		experience_level    TEXT NOT NULL DEFAULT '',
		preferred_work_type TEXT NOT NULL DEFAULT '',
		course              TEXT NOT NULL DEFAULT '',
		academic_year       TEXT NOT NULL DEFAULT '',
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

const createSkills = `
	CREATE TABLE IF NOT EXISTS skills (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL,
		name       TEXT NOT NULL,
		level      TEXT NOT NULL DEFAULT 'Beginner'
		           CHECK (level IN ('Beginner', 'Intermediate', 'Advanced')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

const createSkillsUserNameIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS skills_user_lower_name_idx
	ON skills (user_id, lower(name));
`

const createProjects = `
	CREATE TABLE IF NOT EXISTS projects (
		id           UUID PRIMARY KEY,
		user_id      UUID NOT NULL,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL,
		technologies TEXT[] NOT NULL DEFAULT '{}',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS projects_user_idx ON projects (user_id, created_at);
`

const createCertifications = `
	CREATE TABLE IF NOT EXISTS certifications (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL,
		name       TEXT NOT NULL,
		issuer     TEXT NOT NULL DEFAULT '',
		issued_on  TEXT NOT NULL DEFAULT '',
		url        TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS certifications_user_idx ON certifications (user_id, created_at);
`

const createResumeExports = `
	CREATE TABLE IF NOT EXISTS resume_exports (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL,
		template   TEXT NOT NULL,
		status     TEXT NOT NULL,
		file_path  TEXT,
		error      TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`
