package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-hub/internal/domain"
	"career-hub/internal/infrastructure/migration"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil, "x"))
	assert.ErrorIs(t, translate(pgx.ErrNoRows, "x"), domain.ErrNotFound)
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "23505"}, "x"), domain.ErrConflict)

	other := errors.New("boom")
	err := translate(other, "insert skill")
	assert.ErrorIs(t, err, other)
	assert.Contains(t, err.Error(), "insert skill")
}

func TestAffected(t *testing.T) {
	assert.ErrorIs(t, affected(pgconn.CommandTag("DELETE 0"), "x"), domain.ErrNotFound)
	assert.NoError(t, affected(pgconn.CommandTag("DELETE 1"), "x"))
}

func TestNilPoolIsUnavailable(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	_, err := NewProfilesRepo(nil).GetProfile(ctx, id)
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	rr := NewResumeRepo(nil)
	_, err = rr.ListSkills(ctx, id)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.ErrorIs(t, rr.DeleteProject(ctx, id, id), domain.ErrUnavailable)

	assert.ErrorIs(t, NewExportsRepo(nil).SaveExport(ctx, &domain.ExportJob{}), domain.ErrUnavailable)
}

// testPool connects to TEST_DATABASE_URL and applies the migrations.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, migration.RunMigrations(ctx, pool))
	return pool
}

func TestProfilesRepo_Postgres(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewProfilesRepo(pool)
	userID := uuid.New()

	_, err := repo.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p := &domain.Profile{UserID: userID, FirstName: "Ada", DateOfBirth: "1990-12-10", Skills: []string{"Go"}, UpdatedAt: time.Now().UTC()}
	require.NoError(t, repo.UpsertProfile(ctx, p))
	p.LastName = "Lovelace"
	require.NoError(t, repo.UpsertProfile(ctx, p))

	got, err := repo.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.FullName())
	assert.Equal(t, "1990-12-10", got.DateOfBirth)
	assert.Equal(t, []string{"Go"}, got.Skills)
}

func TestResumeRepo_Postgres(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewResumeRepo(pool)
	userID := uuid.New()

	s := &domain.Skill{ID: uuid.New(), UserID: userID, Name: "Go", Level: domain.SkillBeginner, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.InsertSkill(ctx, s))
	dup := &domain.Skill{ID: uuid.New(), UserID: userID, Name: "GO", Level: domain.SkillBeginner, CreatedAt: time.Now().UTC()}
	assert.ErrorIs(t, repo.InsertSkill(ctx, dup), domain.ErrConflict)

	require.NoError(t, repo.UpdateSkillLevel(ctx, userID, s.ID, domain.SkillAdvanced))
	assert.ErrorIs(t, repo.UpdateSkillLevel(ctx, uuid.New(), s.ID, domain.SkillAdvanced), domain.ErrNotFound)

	skills, err := repo.ListSkills(ctx, userID)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, domain.SkillAdvanced, skills[0].Level)

	c := &domain.Certification{ID: uuid.New(), UserID: userID, Name: "CCNA", Issuer: "Cisco", Date: "2024-01", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.InsertCertification(ctx, c))
	certs, err := repo.ListCertifications(ctx, userID)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Empty(t, certs[0].URL)

	require.NoError(t, repo.DeleteSkill(ctx, userID, s.ID))
	assert.ErrorIs(t, repo.DeleteSkill(ctx, userID, s.ID), domain.ErrNotFound)
}
