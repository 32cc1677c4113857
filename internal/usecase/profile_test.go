package usecase

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-hub/internal/domain"
	"career-hub/internal/model"
)

func TestLoadProfileEditor_MissingRowIsEmptyProfile(t *testing.T) {
	validate, _ := model.NewValidator()
	userID := uuid.New()

	e, err := LoadProfileEditor(context.Background(), newFakeProfileStore(), validate, userID)
	require.NoError(t, err)

	p := e.Profile()
	assert.Equal(t, userID, p.UserID)
	assert.Empty(t, p.FirstName)
	assert.NotNil(t, p.Skills)
}

func TestLoadProfileEditor_StoreFailure(t *testing.T) {
	validate, _ := model.NewValidator()
	store := newFakeProfileStore()
	store.failGet = true

	_, err := LoadProfileEditor(context.Background(), store, validate, uuid.New())
	require.Error(t, err)

	var ne *NotifyError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, "Failed to load profile data.", ne.Description)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestProfileEditor_Save(t *testing.T) {
	validate, _ := model.NewValidator()
	store := newFakeProfileStore()
	userID := uuid.New()
	e, err := LoadProfileEditor(context.Background(), store, validate, userID)
	require.NoError(t, err)

	err = e.Save(context.Background(), domain.Profile{
		UserID:       uuid.New(),
		FirstName:    "  Ada ",
		LastName:     "Lovelace",
		Course:       "Computer Science",
		AcademicYear: "Final Year",
		Skills:       []string{"Go", " go ", "", "SQL"},
	})
	require.NoError(t, err)

	p := e.Profile()
	assert.Equal(t, userID, p.UserID, "user id is owned by the editor")
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills)
	assert.False(t, p.UpdatedAt.IsZero())
	assert.Equal(t, "Ada Lovelace", store.profiles[userID].FullName())
}

func TestProfileEditor_SaveRejectsInvalid(t *testing.T) {
	validate, _ := model.NewValidator()
	store := newFakeProfileStore()
	e, err := LoadProfileEditor(context.Background(), store, validate, uuid.New())
	require.NoError(t, err)

	err = e.Save(context.Background(), domain.Profile{Course: "Astrology", ExperienceLevel: "guru"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
	assert.Zero(t, store.upserts)
}

func TestProfileEditor_AddThenRemoveSkillRestoresList(t *testing.T) {
	validate, _ := model.NewValidator()
	store := newFakeProfileStore()
	userID := uuid.New()
	store.profiles[userID] = domain.Profile{UserID: userID, Skills: []string{"React", "Python"}}

	e, err := LoadProfileEditor(context.Background(), store, validate, userID)
	require.NoError(t, err)
	before := e.Profile().Skills

	require.NoError(t, e.AddSkill(context.Background(), "  Rust "))
	assert.Equal(t, []string{"React", "Python", "Rust"}, e.Profile().Skills)

	require.NoError(t, e.RemoveSkill(context.Background(), "Rust"))
	assert.Equal(t, before, e.Profile().Skills)
	assert.Equal(t, before, store.profiles[userID].Skills)
}

func TestProfileEditor_SkillWritesReplaceWholeList(t *testing.T) {
	validate, _ := model.NewValidator()
	store := newFakeProfileStore()
	userID := uuid.New()
	store.profiles[userID] = domain.Profile{UserID: userID, Skills: []string{"React"}}

	first, err := LoadProfileEditor(context.Background(), store, validate, userID)
	require.NoError(t, err)
	second, err := LoadProfileEditor(context.Background(), store, validate, userID)
	require.NoError(t, err)

	require.NoError(t, first.AddSkill(context.Background(), "Go"))
	require.NoError(t, second.AddSkill(context.Background(), "Rust"))

	// last writer wins
	assert.Equal(t, []string{"React", "Rust"}, store.profiles[userID].Skills)
}

func TestProfileEditor_AddSkillIgnoresBlankAndDuplicates(t *testing.T) {
	validate, _ := model.NewValidator()
	store := newFakeProfileStore()
	userID := uuid.New()
	store.profiles[userID] = domain.Profile{UserID: userID, Skills: []string{"React"}}

	e, err := LoadProfileEditor(context.Background(), store, validate, userID)
	require.NoError(t, err)

	require.NoError(t, e.AddSkill(context.Background(), "   "))
	require.NoError(t, e.AddSkill(context.Background(), "react"))
	require.NoError(t, e.RemoveSkill(context.Background(), "Haskell"))

	assert.Equal(t, []string{"React"}, e.Profile().Skills)
	assert.Zero(t, store.upserts)
}

func TestProfileEditor_FailedWriteKeepsState(t *testing.T) {
	validate, _ := model.NewValidator()
	store := newFakeProfileStore()
	userID := uuid.New()
	store.profiles[userID] = domain.Profile{UserID: userID, FirstName: "Ada", Skills: []string{"React"}}

	e, err := LoadProfileEditor(context.Background(), store, validate, userID)
	require.NoError(t, err)
	store.failPut = true

	err = e.AddSkill(context.Background(), "Go")
	require.Error(t, err)
	var ne *NotifyError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, "Failed to add skill.", ne.Description)

	err = e.Save(context.Background(), domain.Profile{FirstName: "Grace"})
	require.Error(t, err)

	p := e.Profile()
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, []string{"React"}, p.Skills)
}
