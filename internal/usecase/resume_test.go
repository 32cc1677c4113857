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

func loadResumeEditor(t *testing.T, store *fakeResumeStore, userID uuid.UUID) *ResumeEditor {
	t.Helper()
	validate, _ := model.NewValidator()
	e, err := LoadResumeEditor(context.Background(), store, validate, userID)
	require.NoError(t, err)
	return e
}

func seededResumeStore(userID uuid.UUID) *fakeResumeStore {
	return &fakeResumeStore{
		skills: []domain.Skill{
			{ID: uuid.New(), UserID: userID, Name: "React.js", Level: domain.SkillAdvanced},
			{ID: uuid.New(), UserID: userID, Name: "TypeScript", Level: domain.SkillIntermediate},
			{ID: uuid.New(), UserID: uuid.New(), Name: "Cobol", Level: domain.SkillAdvanced},
		},
	}
}

func TestLoadResumeEditor_EmptyStore(t *testing.T) {
	e := loadResumeEditor(t, &fakeResumeStore{}, uuid.New())
	r := e.Resume()
	assert.NotNil(t, r.Skills)
	assert.NotNil(t, r.Projects)
	assert.NotNil(t, r.Certifications)
}

func TestLoadResumeEditor_StoreFailure(t *testing.T) {
	validate, _ := model.NewValidator()
	_, err := LoadResumeEditor(context.Background(), &fakeResumeStore{fail: true}, validate, uuid.New())
	var ne *NotifyError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, "Failed to load resume data.", ne.Description)
}

func TestResumeEditor_AddThenRemoveSkillRestoresList(t *testing.T) {
	userID := uuid.New()
	store := seededResumeStore(userID)
	e := loadResumeEditor(t, store, userID)
	before := e.Resume().Skills
	require.Len(t, before, 2)

	s, err := e.AddSkill(context.Background(), NewSkill{Name: "  Go  "})
	require.NoError(t, err)
	assert.Equal(t, "Go", s.Name)
	assert.Equal(t, domain.SkillBeginner, s.Level)
	assert.Len(t, e.Resume().Skills, 3)

	require.NoError(t, e.RemoveSkill(context.Background(), s.ID))
	assert.Equal(t, before, e.Resume().Skills)
}

func TestResumeEditor_RemoveSkillKeepsOrder(t *testing.T) {
	userID := uuid.New()
	e := loadResumeEditor(t, seededResumeStore(userID), userID)
	_, err := e.AddSkill(context.Background(), NewSkill{Name: "Go", Level: domain.SkillAdvanced})
	require.NoError(t, err)

	first := e.Resume().Skills[0]
	require.NoError(t, e.RemoveSkill(context.Background(), first.ID))

	names := []string{}
	for _, s := range e.Resume().Skills {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"TypeScript", "Go"}, names)
}

func TestResumeEditor_AddSkillValidation(t *testing.T) {
	userID := uuid.New()
	store := seededResumeStore(userID)
	e := loadResumeEditor(t, store, userID)

	_, err := e.AddSkill(context.Background(), NewSkill{Name: "   "})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	_, err = e.AddSkill(context.Background(), NewSkill{Name: "typescript"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	var ne *NotifyError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, "Skill already added", ne.Title)

	_, err = e.AddSkill(context.Background(), NewSkill{Name: "Go", Level: "Guru"})
	require.True(t, errors.As(err, &verrs))

	assert.Len(t, e.Resume().Skills, 2)
}

func TestResumeEditor_UpdateSkillLevel(t *testing.T) {
	userID := uuid.New()
	store := seededResumeStore(userID)
	e := loadResumeEditor(t, store, userID)
	id := e.Resume().Skills[1].ID

	s, err := e.UpdateSkillLevel(context.Background(), id, SkillLevelUpdate{Level: domain.SkillAdvanced})
	require.NoError(t, err)
	assert.Equal(t, domain.SkillAdvanced, s.Level)
	assert.Equal(t, domain.SkillAdvanced, store.skills[1].Level)

	_, err = e.UpdateSkillLevel(context.Background(), uuid.New(), SkillLevelUpdate{Level: domain.SkillAdvanced})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResumeEditor_FailedWriteKeepsState(t *testing.T) {
	userID := uuid.New()
	store := seededResumeStore(userID)
	e := loadResumeEditor(t, store, userID)
	before := e.Resume()
	store.fail = true

	_, err := e.AddSkill(context.Background(), NewSkill{Name: "Go"})
	assert.ErrorIs(t, err, errStoreDown)
	assert.Error(t, e.RemoveSkill(context.Background(), before.Skills[0].ID))
	_, err = e.UpdateSkillLevel(context.Background(), before.Skills[0].ID, SkillLevelUpdate{Level: domain.SkillBeginner})
	assert.Error(t, err)
	_, err = e.AddProject(context.Background(), NewProject{Title: "T", Description: "D"})
	assert.Error(t, err)

	assert.Equal(t, before, e.Resume())
}

func TestResumeEditor_Projects(t *testing.T) {
	userID := uuid.New()
	store := &fakeResumeStore{}
	e := loadResumeEditor(t, store, userID)

	_, err := e.AddProject(context.Background(), NewProject{Title: "Task app", Description: "  "})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "description", verrs[0].Field())

	p, err := e.AddProject(context.Background(), NewProject{
		Title:        " Task Management App ",
		Description:  "Collaborative task management tool",
		Technologies: "React, Node.js , , Socket.io",
	})
	require.NoError(t, err)
	assert.Equal(t, "Task Management App", p.Title)
	assert.Equal(t, []string{"React", "Node.js", "Socket.io"}, p.Technologies)
	require.Len(t, store.projects, 1)

	require.NoError(t, e.RemoveProject(context.Background(), p.ID))
	assert.Empty(t, e.Resume().Projects)
	assert.ErrorIs(t, e.RemoveProject(context.Background(), p.ID), domain.ErrNotFound)
}

func TestResumeEditor_Certifications(t *testing.T) {
	userID := uuid.New()
	store := &fakeResumeStore{}
	e := loadResumeEditor(t, store, userID)

	_, err := e.AddCertification(context.Background(), NewCertification{Name: "CCNA", Issuer: "Cisco", Date: "2024-13"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	c, err := e.AddCertification(context.Background(), NewCertification{
		Name: "AWS Cloud Practitioner", Issuer: "Amazon", Date: "2024-03", URL: "https://aws.amazon.com/certification/",
	})
	require.NoError(t, err)
	assert.Len(t, e.Resume().Certifications, 1)

	require.NoError(t, e.RemoveCertification(context.Background(), c.ID))
	assert.Empty(t, e.Resume().Certifications)
	assert.Empty(t, store.certs)
}

func TestResumeEditor_CertificationURLMatchesDocument(t *testing.T) {
	userID := uuid.New()
	store := &fakeResumeStore{}
	e := loadResumeEditor(t, store, userID)

	_, err := e.AddCertification(context.Background(), NewCertification{
		Name: "AWS Cloud Practitioner", Issuer: "Amazon", Date: "2024-03", URL: `https://aws.amazon.com/cert\ccp`,
	})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "url", verrs[0].Field())
	assert.Empty(t, store.certs)

	_, err = e.AddCertification(context.Background(), NewCertification{
		Name: "AWS Cloud Practitioner", Issuer: "Amazon", Date: "2024-03", URL: "https://aws.amazon.com/certification/ccp",
	})
	require.NoError(t, err)

	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	_, err = r.Render("", BuildResume(domain.Profile{FirstName: "Ada"}, e.Resume(), ""))
	assert.NoError(t, err)
}

func TestSplitTechnologies(t *testing.T) {
	assert.Equal(t, []string{}, SplitTechnologies(""))
	assert.Equal(t, []string{"Go"}, SplitTechnologies(" Go ,"))
}
