package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"career-hub/internal/domain"
)

type ResumeStore interface {
	ListSkills(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error)
	InsertSkill(ctx context.Context, s *domain.Skill) error
	UpdateSkillLevel(ctx context.Context, userID, id uuid.UUID, level domain.SkillLevel) error
	DeleteSkill(ctx context.Context, userID, id uuid.UUID) error

	ListProjects(ctx context.Context, userID uuid.UUID) ([]domain.Project, error)
	InsertProject(ctx context.Context, p *domain.Project) error
	DeleteProject(ctx context.Context, userID, id uuid.UUID) error

	ListCertifications(ctx context.Context, userID uuid.UUID) ([]domain.Certification, error)
	InsertCertification(ctx context.Context, c *domain.Certification) error
	DeleteCertification(ctx context.Context, userID, id uuid.UUID) error
}

type NewSkill struct {
	Name  string            `json:"name" validate:"notblank,max=60"`
	Level domain.SkillLevel `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
}

type SkillLevelUpdate struct {
	Level domain.SkillLevel `json:"level" validate:"required,oneof=Beginner Intermediate Advanced"`
}

// NewProject is a project as entered in the form; Technologies is a
// comma-separated list.
type NewProject struct {
	Title        string `json:"title" validate:"notblank,max=120"`
	Description  string `json:"description" validate:"notblank,max=1000"`
	Technologies string `json:"technologies" validate:"max=500"`
}

type NewCertification struct {
	Name   string `json:"name" validate:"notblank,max=160"`
	Issuer string `json:"issuer" validate:"notblank,max=160"`
	Date   string `json:"date" validate:"required,datetime=2006-01"`
	URL    string `json:"url" validate:"omitempty,url,document_url"`
}

// ResumeEditor edits the resume sections of one user. Every mutation is
// written to the store first; the held resume changes only on success.
type ResumeEditor struct {
	store    ResumeStore
	validate *validator.Validate
	userID   uuid.UUID
	resume   domain.Resume
}

func LoadResumeEditor(ctx context.Context, store ResumeStore, validate *validator.Validate, userID uuid.UUID) (*ResumeEditor, error) {
	const loadFailed = "Failed to load resume data."

	skills, err := store.ListSkills(ctx, userID)
	if err != nil {
		return nil, notify(errors.Wrap(err, "list skills"), "Error", loadFailed)
	}
	projects, err := store.ListProjects(ctx, userID)
	if err != nil {
		return nil, notify(errors.Wrap(err, "list projects"), "Error", loadFailed)
	}
	certs, err := store.ListCertifications(ctx, userID)
	if err != nil {
		return nil, notify(errors.Wrap(err, "list certifications"), "Error", loadFailed)
	}

	if skills == nil {
		skills = []domain.Skill{}
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	if certs == nil {
		certs = []domain.Certification{}
	}
	return &ResumeEditor{
		store:    store,
		validate: validate,
		userID:   userID,
		resume:   domain.Resume{Skills: skills, Projects: projects, Certifications: certs},
	}, nil
}

// Resume returns a copy of the held resume.
func (e *ResumeEditor) Resume() domain.Resume {
	return domain.Resume{
		Skills:         append([]domain.Skill{}, e.resume.Skills...),
		Projects:       append([]domain.Project{}, e.resume.Projects...),
		Certifications: append([]domain.Certification{}, e.resume.Certifications...),
	}
}

// AddSkill stores a new skill. The level defaults to Beginner and a name
// already on the resume is rejected with domain.ErrConflict.
func (e *ResumeEditor) AddSkill(ctx context.Context, in NewSkill) (domain.Skill, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := e.validate.Struct(in); err != nil {
		return domain.Skill{}, err
	}
	for _, s := range e.resume.Skills {
		if strings.EqualFold(s.Name, in.Name) {
			return domain.Skill{}, notify(errors.Wrapf(domain.ErrConflict, "skill %q", in.Name),
				"Skill already added", in.Name+" is already on your resume.")
		}
	}
	if in.Level == "" {
		in.Level = domain.SkillBeginner
	}

	s := domain.Skill{
		ID:        uuid.New(),
		UserID:    e.userID,
		Name:      in.Name,
		Level:     in.Level,
		CreatedAt: time.Now().UTC(),
	}
	if err := e.store.InsertSkill(ctx, &s); err != nil {
		return domain.Skill{}, notify(errors.Wrap(err, "insert skill"), "Error", "Failed to add skill.")
	}
	e.resume.Skills = append(e.resume.Skills, s)
	return s, nil
}

func (e *ResumeEditor) UpdateSkillLevel(ctx context.Context, id uuid.UUID, in SkillLevelUpdate) (domain.Skill, error) {
	if err := e.validate.Struct(in); err != nil {
		return domain.Skill{}, err
	}
	i := e.skillIndex(id)
	if i < 0 {
		return domain.Skill{}, errors.Wrapf(domain.ErrNotFound, "skill %s", id)
	}
	if err := e.store.UpdateSkillLevel(ctx, e.userID, id, in.Level); err != nil {
		return domain.Skill{}, notify(errors.Wrap(err, "update skill"), "Error", "Failed to update skill.")
	}
	e.resume.Skills[i].Level = in.Level
	return e.resume.Skills[i], nil
}

func (e *ResumeEditor) RemoveSkill(ctx context.Context, id uuid.UUID) error {
	i := e.skillIndex(id)
	if i < 0 {
		return errors.Wrapf(domain.ErrNotFound, "skill %s", id)
	}
	if err := e.store.DeleteSkill(ctx, e.userID, id); err != nil {
		return notify(errors.Wrap(err, "delete skill"), "Error", "Failed to remove skill.")
	}
	e.resume.Skills = append(e.resume.Skills[:i:i], e.resume.Skills[i+1:]...)
	return nil
}

func (e *ResumeEditor) AddProject(ctx context.Context, in NewProject) (domain.Project, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := e.validate.Struct(in); err != nil {
		return domain.Project{}, err
	}

	p := domain.Project{
		ID:           uuid.New(),
		UserID:       e.userID,
		Title:        in.Title,
		Description:  in.Description,
		Technologies: SplitTechnologies(in.Technologies),
		CreatedAt:    time.Now().UTC(),
	}
	if err := e.store.InsertProject(ctx, &p); err != nil {
		return domain.Project{}, notify(errors.Wrap(err, "insert project"), "Error", "Failed to add project.")
	}
	e.resume.Projects = append(e.resume.Projects, p)
	return p, nil
}

func (e *ResumeEditor) RemoveProject(ctx context.Context, id uuid.UUID) error {
	i := -1
	for j, p := range e.resume.Projects {
		if p.ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return errors.Wrapf(domain.ErrNotFound, "project %s", id)
	}
	if err := e.store.DeleteProject(ctx, e.userID, id); err != nil {
		return notify(errors.Wrap(err, "delete project"), "Error", "Failed to remove project.")
	}
	e.resume.Projects = append(e.resume.Projects[:i:i], e.resume.Projects[i+1:]...)
	return nil
}

func (e *ResumeEditor) AddCertification(ctx context.Context, in NewCertification) (domain.Certification, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Issuer = strings.TrimSpace(in.Issuer)
	in.URL = strings.TrimSpace(in.URL)
	if err := e.validate.Struct(in); err != nil {
		return domain.Certification{}, err
	}

	c := domain.Certification{
		ID:        uuid.New(),
		UserID:    e.userID,
		Name:      in.Name,
		Issuer:    in.Issuer,
		Date:      in.Date,
		URL:       in.URL,
		CreatedAt: time.Now().UTC(),
	}
	if err := e.store.InsertCertification(ctx, &c); err != nil {
		return domain.Certification{}, notify(errors.Wrap(err, "insert certification"), "Error", "Failed to add certification.")
	}
	e.resume.Certifications = append(e.resume.Certifications, c)
	return c, nil
}

func (e *ResumeEditor) RemoveCertification(ctx context.Context, id uuid.UUID) error {
	i := -1
	for j, c := range e.resume.Certifications {
		if c.ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return errors.Wrapf(domain.ErrNotFound, "certification %s", id)
	}
	if err := e.store.DeleteCertification(ctx, e.userID, id); err != nil {
		return notify(errors.Wrap(err, "delete certification"), "Error", "Failed to remove certification.")
	}
	e.resume.Certifications = append(e.resume.Certifications[:i:i], e.resume.Certifications[i+1:]...)
	return nil
}

func (e *ResumeEditor) skillIndex(id uuid.UUID) int {
	for i, s := range e.resume.Skills {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// SplitTechnologies splits a comma-separated list, trimming entries and
// dropping empty ones.
func SplitTechnologies(csv string) []string {
	out := []string{}
	for _, t := range strings.Split(csv, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
