package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"career-hub/internal/domain"
)

var errStoreDown = errors.New("connection refused")

type fakeProfileStore struct {
	profiles map[uuid.UUID]domain.Profile
	failGet  bool
	failPut  bool
	upserts  int
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[uuid.UUID]domain.Profile{}}
}

func (f *fakeProfileStore) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if f.failGet {
		return nil, errStoreDown
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Skills = append([]string{}, p.Skills...)
	return &p, nil
}

func (f *fakeProfileStore) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	if f.failPut {
		return errStoreDown
	}
	f.upserts++
	cp := *p
	cp.Skills = append([]string{}, p.Skills...)
	f.profiles[p.UserID] = cp
	return nil
}

type fakeResumeStore struct {
	skills   []domain.Skill
	projects []domain.Project
	certs    []domain.Certification
	fail     bool
}

func (f *fakeResumeStore) err() error {
	if f.fail {
		return errStoreDown
	}
	return nil
}

func (f *fakeResumeStore) ListSkills(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	var out []domain.Skill
	for _, s := range f.skills {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeResumeStore) InsertSkill(ctx context.Context, s *domain.Skill) error {
	if err := f.err(); err != nil {
		return err
	}
	for _, existing := range f.skills {
		if existing.UserID == s.UserID && strings.EqualFold(existing.Name, s.Name) {
			return domain.ErrConflict
		}
	}
	f.skills = append(f.skills, *s)
	return nil
}

func (f *fakeResumeStore) UpdateSkillLevel(ctx context.Context, userID, id uuid.UUID, level domain.SkillLevel) error {
	if err := f.err(); err != nil {
		return err
	}
	for i := range f.skills {
		if f.skills[i].UserID == userID && f.skills[i].ID == id {
			f.skills[i].Level = level
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeResumeStore) DeleteSkill(ctx context.Context, userID, id uuid.UUID) error {
	if err := f.err(); err != nil {
		return err
	}
	for i, s := range f.skills {
		if s.UserID == userID && s.ID == id {
			f.skills = append(f.skills[:i], f.skills[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeResumeStore) ListProjects(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	var out []domain.Project
	for _, p := range f.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeResumeStore) InsertProject(ctx context.Context, p *domain.Project) error {
	if err := f.err(); err != nil {
		return err
	}
	f.projects = append(f.projects, *p)
	return nil
}

func (f *fakeResumeStore) DeleteProject(ctx context.Context, userID, id uuid.UUID) error {
	if err := f.err(); err != nil {
		return err
	}
	for i, p := range f.projects {
		if p.UserID == userID && p.ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeResumeStore) ListCertifications(ctx context.Context, userID uuid.UUID) ([]domain.Certification, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	var out []domain.Certification
	for _, c := range f.certs {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeResumeStore) InsertCertification(ctx context.Context, c *domain.Certification) error {
	if err := f.err(); err != nil {
		return err
	}
	f.certs = append(f.certs, *c)
	return nil
}

func (f *fakeResumeStore) DeleteCertification(ctx context.Context, userID, id uuid.UUID) error {
	if err := f.err(); err != nil {
		return err
	}
	for i, c := range f.certs {
		if c.UserID == userID && c.ID == id {
			f.certs = append(f.certs[:i], f.certs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeExportStore struct {
	mu       sync.Mutex
	jobs     map[uuid.UUID]domain.ExportJob
	statuses []domain.ExportStatus
	fail     bool
}

func newFakeExportStore() *fakeExportStore {
	return &fakeExportStore{jobs: map[uuid.UUID]domain.ExportJob{}}
}

func (f *fakeExportStore) SaveExport(ctx context.Context, j *domain.ExportJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errStoreDown
	}
	f.jobs[j.ID] = *j
	f.statuses = append(f.statuses, j.Status)
	return nil
}

func (f *fakeExportStore) GetExport(ctx context.Context, userID, id uuid.UUID) (*domain.ExportJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &j, nil
}
