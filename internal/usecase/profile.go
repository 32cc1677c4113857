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

type ProfileStore interface {
	// GetProfile returns domain.ErrNotFound when the user has no profile row.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpsertProfile(ctx context.Context, p *domain.Profile) error
}

// ProfileEditor holds the profile of one user for the duration of a request.
// The held profile only changes once the store has accepted the write.
type ProfileEditor struct {
	store    ProfileStore
	validate *validator.Validate
	profile  domain.Profile
}

// LoadProfileEditor reads the user's profile. A user without a stored row
// starts from an empty profile.
func LoadProfileEditor(ctx context.Context, store ProfileStore, validate *validator.Validate, userID uuid.UUID) (*ProfileEditor, error) {
	e := &ProfileEditor{store: store, validate: validate}

	p, err := store.GetProfile(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		e.profile = domain.Profile{UserID: userID, Skills: []string{}}
	case err != nil:
		return nil, notify(errors.Wrap(err, "load profile"), "Error", "Failed to load profile data.")
	default:
		e.profile = *p
		e.profile.UserID = userID
		if e.profile.Skills == nil {
			e.profile.Skills = []string{}
		}
	}
	return e, nil
}

// Profile returns a copy of the current profile.
func (e *ProfileEditor) Profile() domain.Profile {
	p := e.profile
	p.Skills = append([]string{}, e.profile.Skills...)
	return p
}

// Save validates and upserts p for the editor's user.
func (e *ProfileEditor) Save(ctx context.Context, p domain.Profile) error {
	p.UserID = e.profile.UserID
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Skills = normalizeSkills(p.Skills)

	if err := e.validate.Struct(p); err != nil {
		return err
	}
	return e.commit(ctx, p, "Failed to update profile.")
}

// AddSkill appends name to the profile skills. Blank names and names already
// present are ignored. The whole skill list is written back, so concurrent
// edits by the same user are last-writer-wins.
func (e *ProfileEditor) AddSkill(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || indexFold(e.profile.Skills, name) >= 0 {
		return nil
	}
	next := e.Profile()
	next.Skills = append(next.Skills, name)
	return e.commit(ctx, next, "Failed to add skill.")
}

func (e *ProfileEditor) RemoveSkill(ctx context.Context, name string) error {
	i := indexFold(e.profile.Skills, strings.TrimSpace(name))
	if i < 0 {
		return nil
	}
	next := e.Profile()
	next.Skills = append(next.Skills[:i], next.Skills[i+1:]...)
	return e.commit(ctx, next, "Failed to remove skill.")
}

func (e *ProfileEditor) commit(ctx context.Context, next domain.Profile, description string) error {
	next.UpdatedAt = time.Now().UTC()
	if err := e.store.UpsertProfile(ctx, &next); err != nil {
		return notify(errors.Wrap(err, "upsert profile"), "Error", description)
	}
	e.profile = next
	return nil
}

// normalizeSkills trims names and drops blanks and case-insensitive duplicates.
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" || indexFold(out, s) >= 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

func indexFold(list []string, s string) int {
	for i, v := range list {
		if strings.EqualFold(v, s) {
			return i
		}
	}
	return -1
}
