package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the account profile of a signed-in user. There is at most one
// row per user; Skills holds unique names.
type Profile struct {
	UserID            uuid.UUID `json:"user_id"`
	FirstName         string    `json:"first_name" validate:"max=80"`
	LastName          string    `json:"last_name" validate:"max=80"`
	Phone             string    `json:"phone" validate:"max=40"`
	DateOfBirth       string    `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Location          string    `json:"location" validate:"max=120"`
	Occupation        string    `json:"occupation" validate:"max=120"`
	Company           string    `json:"company" validate:"max=120"`
	Bio               string    `json:"bio" validate:"max=2000"`
	Skills            []string  `json:"skills" validate:"dive,notblank"`
	ExperienceLevel   string    `json:"experience_level" validate:"omitempty,oneof=entry junior mid senior lead executive"`
	PreferredWorkType string    `json:"preferred_work_type" validate:"omitempty,oneof=remote hybrid onsite freelance"`
	Course            string    `json:"course" validate:"omitempty,course"`
	AcademicYear      string    `json:"academic_year" validate:"omitempty,academic_year"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// FullName joins first and last name, skipping blanks.
func (p Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

var (
	CourseOptions = []string{
		"Computer Science",
		"Information Technology",
		"Software Engineering",
		"Data Science",
		"Cybersecurity",
		"Business Administration",
		"Electrical Engineering",
		"Mechanical Engineering",
		"Civil Engineering",
		"Mathematics",
	}

	AcademicYearOptions = []string{
		"First Year",
		"Second Year",
		"Third Year",
		"Final Year",
		"Graduate",
	}
)
