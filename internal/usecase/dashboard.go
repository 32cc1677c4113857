package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"career-hub/internal/domain"
)

// Year is the academic year selected on the dashboard.
type Year string

const (
	YearFirst  Year = "first"
	YearSecond Year = "second"
	YearThird  Year = "third"
	YearFinal  Year = "final"
)

// ParseYear accepts the four year keys; the empty string means final year.
func ParseYear(s string) (Year, error) {
	switch y := Year(strings.ToLower(strings.TrimSpace(s))); y {
	case "":
		return YearFinal, nil
	case YearFirst, YearSecond, YearThird, YearFinal:
		return y, nil
	}
	return "", errors.Wrapf(domain.ErrInvalid, "unknown year %q", s)
}

type Stat struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

type DashboardView struct {
	Year            Year                 `json:"year"`
	Title           string               `json:"title"`
	Subtitle        string               `json:"subtitle"`
	Description     string               `json:"description"`
	Opportunities   []domain.Opportunity `json:"opportunities"`
	Certifications  int                  `json:"certifications"`
	Skills          int                  `json:"skills"`
	ProfileStrength int                  `json:"profile_strength"`
	Stats           []Stat               `json:"stats"`
}

type Dashboard struct {
	profiles      ProfileStore
	resumes       ResumeStore
	opportunities []domain.Opportunity
}

func NewDashboard(profiles ProfileStore, resumes ResumeStore) *Dashboard {
	return &Dashboard{profiles: profiles, resumes: resumes, opportunities: sampleOpportunities}
}

func (d *Dashboard) View(ctx context.Context, userID uuid.UUID, year Year) (*DashboardView, error) {
	v := yearContent(year)
	for _, op := range d.opportunities {
		final := op.Type == domain.OpportunityJob || op.Type == domain.OpportunityInternship
		if final == (year == YearFinal) {
			v.Opportunities = append(v.Opportunities, op)
		}
	}

	certs, err := d.resumes.ListCertifications(ctx, userID)
	if err != nil {
		return nil, notify(errors.Wrap(err, "list certifications"), "Error", "Failed to load dashboard.")
	}
	skills, err := d.resumes.ListSkills(ctx, userID)
	if err != nil {
		return nil, notify(errors.Wrap(err, "list skills"), "Error", "Failed to load dashboard.")
	}
	profile, err := d.profiles.GetProfile(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		profile = &domain.Profile{UserID: userID}
	case err != nil:
		return nil, notify(errors.Wrap(err, "get profile"), "Error", "Failed to load dashboard.")
	}

	v.Certifications = len(certs)
	v.Skills = len(skills)
	v.ProfileStrength = ProfileStrength(*profile)
	v.Stats = []Stat{
		{Title: "Certifications Completed", Value: strconv.Itoa(v.Certifications)},
		{Title: "Skills Listed", Value: strconv.Itoa(v.Skills)},
		{Title: "Profile Strength", Value: strconv.Itoa(v.ProfileStrength) + "%"},
	}
	return &v, nil
}

func yearContent(year Year) DashboardView {
	if year == YearFinal {
		return DashboardView{
			Year:          year,
			Title:         "Final Year Focus",
			Subtitle:      "Time to land your dream job! 🎯",
			Description:   "AI-matched opportunities based on your profile",
			Opportunities: []domain.Opportunity{},
		}
	}
	return DashboardView{
		Year:          year,
		Title:         "Learning & Building Phase",
		Subtitle:      "Focus on skills and certifications 📚",
		Description:   "Build a strong foundation for your career",
		Opportunities: []domain.Opportunity{},
	}
}

// ProfileStrength is the percentage of profile fields that are filled in.
func ProfileStrength(p domain.Profile) int {
	fields := []string{
		p.FirstName, p.LastName, p.Phone, p.DateOfBirth, p.Location, p.Occupation,
		p.Company, p.Bio, p.ExperienceLevel, p.PreferredWorkType, p.Course, p.AcademicYear,
	}
	filled := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			filled++
		}
	}
	if len(p.Skills) > 0 {
		filled++
	}
	return filled * 100 / (len(fields) + 1)
}

var sampleOpportunities = []domain.Opportunity{
	{
		ID:          "1",
		Title:       "React.js Complete Course",
		Company:     "Coursera",
		Description: "Master React.js with hands-on projects and industry best practices. Build real-world applications.",
		Type:        domain.OpportunityCertification,
		Duration:    "6 weeks",
		Skills:      []string{"React", "JavaScript", "Frontend"},
		Rating:      4.8,
		Featured:    true,
	},
	{
		ID:          "2",
		Title:       "Frontend Developer Intern",
		Company:     "TechCorp Solutions",
		Description: "Join our dynamic team to work on cutting-edge web applications using React and TypeScript.",
		Type:        domain.OpportunityInternship,
		Location:    "Remote",
		Duration:    "3 months",
		Skills:      []string{"React", "TypeScript", "CSS"},
		Rating:      4.5,
	},
	{
		ID:          "3",
		Title:       "Full Stack Developer",
		Company:     "StartupXYZ",
		Description: "Be part of an innovative startup building the next generation of SaaS products.",
		Type:        domain.OpportunityJob,
		Location:    "Bangalore",
		Duration:    "Full-time",
		Skills:      []string{"Node.js", "React", "MongoDB"},
		Rating:      4.7,
	},
}
