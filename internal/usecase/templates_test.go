package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-hub/internal/domain"
	"career-hub/internal/model"
)

func sampleResume() (domain.Profile, domain.Resume) {
	p := domain.Profile{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Occupation: "Software Engineering Student",
		Location:   "London",
		Bio:        "Enjoys analytical engines.",
	}
	r := domain.Resume{
		Skills: []domain.Skill{
			{ID: uuid.New(), Name: "Go", Level: domain.SkillAdvanced},
			{ID: uuid.New(), Name: "SQL", Level: domain.SkillBeginner},
		},
		Projects: []domain.Project{
			{ID: uuid.New(), Title: "Task Management App", Description: "Realtime task board", Technologies: []string{"React", "Go"}},
		},
		Certifications: []domain.Certification{
			{ID: uuid.New(), Name: "CCNA", Issuer: "Cisco", Date: "2024-05", URL: "https://www.cisco.com/c/en/us/training-events.html"},
			{ID: uuid.New(), Name: "Data Analytics", Issuer: "Google", Date: "2023-11"},
		},
	}
	return p, r
}

func TestSelectTemplate(t *testing.T) {
	name, err := SelectTemplate("")
	require.NoError(t, err)
	assert.Equal(t, "modern", name)

	name, err = SelectTemplate(" Classic ")
	require.NoError(t, err)
	assert.Equal(t, "classic", name)

	_, err = SelectTemplate("fancy")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestTemplateRenderer_EveryTemplateRendersName(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	p, res := sampleResume()
	doc := BuildResume(p, res, "")

	for _, tpl := range Templates {
		t.Run(tpl.Name, func(t *testing.T) {
			html, err := r.Render(tpl.Name, doc)
			require.NoError(t, err)
			assert.Contains(t, html, "Ada Lovelace")
			assert.Contains(t, html, "Task Management App")
			assert.Contains(t, html, "cisco.com")
		})
	}
}

func TestTemplateRenderer_RejectsUnknownAndInvalid(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	p, res := sampleResume()

	_, err = r.Render("fancy", BuildResume(p, res, ""))
	assert.ErrorIs(t, err, ErrUnknownTemplate)

	doc := BuildResume(p, res, "")
	doc.Skills = append(doc.Skills, model.Skill{Name: "Go", Level: "Guru"})
	_, err = r.Render("modern", doc)
	assert.ErrorIs(t, err, domain.ErrInvalid)
}

func TestBuildResume(t *testing.T) {
	doc := BuildResume(domain.Profile{Course: "Data Science"}, domain.Resume{}, "")
	assert.Equal(t, "Your Name", doc.Meta.Name)
	assert.Equal(t, "Data Science Student", doc.Meta.Headline)
	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.Projects)
	assert.NotNil(t, doc.Certifications)
	assert.NoError(t, model.ValidateResume(doc))

	p, res := sampleResume()
	doc = BuildResume(p, res, "Given summary.")
	assert.Equal(t, "Given summary.", doc.Summary)
	assert.Equal(t, "London", doc.Meta.Contact["location"])
	assert.Equal(t, "cisco.com", doc.Certifications[0].URLLabel)
	assert.Equal(t, "Google", doc.Certifications[1].URLLabel)
}

func TestURLLabel(t *testing.T) {
	assert.Equal(t, "coursera.org", URLLabel("https://www.coursera.org/account/accomplishments/abc", "Coursera"))
	assert.Equal(t, "example.co.uk", URLLabel("certs.example.co.uk/verify", ""))
	assert.Equal(t, "Oracle", URLLabel("", "Oracle"))
	assert.Equal(t, "link", URLLabel("", ""))
}
