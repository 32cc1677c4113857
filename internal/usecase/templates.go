package usecase

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"

	"career-hub/internal/domain"
	"career-hub/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

const DefaultTemplate = "modern"

type TemplateInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Default     bool   `json:"default,omitempty"`
}

// Templates lists the available layouts in display order.
var Templates = []TemplateInfo{
	{Name: "modern", Title: "Modern", Description: "Clean two-column layout with an accent sidebar.", Default: true},
	{Name: "classic", Title: "Classic", Description: "Traditional single-column layout with serif headings."},
	{Name: "minimal", Title: "Minimal", Description: "Plain typography with generous whitespace."},
	{Name: "creative", Title: "Creative", Description: "Bold header band and skill badges."},
}

// SelectTemplate resolves a template name. The empty name selects the default.
func SelectTemplate(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultTemplate, nil
	}
	for _, t := range Templates {
		if t.Name == name {
			return name, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownTemplate, "%q", name)
}

type TemplateRenderer struct {
	templates map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	"initials": func(name string) string {
		var b strings.Builder
		for _, f := range strings.Fields(name) {
			b.WriteString(strings.ToUpper(string([]rune(f)[:1])))
		}
		return b.String()
	},
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	r := &TemplateRenderer{templates: make(map[string]*template.Template, len(Templates))}
	for _, t := range Templates {
		tpl, err := template.New(t.Name + ".html").Funcs(templateFuncs).ParseFS(templateFS, "templates/"+t.Name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", t.Name)
		}
		r.templates[t.Name] = tpl
	}
	return r, nil
}

// Render validates doc and renders it with the named layout.
func (r *TemplateRenderer) Render(name string, doc model.Resume) (string, error) {
	name, err := SelectTemplate(name)
	if err != nil {
		return "", err
	}
	if err := model.ValidateResume(doc); err != nil {
		return "", errors.Wrapf(domain.ErrInvalid, "resume document: %v", err)
	}

	var buf bytes.Buffer
	if err := r.templates[name].Execute(&buf, doc); err != nil {
		return "", errors.Wrapf(err, "execute template %s", name)
	}
	return buf.String(), nil
}

// BuildResume assembles the document rendered by the templates from the
// user's profile and resume records.
func BuildResume(p domain.Profile, res domain.Resume, summary string) model.Resume {
	name := p.FullName()
	if name == "" {
		name = "Your Name"
	}
	headline := p.Occupation
	if headline == "" && p.Course != "" {
		headline = p.Course + " Student"
	}

	doc := model.Resume{
		Meta: model.Meta{
			Name:     name,
			Headline: headline,
		},
		Summary:        summary,
		Skills:         make([]model.Skill, 0, len(res.Skills)),
		Projects:       make([]model.Project, 0, len(res.Projects)),
		Certifications: make([]model.Certification, 0, len(res.Certifications)),
	}
	if doc.Summary == "" {
		doc.Summary = p.Bio
	}
	doc.Summary = truncate(doc.Summary, maxSummaryLen)

	contact := map[string]string{}
	if p.Phone != "" {
		contact["phone"] = p.Phone
	}
	if p.Location != "" {
		contact["location"] = p.Location
	}
	if len(contact) > 0 {
		doc.Meta.Contact = contact
	}

	for _, s := range res.Skills {
		doc.Skills = append(doc.Skills, model.Skill{Name: s.Name, Level: string(s.Level)})
	}
	for _, pr := range res.Projects {
		techs := pr.Technologies
		if techs == nil {
			techs = []string{}
		}
		doc.Projects = append(doc.Projects, model.Project{
			ID:           pr.ID.String(),
			Title:        pr.Title,
			Description:  pr.Description,
			Technologies: techs,
		})
	}
	for _, c := range res.Certifications {
		doc.Certifications = append(doc.Certifications, model.Certification{
			Name:     c.Name,
			Issuer:   c.Issuer,
			Date:     c.Date,
			URL:      c.URL,
			URLLabel: URLLabel(c.URL, c.Issuer),
		})
	}
	return doc
}

const maxSummaryLen = 600

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return strings.TrimSpace(string(r[:n-3])) + "..."
}

// URLLabel returns a short label for a certification link: the registrable
// domain of rawURL, or fallback when there is no usable URL.
func URLLabel(rawURL, fallback string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL != "" {
		candidate := rawURL
		if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
			candidate = "https://" + candidate
		}
		if parsed, err := url.Parse(candidate); err == nil && parsed.Hostname() != "" {
			host := parsed.Hostname()
			if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
				return etld
			}
			return strings.TrimPrefix(host, "www.")
		}
	}
	if fallback != "" {
		return fallback
	}
	return "link"
}
