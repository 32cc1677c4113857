package model

// Go models that match resume.schema.json, used for validation and rendering.

type Meta struct {
	Name     string            `json:"name"`
	Headline string            `json:"headline"`
	Contact  map[string]string `json:"contact,omitempty"`
}

type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type Certification struct {
	Name     string `json:"name"`
	Issuer   string `json:"issuer,omitempty"`
	Date     string `json:"date,omitempty"`
	URL      string `json:"url,omitempty"`
	URLLabel string `json:"url_label,omitempty"`
}

type Resume struct {
	Meta           Meta            `json:"meta"`
	Summary        string          `json:"summary,omitempty"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}
