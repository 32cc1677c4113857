package domain

type OpportunityType string

const (
	OpportunityJob           OpportunityType = "job"
	OpportunityInternship    OpportunityType = "internship"
	OpportunityCertification OpportunityType = "certification"
)

type Opportunity struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Company     string          `json:"company"`
	Description string          `json:"description"`
	Type        OpportunityType `json:"type"`
	Location    string          `json:"location,omitempty"`
	Duration    string          `json:"duration"`
	Skills      []string        `json:"skills"`
	Rating      float64         `json:"rating"`
	Featured    bool            `json:"featured,omitempty"`
}
