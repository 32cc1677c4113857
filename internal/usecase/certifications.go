package usecase

import (
	"strings"

	"career-hub/internal/domain"
)

type certificationRule struct {
	keywords   []string
	suggestion domain.CertificationSuggestion
}

// certificationRules is evaluated in order; each rule yields at most one suggestion.
var certificationRules = []certificationRule{
	{
		keywords: []string{"data", "machine learning"},
		suggestion: domain.CertificationSuggestion{
			ID:          "google-data-analytics",
			Name:        "Google Data Analytics Professional Certificate",
			Provider:    "Google",
			Description: "Covers data cleaning, analysis and visualisation; pairs well with data structures and machine learning coursework.",
			URL:         "https://grow.google/certificates/data-analytics/",
		},
	},
	{
		keywords: []string{"programming", "software", "algorithm"},
		suggestion: domain.CertificationSuggestion{
			ID:          "oracle-java-associate",
			Name:        "Oracle Certified Associate, Java SE Programmer",
			Provider:    "Oracle",
			Description: "Validates core programming fundamentals and object-oriented design.",
			URL:         "https://education.oracle.com/java-certification",
		},
	},
	{
		keywords: []string{"electronics", "network", "circuit"},
		suggestion: domain.CertificationSuggestion{
			ID:          "cisco-ccna",
			Name:        "Cisco Certified Network Associate (CCNA)",
			Provider:    "Cisco",
			Description: "Networking fundamentals, IP connectivity and security basics.",
			URL:         "https://www.cisco.com/site/us/en/learn/training-certifications/certifications/enterprise/ccna/index.html",
		},
	},
	{
		keywords: []string{"mathematics", "statistics"},
		suggestion: domain.CertificationSuggestion{
			ID:          "sas-statistical-analyst",
			Name:        "SAS Certified Statistical Business Analyst",
			Provider:    "SAS",
			Description: "Applies statistics and regression modelling to business problems.",
			URL:         "https://www.sas.com/en_us/certification.html",
		},
	},
}

// MatchCertifications proposes certifications for the given subject names.
// Matching is a case-insensitive substring test against each rule's keywords.
func MatchCertifications(subjects []string) []domain.CertificationSuggestion {
	lowered := make([]string, 0, len(subjects))
	for _, s := range subjects {
		lowered = append(lowered, strings.ToLower(s))
	}

	out := []domain.CertificationSuggestion{}
	for _, rule := range certificationRules {
		matched := matchedKeywords(lowered, rule.keywords)
		if len(matched) == 0 {
			continue
		}
		s := rule.suggestion
		s.Keywords = matched
		out = append(out, s)
	}
	return out
}

func matchedKeywords(subjects, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		for _, s := range subjects {
			if strings.Contains(s, kw) {
				matched = append(matched, kw)
				break
			}
		}
	}
	return matched
}

// SubjectNames flattens a schedule into its distinct subject names, keeping
// first-seen order.
func SubjectNames(schedule []domain.DaySchedule) []string {
	seen := map[string]bool{}
	var out []string
	for _, day := range schedule {
		for _, c := range day.Classes {
			if seen[c.Subject] {
				continue
			}
			seen[c.Subject] = true
			out = append(out, c.Subject)
		}
	}
	return out
}
