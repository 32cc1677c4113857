package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"career-hub/internal/domain"
	ai "career-hub/pkg/ai"
)

// SummaryService writes the professional summary shown at the top of a
// resume. It prefers the ai-service and falls back to a locally composed text.
type SummaryService struct {
	formatter ai.Formatter
}

// NewSummaryService accepts a nil formatter, in which case only the local
// composition is used.
func NewSummaryService(f ai.Formatter) *SummaryService {
	return &SummaryService{formatter: f}
}

type GeneratedSummary struct {
	Summary string `json:"summary"`
	Source  string `json:"source"`
}

const (
	SummarySourceAI    = "ai"
	SummarySourceLocal = "local"
)

func (s *SummaryService) Generate(ctx context.Context, p domain.Profile, res domain.Resume) GeneratedSummary {
	if s.formatter != nil {
		out, err := s.formatter.Format(ctx, summaryPayload(p, res))
		if err == nil {
			if text, ok := out["summary"].(string); ok && text != "" {
				return GeneratedSummary{Summary: text, Source: SummarySourceAI}
			}
		}
		slog.Warn("summary: ai-service unavailable, composing locally", "user_id", p.UserID, "error", err)
	}
	return GeneratedSummary{Summary: ComposeSummary(p, res), Source: SummarySourceLocal}
}

func summaryPayload(p domain.Profile, res domain.Resume) map[string]interface{} {
	skills := make([]map[string]string, 0, len(res.Skills))
	for _, sk := range res.Skills {
		skills = append(skills, map[string]string{"name": sk.Name, "level": string(sk.Level)})
	}
	projects := make([]map[string]interface{}, 0, len(res.Projects))
	for _, pr := range res.Projects {
		projects = append(projects, map[string]interface{}{
			"title":        pr.Title,
			"description":  pr.Description,
			"technologies": pr.Technologies,
		})
	}
	certs := make([]map[string]string, 0, len(res.Certifications))
	for _, c := range res.Certifications {
		certs = append(certs, map[string]string{"name": c.Name, "issuer": c.Issuer})
	}
	return map[string]interface{}{
		"profile": map[string]string{
			"occupation":    p.Occupation,
			"course":        p.Course,
			"academic_year": p.AcademicYear,
			"bio":           p.Bio,
		},
		"skills":         skills,
		"projects":       projects,
		"certifications": certs,
	}
}

// ComposeSummary builds a deterministic summary from the stored records.
func ComposeSummary(p domain.Profile, res domain.Resume) string {
	var parts []string

	role := p.Occupation
	if role == "" && p.Course != "" {
		role = p.Course + " student"
	}
	if role == "" {
		role = "Motivated student"
	}

	if names := topSkills(res.Skills, 3); len(names) > 0 {
		parts = append(parts, fmt.Sprintf("%s skilled in %s.", role, joinList(names)))
	} else {
		parts = append(parts, role+" eager to build practical experience.")
	}

	switch n := len(res.Projects); n {
	case 0:
	case 1:
		parts = append(parts, fmt.Sprintf("Built %s.", res.Projects[0].Title))
	default:
		parts = append(parts, fmt.Sprintf("Built %d projects including %s.", n, res.Projects[0].Title))
	}

	switch n := len(res.Certifications); n {
	case 0:
	case 1:
		parts = append(parts, fmt.Sprintf("Holds the %s certification.", res.Certifications[0].Name))
	default:
		parts = append(parts, fmt.Sprintf("Holds %d certifications.", n))
	}

	return truncate(strings.Join(parts, " "), maxSummaryLen)
}

// topSkills returns up to n skill names, strongest level first.
func topSkills(skills []domain.Skill, n int) []string {
	var out []string
	for _, level := range []domain.SkillLevel{domain.SkillAdvanced, domain.SkillIntermediate, domain.SkillBeginner} {
		for _, s := range skills {
			if s.Level == level && len(out) < n {
				out = append(out, s.Name)
			}
		}
	}
	return out
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
