package usecase

import (
	"fmt"
	"strings"

	"career-hub/internal/domain"
)

// heavyDayThreshold is the class count above which a day is considered heavy.
const heavyDayThreshold = 2

// GenerateRecommendations derives study suggestions from a schedule. Entries
// are returned in rule order: heavy days, light days, one entry per day with
// several hard classes, then the exam preparation tip which is always present.
func GenerateRecommendations(schedule []domain.DaySchedule) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, 3)

	var heavy, light []string
	for _, day := range schedule {
		if len(day.Classes) > heavyDayThreshold {
			heavy = append(heavy, day.Day)
		} else {
			light = append(light, day.Day)
		}
	}

	if len(heavy) > 0 {
		recs = append(recs, domain.Recommendation{
			ID:          "1",
			Type:        domain.RecommendationBalance,
			Title:       "Heavy Class Days Detected",
			Description: fmt.Sprintf("%s have 3+ classes. Consider light study sessions on these days and intensive study on lighter days.", strings.Join(heavy, ", ")),
			Priority:    domain.PriorityHigh,
		})
	}

	if len(light) > 0 {
		recs = append(recs, domain.Recommendation{
			ID:          "2",
			Type:        domain.RecommendationStudyTime,
			Title:       "Optimal Study Windows",
			Description: fmt.Sprintf("%s are ideal for intensive study sessions. Schedule your toughest subjects during these times.", strings.Join(light, ", ")),
			Priority:    domain.PriorityMedium,
		})
	}

	for _, day := range schedule {
		if countHard(day.Classes) > 1 {
			recs = append(recs, domain.Recommendation{
				ID:          "3-" + day.Day,
				Type:        domain.RecommendationOverlap,
				Title:       "Challenging " + day.Day,
				Description: fmt.Sprintf("Multiple difficult subjects on %s. Pre-study the evening before and take short breaks between classes.", day.Day),
				Priority:    domain.PriorityHigh,
			})
		}
	}

	recs = append(recs, domain.Recommendation{
		ID:          "4",
		Type:        domain.RecommendationExamPrep,
		Title:       "Exam Preparation Strategy",
		Description: "Use 2-3 hour gaps between classes for quick revision. Lab days are perfect for practical concept reinforcement.",
		Priority:    domain.PriorityMedium,
	})

	return recs
}

func countHard(classes []domain.ClassSlot) int {
	n := 0
	for _, c := range classes {
		if c.Difficulty == domain.DifficultyHard {
			n++
		}
	}
	return n
}
