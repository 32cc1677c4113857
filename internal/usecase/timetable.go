package usecase

import (
	"sort"

	"github.com/pkg/errors"

	"career-hub/internal/domain"
)

// DefaultPeriod is shown when no period is requested.
const DefaultPeriod = "Year 1 - Sem 1"

// Timetable serves the sample class schedules grouped by academic period.
type Timetable struct {
	periods map[string][]domain.DaySchedule
}

func NewTimetable(periods map[string][]domain.DaySchedule) *Timetable {
	return &Timetable{periods: periods}
}

// NewSampleTimetable returns the built-in first-year timetable.
func NewSampleTimetable() *Timetable {
	return NewTimetable(samplePeriods)
}

func (t *Timetable) Periods() []string {
	out := make([]string, 0, len(t.periods))
	for p := range t.periods {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Schedule returns the days of a period; an empty period name selects DefaultPeriod.
func (t *Timetable) Schedule(period string) ([]domain.DaySchedule, error) {
	if period == "" {
		period = DefaultPeriod
	}
	days, ok := t.periods[period]
	if !ok {
		return nil, errors.Wrapf(domain.ErrNotFound, "period %q", period)
	}
	return days, nil
}

func (t *Timetable) Recommendations(period string) ([]domain.Recommendation, error) {
	days, err := t.Schedule(period)
	if err != nil {
		return nil, err
	}
	return GenerateRecommendations(days), nil
}

func (t *Timetable) Certifications(period string) ([]domain.CertificationSuggestion, error) {
	days, err := t.Schedule(period)
	if err != nil {
		return nil, err
	}
	return MatchCertifications(SubjectNames(days)), nil
}

func slot(id, subject, professor, room, at string, minutes int, typ domain.ClassType, diff domain.Difficulty) domain.ClassSlot {
	return domain.ClassSlot{
		ID: id, Subject: subject, Professor: professor, Room: room,
		Time: at, Duration: minutes, Type: typ, Difficulty: diff,
	}
}

var samplePeriods = map[string][]domain.DaySchedule{
	"Year 1 - Sem 1": {
		{Day: "Monday", Date: "2024-01-15", Classes: []domain.ClassSlot{
			slot("1", "Mathematics I", "Dr. Smith", "A101", "09:00", 60, domain.ClassLecture, domain.DifficultyHard),
			slot("2", "Physics I", "Dr. Johnson", "B203", "11:00", 90, domain.ClassLecture, domain.DifficultyMedium),
			slot("3", "Programming Lab", "Prof. Brown", "Lab1", "14:00", 120, domain.ClassLab, domain.DifficultyMedium),
		}},
		{Day: "Tuesday", Date: "2024-01-16", Classes: []domain.ClassSlot{
			slot("4", "Chemistry", "Dr. Wilson", "C301", "09:00", 60, domain.ClassLecture, domain.DifficultyMedium),
			slot("5", "Engineering Graphics", "Prof. Davis", "D401", "10:30", 90, domain.ClassTutorial, domain.DifficultyEasy),
			slot("6", "Mathematics Tutorial", "Dr. Smith", "A102", "15:00", 60, domain.ClassTutorial, domain.DifficultyHard),
		}},
		{Day: "Wednesday", Date: "2024-01-17", Classes: []domain.ClassSlot{
			slot("7", "Physics Lab", "Dr. Johnson", "Lab2", "09:00", 180, domain.ClassLab, domain.DifficultyMedium),
			slot("8", "Communication Skills", "Prof. Lee", "E501", "14:00", 60, domain.ClassLecture, domain.DifficultyEasy),
		}},
		{Day: "Thursday", Date: "2024-01-18", Classes: []domain.ClassSlot{
			slot("9", "Mathematics I", "Dr. Smith", "A101", "09:00", 60, domain.ClassLecture, domain.DifficultyHard),
			slot("10", "Chemistry Lab", "Dr. Wilson", "Lab3", "11:00", 120, domain.ClassLab, domain.DifficultyMedium),
			slot("11", "Physics I", "Dr. Johnson", "B203", "15:00", 60, domain.ClassLecture, domain.DifficultyMedium),
		}},
		{Day: "Friday", Date: "2024-01-19", Classes: []domain.ClassSlot{
			slot("12", "Programming Fundamentals", "Prof. Brown", "F601", "10:00", 90, domain.ClassLecture, domain.DifficultyMedium),
			slot("13", "Workshop Practice", "Mr. Taylor", "Workshop", "14:00", 180, domain.ClassLab, domain.DifficultyEasy),
		}},
	},
	"Year 1 - Sem 2": {
		{Day: "Monday", Date: "2024-07-15", Classes: []domain.ClassSlot{
			slot("14", "Mathematics II", "Dr. Anderson", "A201", "09:00", 60, domain.ClassLecture, domain.DifficultyHard),
			slot("15", "Data Structures", "Prof. Garcia", "G701", "11:00", 90, domain.ClassLecture, domain.DifficultyHard),
			slot("16", "Electronics Lab", "Dr. Martinez", "Lab4", "14:00", 120, domain.ClassLab, domain.DifficultyMedium),
		}},
	},
}
