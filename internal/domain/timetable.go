package domain

type ClassType string

const (
	ClassLecture  ClassType = "lecture"
	ClassLab      ClassType = "lab"
	ClassTutorial ClassType = "tutorial"
	ClassSeminar  ClassType = "seminar"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ClassSlot is a single class on a timetable day. Time is "HH:MM" and
// Duration is in minutes.
type ClassSlot struct {
	ID         string     `json:"id"`
	Subject    string     `json:"subject" validate:"notblank"`
	Professor  string     `json:"professor"`
	Room       string     `json:"room"`
	Time       string     `json:"time" validate:"omitempty,datetime=15:04"`
	Duration   int        `json:"duration" validate:"gte=0"`
	Type       ClassType  `json:"type" validate:"omitempty,oneof=lecture lab tutorial seminar"`
	Difficulty Difficulty `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type DaySchedule struct {
	Day     string      `json:"day" validate:"notblank"`
	Date    string      `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Classes []ClassSlot `json:"classes" validate:"dive"`
}

type RecommendationType string

const (
	RecommendationStudyTime RecommendationType = "study-time"
	RecommendationBalance   RecommendationType = "balance"
	RecommendationOverlap   RecommendationType = "overlap"
	RecommendationExamPrep  RecommendationType = "exam-prep"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is derived from a schedule on every request and never stored.
type Recommendation struct {
	ID          string             `json:"id"`
	Type        RecommendationType `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Priority    Priority           `json:"priority"`
}

type CertificationSuggestion struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Provider    string   `json:"provider"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Keywords    []string `json:"keywords"`
}
