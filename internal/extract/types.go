package extract

import "time"

// Kind classifies what an utterance denotes.
type Kind string

const (
	KindSchedule Kind = "schedule"
	KindTask     Kind = "task"
	KindBoth     Kind = "both"
	KindOther    Kind = "other"
)

// TaskFragment is one candidate todo extracted from an utterance.
type TaskFragment struct {
	Title                    string     `json:"title"`
	DueDate                  *time.Time `json:"due_date,omitempty"`
	EstimatedDurationMinutes *int       `json:"estimated_duration_minutes,omitempty"`
}

// ParsedEntity is the canonical structured result for one utterance. It is
// created fresh per call and never mutated or reused across utterances.
type ParsedEntity struct {
	Kind                     Kind           `json:"kind"`
	Title                    string         `json:"title"`
	StartTime                *time.Time     `json:"start_time,omitempty"`
	DueDate                  *time.Time     `json:"due_date,omitempty"`
	EstimatedDurationMinutes *int           `json:"estimated_duration_minutes,omitempty"`
	Tasks                    []TaskFragment `json:"tasks"`
}

// ConfirmationCard is the presentation projection of a ParsedEntity. Kind is
// re-derived from the presence of StartTime/Tasks and is the value actually
// shown to the user.
type ConfirmationCard struct {
	Kind                     Kind           `json:"kind"`
	Title                    string         `json:"title"`
	StartTime                *time.Time     `json:"start_time,omitempty"`
	DueDate                  *time.Time     `json:"due_date,omitempty"`
	EstimatedDurationMinutes *int           `json:"estimated_duration_minutes,omitempty"`
	Tasks                    []TaskFragment `json:"tasks"`
}

// ExtractInput is the input for the extraction pipeline.
type ExtractInput struct {
	RawText string // one raw utterance from the user
}
