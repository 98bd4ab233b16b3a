package http

import (
	"time"

	"checkey/internal/extract"
)

// --- Request DTOs ---

type extractReq struct {
	Text   string `json:"text"    binding:"required,min=1,max=2000"`
	UserID string `json:"user_id" binding:"max=64"`
}

func (r extractReq) toInput() extract.ExtractInput {
	return extract.ExtractInput{RawText: r.Text}
}

// --- Response DTOs ---

type taskFragmentResp struct {
	Title                    string     `json:"title"`
	DueDate                  *time.Time `json:"due_date,omitempty"`
	EstimatedDurationMinutes *int       `json:"estimated_duration_minutes,omitempty"`
}

type cardResp struct {
	Kind                     string             `json:"kind"`
	Title                    string             `json:"title"`
	StartTime                *time.Time         `json:"start_time,omitempty"`
	DueDate                  *time.Time         `json:"due_date,omitempty"`
	EstimatedDurationMinutes *int               `json:"estimated_duration_minutes,omitempty"`
	Tasks                    []taskFragmentResp `json:"tasks"`
}

type extractResp struct {
	Entity cardResp `json:"entity"`
	Card   cardResp `json:"card"`
}

func newFragmentsResp(fragments []extract.TaskFragment) []taskFragmentResp {
	out := make([]taskFragmentResp, len(fragments))
	for i, frag := range fragments {
		out[i] = taskFragmentResp{
			Title:                    frag.Title,
			DueDate:                  frag.DueDate,
			EstimatedDurationMinutes: frag.EstimatedDurationMinutes,
		}
	}
	return out
}

func (h *handler) newExtractResp(entity extract.ParsedEntity, card extract.ConfirmationCard) extractResp {
	return extractResp{
		Entity: cardResp{
			Kind:                     string(entity.Kind),
			Title:                    entity.Title,
			StartTime:                entity.StartTime,
			DueDate:                  entity.DueDate,
			EstimatedDurationMinutes: entity.EstimatedDurationMinutes,
			Tasks:                    newFragmentsResp(entity.Tasks),
		},
		Card: cardResp{
			Kind:                     string(card.Kind),
			Title:                    card.Title,
			StartTime:                card.StartTime,
			DueDate:                  card.DueDate,
			EstimatedDurationMinutes: card.EstimatedDurationMinutes,
			Tasks:                    newFragmentsResp(card.Tasks),
		},
	}
}
