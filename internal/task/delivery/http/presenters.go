package http

import (
	"time"

	"checkey/internal/digest"
	"checkey/internal/extract"
	"checkey/internal/model"
	"checkey/internal/task"
)

// --- Request DTOs ---

type confirmReq struct {
	Card confirmCardReq `json:"card" binding:"required"`
}

type confirmCardReq struct {
	Kind                     string               `json:"kind"`
	Title                    string               `json:"title"`
	StartTime                *time.Time           `json:"start_time"`
	DueDate                  *time.Time           `json:"due_date"`
	EstimatedDurationMinutes *int                 `json:"estimated_duration_minutes"`
	Tasks                    []confirmFragmentReq `json:"tasks"`
}

type confirmFragmentReq struct {
	Title                    string     `json:"title" binding:"required"`
	DueDate                  *time.Time `json:"due_date"`
	EstimatedDurationMinutes *int       `json:"estimated_duration_minutes"`
}

func (r confirmReq) toInput() task.ConfirmInput {
	fragments := make([]extract.TaskFragment, len(r.Card.Tasks))
	for i, frag := range r.Card.Tasks {
		fragments[i] = extract.TaskFragment{
			Title:                    frag.Title,
			DueDate:                  frag.DueDate,
			EstimatedDurationMinutes: frag.EstimatedDurationMinutes,
		}
	}
	return task.ConfirmInput{Card: extract.ConfirmationCard{
		Kind:                     extract.Kind(r.Card.Kind),
		Title:                    r.Card.Title,
		StartTime:                r.Card.StartTime,
		DueDate:                  r.Card.DueDate,
		EstimatedDurationMinutes: r.Card.EstimatedDurationMinutes,
		Tasks:                    fragments,
	}}
}

type postponeReq struct {
	NewDueDate time.Time `json:"new_due_date" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID                       string     `json:"id"`
	Title                    string     `json:"title"`
	DueDate                  *time.Time `json:"due_date,omitempty"`
	EstimatedDurationMinutes int        `json:"estimated_duration_minutes"`
	EstimateSource           string     `json:"estimate_source,omitempty"`
	Status                   string     `json:"status"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:                       t.ID,
		Title:                    t.Title,
		DueDate:                  t.DueDate,
		EstimatedDurationMinutes: t.EstimatedDurationMinutes,
		EstimateSource:           t.EstimateSource,
		Status:                   t.Status,
		CreatedAt:                t.CreatedAt,
		UpdatedAt:                t.UpdatedAt,
	}
}

type scheduleResp struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	StartTime           *time.Time `json:"start_time,omitempty"`
	RemindMinutesBefore int        `json:"remind_minutes_before"`
}

type confirmResp struct {
	Tasks        []taskResp    `json:"tasks"`
	Schedule     *scheduleResp `json:"schedule,omitempty"`
	CalendarLink string        `json:"calendar_link,omitempty"`
}

func (h *handler) newConfirmResp(out task.ConfirmOutput) confirmResp {
	resp := confirmResp{
		Tasks:        make([]taskResp, len(out.Tasks)),
		CalendarLink: out.CalendarLink,
	}
	for i, t := range out.Tasks {
		resp.Tasks[i] = newTaskResp(t)
	}
	if out.Schedule != nil {
		resp.Schedule = &scheduleResp{
			ID:                  out.Schedule.ID,
			Title:               out.Schedule.Title,
			StartTime:           out.Schedule.StartTime,
			RemindMinutesBefore: out.Schedule.RemindMinutesBefore,
		}
	}
	return resp
}

type scheduleRangeReq struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type scheduleListResp struct {
	Schedules []scheduleResp `json:"schedules"`
	Count     int            `json:"count"`
}

func (h *handler) newScheduleListResp(schedules []model.Schedule) scheduleListResp {
	resp := scheduleListResp{Schedules: make([]scheduleResp, len(schedules)), Count: len(schedules)}
	for i, s := range schedules {
		resp.Schedules[i] = scheduleResp{
			ID:                  s.ID,
			Title:               s.Title,
			StartTime:           s.StartTime,
			RemindMinutesBefore: s.RemindMinutesBefore,
		}
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	resp := listResp{Tasks: make([]taskResp, len(tasks)), Count: len(tasks)}
	for i, t := range tasks {
		resp.Tasks[i] = newTaskResp(t)
	}
	return resp
}

type digestBucketResp struct {
	Label string     `json:"label"`
	Tasks []taskResp `json:"tasks"`
}

type digestResp struct {
	CoachLine string             `json:"coach_line"`
	Message   string             `json:"message"`
	Buckets   []digestBucketResp `json:"buckets"`
	Empty     bool               `json:"empty"`
}

func (h *handler) newDigestResp(d digest.Digest) digestResp {
	resp := digestResp{
		CoachLine: d.CoachLine,
		Message:   d.Message,
		Buckets:   make([]digestBucketResp, len(d.Buckets)),
		Empty:     d.Empty(),
	}
	for i, b := range d.Buckets {
		bucket := digestBucketResp{Label: b.Label, Tasks: make([]taskResp, len(b.Tasks))}
		for j, t := range b.Tasks {
			bucket.Tasks[j] = newTaskResp(t)
		}
		resp.Buckets[i] = bucket
	}
	return resp
}
