package model

import "time"

// DefaultRemindMinutesBefore is the reminder lead time applied when a
// schedule is saved without an explicit one.
const DefaultRemindMinutesBefore = 10

// Schedule is a persisted calendar entry created from a confirmed card.
type Schedule struct {
	ID                  string     `gorm:"primaryKey;size:36" json:"id"`
	UserID              string     `gorm:"index;size:64" json:"user_id"`
	Title               string     `json:"title"`
	StartTime           *time.Time `gorm:"index" json:"start_time,omitempty"`
	RemindMinutesBefore int        `json:"remind_minutes_before"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
