package usecase

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// suggestion is the provisional entity decoded from the remote model's JSON.
// Every field tolerates missing or wrongly-typed values: the remote call is
// advisory, never authoritative.
type suggestion struct {
	Type                     flexString      `json:"type"`
	Title                    flexString      `json:"title"`
	StartTime                flexString      `json:"startTime"`
	DueDate                  flexString      `json:"dueDate"`
	EstimatedDurationMinutes flexMinutes     `json:"estimatedDurationMinutes"`
	Tasks                    []suggestedTask `json:"tasks"`
}

// suggestedTask is one remote task entry, which may arrive as a bare string
// or as an object.
type suggestedTask struct {
	Title   string
	DueDate string
	Minutes flexMinutes
}

func (t *suggestedTask) UnmarshalJSON(b []byte) error {
	var s string
	if json.Unmarshal(b, &s) == nil {
		t.Title = s
		return nil
	}

	var obj struct {
		Title                    flexString  `json:"title"`
		DueDate                  flexString  `json:"dueDate"`
		EstimatedDurationMinutes flexMinutes `json:"estimatedDurationMinutes"`
	}
	// A malformed entry degrades to an empty fragment, not an error.
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil
	}
	t.Title = string(obj.Title)
	t.DueDate = string(obj.DueDate)
	t.Minutes = obj.EstimatedDurationMinutes
	return nil
}

// flexString decodes a JSON string and silently ignores any other type.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	var v string
	if json.Unmarshal(b, &v) == nil {
		*s = flexString(v)
	}
	return nil
}

// flexMinutes decodes a duration that may arrive as a number or a numeric
// string. Non-finite and non-numeric values count as absent.
type flexMinutes struct {
	value float64
	valid bool
}

func (m *flexMinutes) UnmarshalJSON(b []byte) error {
	var f float64
	if json.Unmarshal(b, &f) == nil {
		m.value, m.valid = f, true
		return nil
	}
	var s string
	if json.Unmarshal(b, &s) == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			m.value, m.valid = f, true
		}
	}
	return nil
}

// Minutes returns the integral minute value, if one was provided.
func (m flexMinutes) Minutes() (int, bool) {
	if !m.valid || math.IsNaN(m.value) || math.IsInf(m.value, 0) {
		return 0, false
	}
	return int(m.value), true
}

// parseSuggestion decodes the remote response content, defaulting to an
// empty suggestion on any failure.
func parseSuggestion(content string) suggestion {
	cleaned := sanitizeJSONResponse(content)

	var sug suggestion
	if err := json.Unmarshal([]byte(cleaned), &sug); err != nil {
		return suggestion{}
	}
	sug.Type = flexString(strings.ToLower(strings.TrimSpace(string(sug.Type))))
	return sug
}
