package usecase

import (
	"regexp"
	"strings"
	"time"
)

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that models sometimes add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	if m := re.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// whenLayouts are the timestamp shapes accepted from the remote model.
var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseWhen converts a timestamp string to an absolute time in loc. Invalid
// strings silently become nil, not an error.
func parseWhen(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range whenLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Location() == time.UTC && layout != time.RFC3339 {
				t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
			}
			return &t
		}
	}
	return nil
}

// deriveScheduleTitle scans the utterance for a schedule-type noun and
// returns the first match, or "" when none is found.
func deriveScheduleTitle(text string) string {
	t := strings.TrimSpace(text)
	for _, k := range scheduleWords {
		if strings.Contains(t, k) {
			return k
		}
	}
	if m := callOrPhoneRe.FindStringSubmatch(t); m != nil {
		return m[2]
	}
	return ""
}

func containsScheduleWord(text string) bool {
	for _, k := range scheduleWords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
