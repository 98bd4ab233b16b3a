package krtime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolver converts Korean relative day/time phrases embedded in free text
// ("오늘", "내일 3시", "모레 오후 2시 반...") into absolute time.Time values.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "Asia/Seoul".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

var (
	// Explicit clock-time markers: meridiem words, "N시 M분" hour/minute words,
	// or a colon-delimited HH:MM.
	meridiemRe = regexp.MustCompile(`(?i)오전|오후|AM|PM`)
	hourWordRe = regexp.MustCompile(`\b\d{1,2}\s*시(\s*\d{1,2}\s*분)?`)
	clockRe    = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)

	// Capture variants used for parsing. The colon pattern wins over the
	// hour-word pattern when both could match.
	clockCapRe    = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	hourWordCapRe = regexp.MustCompile(`(\d{1,2})\s*시(?:\s*(\d{1,2})\s*분)?`)

	pmRe = regexp.MustCompile(`(?i)오후|PM`)
	amRe = regexp.MustCompile(`(?i)오전|AM`)
)

// HasExplicitTime reports whether the text carries an explicit clock-time
// marker. A relative day word alone ("내일") is not explicit time.
func (r *Resolver) HasExplicitTime(text string) bool {
	return meridiemRe.MatchString(text) ||
		hourWordRe.MatchString(text) ||
		clockRe.MatchString(text)
}

// ResolveDay extracts a relative day marker (오늘/내일/모레) and returns the
// start of that day. The second return value is false when no marker exists.
func (r *Resolver) ResolveDay(text string, now time.Time) (time.Time, bool) {
	base := now.In(r.location)
	switch {
	case strings.Contains(text, "모레"):
		return r.startOfDay(base.AddDate(0, 0, 2)), true
	case strings.Contains(text, "내일"):
		return r.startOfDay(base.AddDate(0, 0, 1)), true
	case strings.Contains(text, "오늘"):
		return r.startOfDay(base), true
	}
	return time.Time{}, false
}

// ResolveDayTime returns an absolute day+time instant, but only when the text
// carries an explicit clock-time marker. The base day comes from the relative
// day marker, defaulting to today. Hour defaults to 09:00 when the meridiem
// word appears without digits. Hour/minute values outside the usual ranges
// propagate uncorrected; this is a fallback heuristic, not a validator.
func (r *Resolver) ResolveDayTime(text string, now time.Time) (time.Time, bool) {
	if !r.HasExplicitTime(text) {
		return time.Time{}, false
	}

	base := now.In(r.location)
	if strings.Contains(text, "모레") {
		base = base.AddDate(0, 0, 2)
	} else if strings.Contains(text, "내일") {
		base = base.AddDate(0, 0, 1)
	}

	hour, minute := 9, 0
	if m := clockCapRe.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
	} else if m := hourWordCapRe.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
	}

	if pmRe.MatchString(text) && hour < 12 {
		hour += 12
	}
	if amRe.MatchString(text) && hour == 12 {
		hour = 0
	}

	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, r.location), true
}

// EndOfDay returns 23:59:59 of the day that starts at startOfDay.
func (r *Resolver) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// StartOfDay returns midnight of the given instant's day in the resolver's
// timezone.
func (r *Resolver) StartOfDay(t time.Time) time.Time {
	return r.startOfDay(t.In(r.location))
}

func (r *Resolver) startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}
