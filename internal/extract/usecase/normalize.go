package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	trailingConnectiveRe = regexp.MustCompile(`\s*(있고|하고|고)\s*$`)
	mustDoSlangRe        = regexp.MustCompile(`해야댐|해야됨`)
	callObligationRe     = regexp.MustCompile(`전화\s*해야\s*함?$`)
	contactObligationRe  = regexp.MustCompile(`연락\s*해야\s*함?$`)
	dupActionSuffixRe    = regexp.MustCompile(`하기기$`)
)

// normalizeTitle cleans one task-fragment title. Rules apply in order; when
// cleaning would shrink the title under 2 runes the trimmed original wins.
// The function is idempotent.
func normalizeTitle(raw string) string {
	s := strings.TrimSpace(raw)

	s = trailingConnectiveRe.ReplaceAllString(s, "")
	s = mustDoSlangRe.ReplaceAllString(s, "해야 함")

	// Modal obligation to action form for call/contact verbs.
	s = callObligationRe.ReplaceAllString(s, "전화하기")
	s = contactObligationRe.ReplaceAllString(s, "연락하기")

	s = dupActionSuffixRe.ReplaceAllString(s, "하기")

	// A bare relation noun alone is not actionable; give it a default action.
	if bareRelationRe.MatchString(s) {
		s += "에게 연락하기"
	}

	if utf8.RuneCountInString(s) >= 2 {
		return s
	}
	return strings.TrimSpace(raw)
}
