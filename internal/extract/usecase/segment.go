package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Hard split boundaries: newline/comma/semicolon/slash-family runs and
	// the discourse connectors 그리고/또/겸. The companionship connectors
	// 와/과/랑/하고 are deliberately not in this set.
	hardSepRe = regexp.MustCompile(`[\n,;／/、]+|\s*(?:그리고|또|겸)\s*`)

	hagoSplitRe = regexp.MustCompile(`\s*하고\s*`)

	connectorTailRe = regexp.MustCompile(`(랑|하고|과|와)$`)
	connectorAnyRe  = regexp.MustCompile(`(랑|하고|과|와)\s+`)

	leadingFillerRe = regexp.MustCompile(`^(그럼|그리고|또)\s*`)
	leadingBulletRe = regexp.MustCompile(`^-+\s*`)
	innerSpaceRe    = regexp.MustCompile(`\s+`)
)

// segmentUtterance splits one utterance into candidate task fragments while
// keeping companionship phrases ("엄마랑 데이트하기") whole.
func segmentUtterance(input string) []string {
	raw := strings.TrimSpace(innerSpaceRe.ReplaceAllString(input, " "))
	if raw == "" {
		return nil
	}

	// Pass 1: hard separators.
	chunks := splitNonEmpty(hardSepRe, raw)

	// Pass 2: "하고" is an enumerator only when it appears twice or more;
	// a single occurrence is a companionship connector and must not split.
	if len(chunks) == 1 {
		if len(hagoSplitRe.FindAllStringIndex(chunks[0], -1)) >= 2 {
			chunks = splitNonEmpty(hagoSplitRe, chunks[0])
		}
	}

	// Pass 3: re-merge companionship pairs.
	merged := make([]string, 0, len(chunks))
	for i := 0; i < len(chunks); i++ {
		cur := chunks[i]

		// Connector and activity already in one fragment: keep whole.
		if connectorAnyRe.MatchString(cur) && withActivityRe.MatchString(cur) {
			merged = append(merged, cur)
			continue
		}

		// "엄마랑" style connector tail followed by an activity fragment.
		if connectorTailRe.MatchString(cur) && i+1 < len(chunks) && withActivityRe.MatchString(chunks[i+1]) {
			joined := innerSpaceRe.ReplaceAllString(cur+" "+chunks[i+1], " ")
			merged = append(merged, strings.TrimSpace(joined))
			i++
			continue
		}

		merged = append(merged, cur)
	}

	// Pass 4: strip fillers and bullets, drop anything under 2 runes,
	// dedupe preserving first-seen order.
	seen := make(map[string]bool, len(merged))
	out := make([]string, 0, len(merged))
	for _, s := range merged {
		s = leadingFillerRe.ReplaceAllString(s, "")
		s = leadingBulletRe.ReplaceAllString(s, "")
		s = strings.TrimSpace(innerSpaceRe.ReplaceAllString(s, " "))
		if utf8.RuneCountInString(s) < 2 || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func splitNonEmpty(re *regexp.Regexp, s string) []string {
	parts := re.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
