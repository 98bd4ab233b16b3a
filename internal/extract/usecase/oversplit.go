package usecase

import (
	"regexp"
	"strings"
)

// looksOversplit detects the signature of a companionship phrase chopped in
// two by the remote model: a bare relation noun directly followed by an
// activity title, where the original text joined them with a connector, or
// where the activity title already reads like an action.
func looksOversplit(titles []string, original string) bool {
	for i := 0; i+1 < len(titles); i++ {
		a := strings.TrimSpace(titles[i])
		b := strings.TrimSpace(titles[i+1])
		if !relationNounRe.MatchString(a) || !withActivityRe.MatchString(b) {
			continue
		}

		joined := regexp.MustCompile(regexp.QuoteMeta(a) + connectorJoinRe + regexp.QuoteMeta(b))
		if joined.MatchString(original) {
			return true
		}
		if actionSuffixRe.MatchString(b) {
			return true
		}
	}
	return false
}
