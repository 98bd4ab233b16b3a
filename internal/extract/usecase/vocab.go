package usecase

import "regexp"

// Vocabulary tables for the heuristic cascade. These are data, not logic:
// the rules that consume them live in segment.go, normalize.go and
// extract.go, so coverage can be tuned without touching control flow.
// Entries mirror the phrases observed in the field; widening a table without
// corpus evidence tends to create oversplits elsewhere.

// activityWords are activities that commonly follow a companionship
// connector ("엄마랑 데이트"). A fragment pairing a connector with one of
// these must stay whole.
var activityWords = []string{
	"데이트", "만나", "미팅", "식사", "밥", "점심", "저녁", "영화", "산책",
	"파티", "축하", "쇼핑", "카페", "차", "티타임", "여행", "모임",
	"콜", "통화", "전화", "상담", "면담",
}

// relationNouns are short person/target nouns. A bare relation noun directly
// followed by an activity title is the signature of a remote oversplit.
var relationNouns = []string{
	"엄마", "아빠", "부모님", "부모", "친구", "동생", "형", "누나", "언니",
	"오빠", "선생님", "고객", "사장님", "팀원", "아이", "아기", "딸", "아들",
	"와이프", "남편",
}

// bareRelationNouns is the subset that, standing alone as a whole title,
// gets expanded into an actionable "~에게 연락하기" form.
var bareRelationNouns = []string{
	"엄마", "아빠", "친구", "고객", "팀원", "상사", "와이프", "남편", "부모", "부모님",
}

// scheduleWords are nouns that mark an utterance as schedule-like even when
// no clock time is present.
var scheduleWords = []string{
	"미팅", "회의", "면담", "인터뷰", "약속", "행사", "세미나", "웨비나", "발표",
	"콜", "통화", "브리핑", "킥오프", "데모", "리뷰",
}

var (
	withActivityRe  = regexp.MustCompile(alternation(activityWords))
	relationNounRe  = regexp.MustCompile("^(" + alternation(relationNouns) + ")$")
	bareRelationRe  = regexp.MustCompile("^(" + alternation(bareRelationNouns) + ")$")
	callOrPhoneRe   = regexp.MustCompile(`([가-힣A-Za-z0-9]+)\s*(콜|통화)`)
	actionSuffixRe  = regexp.MustCompile(`(하기|가|기)$`)
	connectorJoinRe = `(?:이랑|랑|하고|과|와)\s*`
)

func alternation(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += "|"
		}
		out += regexp.QuoteMeta(w)
	}
	return out
}
