package usecase

import "time"

// extractionSystemPrompt is the fixed instruction sent with every utterance.
// It describes the four-way classification, the conservative duration set and
// the split-protection rules; the reconciler still re-checks all of it.
const extractionSystemPrompt = `당신은 한국어 일정/할일 파서입니다.
JSON만 반환하세요.
- type: schedule|task|both|other
- startTime: ISO8601 (시간이 명확할 때만)
- dueDate: ISO8601
- tasks: 사용자가 적은 문장에서 "할 일"을 나열한 경우만 분리합니다.
  * 기본 분리 기준: 줄바꿈, 쉼표, 세미콜론, 슬래시, "그리고", "또", "겸"
  * 다음은 분리 금지: "와/과/랑/하고/및" (동반/대상 연결에 자주 쓰임)
  * 특히 "X랑/와/과/하고 + 데이트/만나/식사/영화/산책/파티/축하/통화/콜…"은 하나의 할 일로 남깁니다.
- estimatedDurationMinutes: 5,10,15,20,25,30,45,60 중 보수적으로 추정`

// buildUserPrompt packages the utterance with the current time so the model
// can resolve relative date words itself.
func buildUserPrompt(text string, now time.Time) string {
	return "현재 시각: " + now.Format(time.RFC3339) + "\n\n사용자 입력:\n" + text
}
