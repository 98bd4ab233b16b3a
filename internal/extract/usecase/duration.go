package usecase

import "regexp"

// Baseline estimate for short, low-effort actions.
const defaultEstimateMinutes = 5

var (
	quickActionRe = regexp.MustCompile(`정리|확인|전화|통화|콜|메일|결제|구매|예약`)
	focusActionRe = regexp.MustCompile(`작성|보고|제출|면접|준비|정돈`)
)

// estimateDuration maps a task title to an estimated effort in minutes.
// First matching rule wins.
func estimateDuration(title string) int {
	switch {
	case quickActionRe.MatchString(title):
		return 10
	case focusActionRe.MatchString(title):
		return 25
	}
	return defaultEstimateMinutes
}

// EstimateDuration implements extract.UseCase.
func (uc *implUseCase) EstimateDuration(title string) int {
	return estimateDuration(title)
}
