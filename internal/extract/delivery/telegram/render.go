package telegram

import (
	"fmt"
	"strings"
	"time"

	"checkey/internal/extract"
	"checkey/internal/task"
)

const timeFormat = "1/2 15:04"

func kindLabel(kind extract.Kind) string {
	switch kind {
	case extract.KindSchedule:
		return "일정"
	case extract.KindBoth:
		return "일정 + 할 일"
	default:
		return "할 일"
	}
}

// renderCard formats a confirmation card for the chat, ending with the
// save/cancel instruction.
func renderCard(card extract.ConfirmationCard, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("📌 *확인해 주세요*\n")
	fmt.Fprintf(&b, "종류: %s\n", kindLabel(card.Kind))
	if card.Title != "" {
		fmt.Fprintf(&b, "제목: %s\n", card.Title)
	}
	if card.StartTime != nil {
		fmt.Fprintf(&b, "시작: %s\n", card.StartTime.In(loc).Format(timeFormat))
	}
	if card.DueDate != nil {
		fmt.Fprintf(&b, "마감: %s\n", card.DueDate.In(loc).Format(timeFormat))
	}
	if card.EstimatedDurationMinutes != nil && *card.EstimatedDurationMinutes > 0 {
		fmt.Fprintf(&b, "예상 소요: %d분\n", *card.EstimatedDurationMinutes)
	}

	if len(card.Tasks) > 0 {
		b.WriteString("할 일:\n")
		for i, frag := range card.Tasks {
			fmt.Fprintf(&b, " %d. %s", i+1, frag.Title)
			var extras []string
			if frag.EstimatedDurationMinutes != nil && *frag.EstimatedDurationMinutes > 0 {
				extras = append(extras, fmt.Sprintf("%d분", *frag.EstimatedDurationMinutes))
			}
			if frag.DueDate != nil {
				extras = append(extras, fmt.Sprintf("마감 %s", frag.DueDate.In(loc).Format(timeFormat)))
			}
			if len(extras) > 0 {
				fmt.Fprintf(&b, " (%s)", strings.Join(extras, ", "))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n저장하려면 \"저장\", 취소하려면 \"취소\"를 보내주세요.")
	return b.String()
}

// renderSaved summarizes what a confirmation actually created.
func renderSaved(out task.ConfirmOutput, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("✅ 저장했어요!\n")

	if out.Schedule != nil {
		fmt.Fprintf(&b, "📅 일정: %s", out.Schedule.Title)
		if out.Schedule.StartTime != nil {
			fmt.Fprintf(&b, " (%s, %d분 전 알림)",
				out.Schedule.StartTime.In(loc).Format(timeFormat), out.Schedule.RemindMinutesBefore)
		}
		b.WriteString("\n")
		if out.CalendarLink != "" {
			fmt.Fprintf(&b, "   🔗 %s\n", out.CalendarLink)
		}
	}

	for i, t := range out.Tasks {
		fmt.Fprintf(&b, "📝 할 일 %d: %s · %d분", i+1, t.Title, t.EstimatedDurationMinutes)
		if t.DueDate != nil {
			fmt.Fprintf(&b, " (마감 %s)", t.DueDate.In(loc).Format(timeFormat))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
