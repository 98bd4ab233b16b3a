package usecase

import (
	"context"
	"time"

	"checkey/internal/model"
	"checkey/pkg/gcalendar"
)

const defaultEventDurationMinutes = 60

// tryCreateCalendarEvent exports a saved schedule to Google Calendar.
// Returns the event HTML link, or empty string on failure; export is
// best-effort and never blocks the save.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, schedule model.Schedule) string {
	if uc.calendar == nil || schedule.StartTime == nil {
		return ""
	}

	startTime := *schedule.StartTime
	endTime := startTime.Add(defaultEventDurationMinutes * time.Minute)

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:      "primary",
		Summary:         schedule.Title,
		StartTime:       startTime,
		EndTime:         endTime,
		Timezone:        uc.timezone,
		ReminderMinutes: schedule.RemindMinutesBefore,
	})
	if err != nil {
		uc.l.Warnf(ctx, "ConfirmCard: calendar export failed for %q (non-fatal): %v", schedule.Title, err)
		return ""
	}
	return event.HtmlLink
}
