package usecase

import (
	"context"
	"fmt"
	"strings"

	"checkey/internal/extract"
	"checkey/internal/model"
	"checkey/internal/task"
	"checkey/internal/task/repository"
)

// ConfirmCard persists a confirmed card: the schedule part when a start time
// exists, and one task row per fragment. Individual row failures are logged
// and skipped; the call fails only when nothing at all could be saved.
func (uc *implUseCase) ConfirmCard(ctx context.Context, sc model.Scope, input task.ConfirmInput) (task.ConfirmOutput, error) {
	if sc.UserID == "" {
		return task.ConfirmOutput{}, task.ErrNotAuthenticated
	}

	card := input.Card
	fragments := usableFragments(card)
	hasSchedule := card.StartTime != nil

	if !hasSchedule && len(fragments) == 0 {
		return task.ConfirmOutput{}, task.ErrNothingToSave
	}

	uc.l.Infof(ctx, "ConfirmCard: user=%s kind=%s tasks=%d schedule=%t",
		sc.UserID, card.Kind, len(fragments), hasSchedule)

	out := task.ConfirmOutput{}
	var firstErr error

	if hasSchedule {
		title := card.Title
		if title == "" {
			title = "일정"
		}
		schedule, err := uc.repo.CreateSchedule(ctx, repository.CreateScheduleOptions{
			UserID:    sc.UserID,
			Title:     title,
			StartTime: card.StartTime,
		})
		if err != nil {
			uc.l.Errorf(ctx, "ConfirmCard: failed to create schedule %q: %v", title, err)
			firstErr = err
		} else {
			out.Schedule = &schedule
			out.CalendarLink = uc.tryCreateCalendarEvent(ctx, schedule)
		}
	}

	for _, frag := range fragments {
		minutes, source := uc.resolveEstimate(card, frag, len(fragments))
		dueDate := frag.DueDate
		if dueDate == nil {
			dueDate = card.DueDate
		}

		created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
			UserID:                   sc.UserID,
			Title:                    frag.Title,
			DueDate:                  dueDate,
			EstimatedDurationMinutes: minutes,
			EstimateSource:           source,
		})
		if err != nil {
			uc.l.Errorf(ctx, "ConfirmCard: failed to create task %q: %v", frag.Title, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out.Tasks = append(out.Tasks, created)
	}

	if out.Schedule == nil && len(out.Tasks) == 0 {
		return task.ConfirmOutput{}, fmt.Errorf("failed to save card: %w", firstErr)
	}
	return out, nil
}

// usableFragments returns the card's non-blank task fragments, falling back
// to a single fragment built from the card headline for task-kind cards that
// arrived without a list.
func usableFragments(card extract.ConfirmationCard) []extract.TaskFragment {
	out := make([]extract.TaskFragment, 0, len(card.Tasks))
	for _, frag := range card.Tasks {
		if strings.TrimSpace(frag.Title) != "" {
			out = append(out, frag)
		}
	}
	if len(out) > 0 {
		return out
	}

	if (card.Kind == extract.KindTask || card.Kind == extract.KindBoth) && strings.TrimSpace(card.Title) != "" {
		return []extract.TaskFragment{{
			Title:                    card.Title,
			DueDate:                  card.DueDate,
			EstimatedDurationMinutes: card.EstimatedDurationMinutes,
		}}
	}
	return nil
}

// resolveEstimate picks the duration for one fragment: its own value first,
// the card-level value for single-task cards, and the heuristic last.
func (uc *implUseCase) resolveEstimate(card extract.ConfirmationCard, frag extract.TaskFragment, fragmentCount int) (int, string) {
	if frag.EstimatedDurationMinutes != nil && *frag.EstimatedDurationMinutes > 0 {
		return *frag.EstimatedDurationMinutes, model.EstimateSourceModel
	}
	if fragmentCount == 1 && card.EstimatedDurationMinutes != nil && *card.EstimatedDurationMinutes > 0 {
		return *card.EstimatedDurationMinutes, model.EstimateSourceModel
	}
	return uc.estimator.EstimateDuration(frag.Title), model.EstimateSourceHeuristic
}
