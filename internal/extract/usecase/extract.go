package usecase

import (
	"context"
	"strings"
	"time"

	"checkey/internal/extract"
	"checkey/internal/model"
)

const scheduleFallbackTitle = "일정"

// Extract runs the full pipeline for one utterance: remote suggestion,
// local temporal fallback, oversplit repair, normalization and the
// schedule-without-time rescue. The remote call is advisory; every failure
// degrades to the local heuristics instead of failing the request.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input extract.ExtractInput) (extract.ParsedEntity, error) {
	raw := strings.TrimSpace(input.RawText)
	if raw == "" {
		return extract.ParsedEntity{}, extract.ErrEmptyUtterance
	}

	now := uc.now()
	uc.l.Debugf(ctx, "extract.usecase.Extract: user=%s chars=%d", sc.UserID, len(raw))

	sug := uc.requestSuggestion(ctx, raw, now)
	return uc.reconcile(raw, sug, now), nil
}

func (uc *implUseCase) requestSuggestion(ctx context.Context, raw string, now time.Time) suggestion {
	if uc.llm == nil {
		return suggestion{}
	}
	content, err := uc.llm.Complete(ctx, extractionSystemPrompt, buildUserPrompt(raw, now))
	if err != nil {
		uc.l.Warnf(ctx, "extract.usecase.Extract: remote suggestion unavailable, using local rules: %v", err)
		return suggestion{}
	}
	return parseSuggestion(content)
}

// reconcile merges the remote suggestion with the local rule cascade into
// the canonical entity.
func (uc *implUseCase) reconcile(raw string, sug suggestion, now time.Time) extract.ParsedEntity {
	loc := uc.resolver.Location()

	kind := extract.Kind(sug.Type)
	title := strings.TrimSpace(string(sug.Title))
	startTime := parseWhen(string(sug.StartTime), loc)
	dueDate := parseWhen(string(sug.DueDate), loc)
	tasks := fragmentsFromSuggestion(sug.Tasks, loc)

	var estimate *int
	if n, ok := sug.EstimatedDurationMinutes.Minutes(); ok {
		estimate = &n
	}

	// Temporal fallback: the local resolver fills times the remote missed,
	// but only when the utterance carries an explicit clock marker.
	if startTime == nil {
		if t, ok := uc.resolver.ResolveDayTime(raw, now); ok {
			startTime = &t
		}
	}
	if startTime == nil && dueDate == nil {
		if day, ok := uc.resolver.ResolveDay(raw, now); ok {
			end := uc.resolver.EndOfDay(day)
			dueDate = &end
			kind = extract.KindTask
		}
	}

	// Oversplit repair: when the remote list reads like a companionship
	// phrase chopped in two, re-segment from the raw text instead.
	if looksOversplit(fragmentTitles(tasks), raw) {
		tasks = fragmentsFromTitles(segmentUtterance(raw))
	}

	// Last resort: no schedule and no usable task titles means the local
	// segmenter decides, with the whole utterance as the floor.
	if startTime == nil && allTitlesBlank(tasks) {
		parts := segmentUtterance(raw)
		if len(parts) == 0 {
			parts = []string{raw}
		}
		tasks = fragmentsFromTitles(parts)
		if title == "" {
			title = tasks[0].Title
		}
		kind = extract.KindTask
		if dueDate == nil {
			if day, ok := uc.resolver.ResolveDay(raw, now); ok {
				end := uc.resolver.EndOfDay(day)
				dueDate = &end
			}
		}
	}

	if startTime != nil && title == "" {
		if title = deriveScheduleTitle(raw); title == "" {
			title = scheduleFallbackTitle
		}
	}

	tasks = normalizeFragments(tasks)

	// Schedule-word rescue: "내일 고객 미팅" has no clock time, so it is not
	// a schedule, but the meeting itself must survive as a dated task.
	if startTime == nil && containsScheduleWord(raw) {
		if day, ok := uc.resolver.ResolveDay(raw, now); ok {
			end := uc.resolver.EndOfDay(day)
			guessed := deriveScheduleTitle(raw)
			if guessed != "" && !anyTitleContains(tasks, guessed) {
				frag := extract.TaskFragment{Title: guessed, DueDate: &end}
				tasks = append([]extract.TaskFragment{frag}, tasks...)
			}
			kind = extract.KindTask
			if dueDate == nil {
				dueDate = &end
			}
		}
	}

	switch kind {
	case extract.KindSchedule, extract.KindTask, extract.KindBoth:
	default:
		kind = extract.KindOther
	}
	if kind == extract.KindBoth && (startTime == nil || len(tasks) == 0) {
		switch {
		case startTime != nil:
			kind = extract.KindSchedule
		case len(tasks) > 0:
			kind = extract.KindTask
		default:
			kind = extract.KindOther
		}
	}

	return extract.ParsedEntity{
		Kind:                     kind,
		Title:                    title,
		StartTime:                startTime,
		DueDate:                  dueDate,
		EstimatedDurationMinutes: estimate,
		Tasks:                    tasks,
	}
}

// ProjectToCard re-derives the presented kind from what the entity actually
// holds and backfills the headline title from the first task.
func (uc *implUseCase) ProjectToCard(e extract.ParsedEntity) extract.ConfirmationCard {
	card := extract.ConfirmationCard{
		Kind:                     e.Kind,
		Title:                    e.Title,
		StartTime:                e.StartTime,
		DueDate:                  e.DueDate,
		EstimatedDurationMinutes: e.EstimatedDurationMinutes,
		Tasks:                    e.Tasks,
	}

	hasSchedule := card.StartTime != nil
	hasTasks := len(card.Tasks) > 0
	switch {
	case hasSchedule && hasTasks:
		card.Kind = extract.KindBoth
	case hasSchedule:
		card.Kind = extract.KindSchedule
	case hasTasks || card.Kind == extract.KindTask:
		card.Kind = extract.KindTask
	default:
		card.Kind = extract.KindOther
	}

	if card.Title == "" && hasTasks {
		card.Title = card.Tasks[0].Title
	}
	return card
}

func fragmentsFromSuggestion(in []suggestedTask, loc *time.Location) []extract.TaskFragment {
	out := make([]extract.TaskFragment, 0, len(in))
	for _, st := range in {
		frag := extract.TaskFragment{
			Title:   strings.TrimSpace(st.Title),
			DueDate: parseWhen(st.DueDate, loc),
		}
		if n, ok := st.Minutes.Minutes(); ok {
			frag.EstimatedDurationMinutes = &n
		}
		out = append(out, frag)
	}
	return out
}

func fragmentsFromTitles(titles []string) []extract.TaskFragment {
	out := make([]extract.TaskFragment, 0, len(titles))
	for _, t := range titles {
		out = append(out, extract.TaskFragment{Title: t})
	}
	return out
}

// normalizeFragments cleans every title, drops fragments whose title
// normalized away, and dedupes by title keeping the first occurrence.
func normalizeFragments(in []extract.TaskFragment) []extract.TaskFragment {
	seen := make(map[string]bool, len(in))
	out := make([]extract.TaskFragment, 0, len(in))
	for _, frag := range in {
		frag.Title = normalizeTitle(frag.Title)
		if frag.Title == "" || seen[frag.Title] {
			continue
		}
		seen[frag.Title] = true
		out = append(out, frag)
	}
	return out
}

func fragmentTitles(in []extract.TaskFragment) []string {
	out := make([]string, 0, len(in))
	for _, frag := range in {
		if t := strings.TrimSpace(frag.Title); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func allTitlesBlank(in []extract.TaskFragment) bool {
	return len(fragmentTitles(in)) == 0
}

func anyTitleContains(in []extract.TaskFragment, sub string) bool {
	for _, frag := range in {
		if strings.Contains(frag.Title, sub) {
			return true
		}
	}
	return false
}
