package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"checkey/internal/digest"
	"checkey/internal/model"
)

const (
	// missingEstimateMinutes is assumed when a task carries no estimate.
	missingEstimateMinutes = 5

	// maxTasksPerBucket caps how many tasks render under one bucket label.
	maxTasksPerBucket = 5

	emptyDigestLine = "오늘 처리할 할 일이 없어요. 잘 하고 있어요! 🙌"
)

// BuildToday assembles the user's digest: pending tasks due today or earlier
// (plus undated ones), bucketed by estimated duration.
func (uc *implUseCase) BuildToday(ctx context.Context, sc model.Scope) (digest.Digest, error) {
	pending, err := uc.tasks.ListPending(ctx, sc)
	if err != nil {
		return digest.Digest{}, fmt.Errorf("load pending tasks: %w", err)
	}

	// Boundary: anything due before tomorrow's midnight counts as today.
	endOfToday := uc.resolver.StartOfDay(uc.now()).AddDate(0, 0, 1)
	candidates := selectCandidates(pending, endOfToday)

	d := digest.Digest{Buckets: bucketize(candidates)}
	d.CoachLine = buildCoachLine(d.Buckets)
	d.Message = uc.buildMessage(d.Buckets)

	uc.l.Debugf(ctx, "BuildToday: user=%s candidates=%d buckets=%d",
		sc.UserID, len(candidates), len(d.Buckets))
	return d, nil
}

// selectCandidates keeps pending tasks due before the boundary or without a
// due date at all.
func selectCandidates(tasks []model.Task, endOfToday time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Pending() {
			continue
		}
		if t.DueDate != nil && !t.DueDate.Before(endOfToday) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func estimateOrDefault(t model.Task) int {
	if t.EstimatedDurationMinutes > 0 {
		return t.EstimatedDurationMinutes
	}
	return missingEstimateMinutes
}

func bucketLabel(minutes int) string {
	switch {
	case minutes <= 5:
		return digest.BucketTiny
	case minutes <= 10:
		return digest.BucketShort
	case minutes <= 30:
		return digest.BucketMedium
	case minutes <= 60:
		return digest.BucketLong
	default:
		return digest.BucketHuge
	}
}

// bucketize groups candidates by duration bucket in the fixed order, sorting
// each bucket due-date ascending (undated last) then most-recently-updated
// first. Empty buckets are omitted.
func bucketize(tasks []model.Task) []digest.Bucket {
	groups := make(map[string][]model.Task, len(digest.BucketOrder))
	for _, t := range tasks {
		label := bucketLabel(estimateOrDefault(t))
		groups[label] = append(groups[label], t)
	}

	buckets := make([]digest.Bucket, 0, len(groups))
	for _, label := range digest.BucketOrder {
		group := groups[label]
		if len(group) == 0 {
			continue
		}
		sortWithinBucket(group)
		buckets = append(buckets, digest.Bucket{Label: label, Tasks: group})
	}
	return buckets
}

func sortWithinBucket(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case a.DueDate == nil && b.DueDate != nil:
			return false
		case a.DueDate != nil && b.DueDate == nil:
			return true
		case a.DueDate != nil && b.DueDate != nil && !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})
}

func buildCoachLine(buckets []digest.Bucket) string {
	if len(buckets) == 0 {
		return emptyDigestLine
	}
	parts := make([]string, 0, len(buckets))
	for _, b := range buckets {
		parts = append(parts, fmt.Sprintf("%s %d개", b.Label, len(b.Tasks)))
	}
	return fmt.Sprintf("지금 처리하면 좋은 일: %s. 짧은 일부터 가볍게 시작해요!", strings.Join(parts, ", "))
}

func (uc *implUseCase) buildMessage(buckets []digest.Bucket) string {
	if len(buckets) == 0 {
		return ""
	}

	loc := uc.resolver.Location()
	var lines []string
	for _, b := range buckets {
		lines = append(lines, fmt.Sprintf("• %s", b.Label))
		shown := b.Tasks
		if len(shown) > maxTasksPerBucket {
			shown = shown[:maxTasksPerBucket]
		}
		for _, t := range shown {
			line := fmt.Sprintf("   - %s · %d분", t.Title, estimateOrDefault(t))
			if t.DueDate != nil {
				line += fmt.Sprintf(" (마감 %s)", t.DueDate.In(loc).Format("1/2 15:04"))
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
