package cron

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"checkey/internal/digest"
	"checkey/internal/model"
	"checkey/internal/task"
	"checkey/internal/task/repository"
	pkgLog "checkey/pkg/log"
	pkgTelegram "checkey/pkg/telegram"
)

// telegramUserPrefix marks user IDs created by the Telegram surface; the
// numeric remainder is the chat to deliver to.
const telegramUserPrefix = "telegram_"

// Job delivers the daily digest to every user with pending tasks.
type Job struct {
	l        pkgLog.Logger
	digestUC digest.UseCase
	taskUC   task.UseCase
	repo     repository.Repository
	bot      *pkgTelegram.Bot
	cron     *cron.Cron
}

// New creates the digest cron job in the given location.
func New(
	l pkgLog.Logger,
	digestUC digest.UseCase,
	taskUC task.UseCase,
	repo repository.Repository,
	bot *pkgTelegram.Bot,
	loc *time.Location,
) *Job {
	return &Job{
		l:        l,
		digestUC: digestUC,
		taskUC:   taskUC,
		repo:     repo,
		bot:      bot,
		cron:     cron.New(cron.WithLocation(loc), cron.WithSeconds()),
	}
}

// ScheduleDaily registers the digest run at the given HH:MM local time and
// starts the scheduler.
func (j *Job) ScheduleDaily(timeStr string) error {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return err
	}
	if _, err := j.cron.AddFunc(spec, j.RunOnce); err != nil {
		return fmt.Errorf("register digest job: %w", err)
	}
	j.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (j *Job) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

// RunOnce fans the digest out to every Telegram user with pending tasks.
// Per-user failures are logged and skipped.
func (j *Job) RunOnce() {
	ctx := context.Background()

	userIDs, err := j.repo.ListTaskUserIDs(ctx)
	if err != nil {
		j.l.Errorf(ctx, "digest job: failed to list users: %v", err)
		return
	}

	sent := 0
	for _, userID := range userIDs {
		chatID, ok := telegramChatID(userID)
		if !ok {
			continue
		}

		sc := model.Scope{UserID: userID}

		if _, err := j.taskUC.BackfillEstimates(ctx, sc); err != nil {
			j.l.Warnf(ctx, "digest job: estimate backfill failed for %s (non-fatal): %v", userID, err)
		}

		d, err := j.digestUC.BuildToday(ctx, sc)
		if err != nil {
			j.l.Errorf(ctx, "digest job: BuildToday failed for %s: %v", userID, err)
			continue
		}
		if d.Empty() {
			continue
		}

		if err := j.bot.SendMessage(chatID, d.CoachLine+"\n\n"+d.Message); err != nil {
			j.l.Errorf(ctx, "digest job: send failed for %s: %v", userID, err)
			continue
		}
		sent++
	}

	j.l.Infof(ctx, "digest job: delivered %d digest(s) to %d user(s)", sent, len(userIDs))
}

func telegramChatID(userID string) (int64, bool) {
	if !strings.HasPrefix(userID, telegramUserPrefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(userID, telegramUserPrefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	// cron format: second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
