package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"checkey/internal/digest"
	"checkey/internal/extract"
	"checkey/internal/task"
	"checkey/pkg/krtime"
	pkgLog "checkey/pkg/log"
	pkgTelegram "checkey/pkg/telegram"
)

const (
	pendingCardTTL  = 10 * time.Minute
	pendingCardSize = 1024

	rateLimitPerMinute = 10
	rateLimitBurst     = 3
	rateLimiterTTL     = 30 * time.Minute
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	extractUC extract.UseCase,
	taskUC task.UseCase,
	digestUC digest.UseCase,
	bot *pkgTelegram.Bot,
	resolver *krtime.Resolver,
) Handler {
	return &handler{
		l:         l,
		extractUC: extractUC,
		taskUC:    taskUC,
		digestUC:  digestUC,
		bot:       bot,
		resolver:  resolver,
		guard:     newAdmissionGuard(rateLimitPerMinute, rateLimitBurst, rateLimiterTTL),
		cards:     newCardCache(pendingCardSize, pendingCardTTL),
	}
}
