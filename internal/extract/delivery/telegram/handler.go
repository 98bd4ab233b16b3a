package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"checkey/internal/digest"
	"checkey/internal/extract"
	"checkey/internal/model"
	"checkey/internal/task"
	"checkey/pkg/krtime"
	pkgLog "checkey/pkg/log"
	pkgResponse "checkey/pkg/response"
	pkgTelegram "checkey/pkg/telegram"
)

type handler struct {
	l         pkgLog.Logger
	extractUC extract.UseCase
	taskUC    task.UseCase
	digestUC  digest.UseCase
	bot       *pkgTelegram.Bot
	resolver  *krtime.Resolver
	guard     *admissionGuard
	cards     *cardCache
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an answer within a few seconds and
// the extraction pipeline may take longer than that.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "요청을 처리하는 중에 문제가 생겼어요. 다시 한 번 보내주세요.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" || msg.From == nil {
		return nil
	}
	chatID := msg.Chat.ID

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	// ---- Built-in commands ----
	switch text {
	case "/start":
		return h.bot.SendMessageWithMode(chatID,
			"👋 *체키*에 오신 걸 환영해요!\n\n할 일이나 일정을 평소 말하듯 보내주세요. 제가 정리해서 확인 카드를 보여드릴게요.\n\n_예: \"내일 오후 3시에 팀 미팅, 보고서 작성, 엄마랑 저녁\"_\n\n/오늘 을 보내면 오늘의 할 일 요약을 받을 수 있어요.",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(chatID,
			"*사용법*\n\n1. 할 일이나 일정을 자연스럽게 입력하세요.\n2. 확인 카드가 오면 \"저장\" 또는 \"취소\"로 답하세요.\n3. /오늘 으로 오늘의 할 일 요약을 확인하세요.",
			"Markdown",
		)
	case "/오늘", "/today":
		return h.sendDigest(ctx, sc, chatID)
	case "저장":
		return h.confirmPending(ctx, sc, chatID)
	case "취소":
		if _, ok := h.cards.Get(chatID); !ok {
			return h.bot.SendMessage(chatID, "취소할 카드가 없어요.")
		}
		h.cards.Remove(chatID)
		return h.bot.SendMessage(chatID, "취소했어요. 다른 할 일이 있으면 보내주세요!")
	}

	// ---- Admission guard ----
	if !h.guard.Allow(chatID) {
		return h.bot.SendMessage(chatID, "조금 천천히 보내주세요 🙏")
	}
	if !h.guard.Begin(chatID) {
		return h.bot.SendMessage(chatID, "이전 요청을 처리하는 중이에요. 잠시만요!")
	}
	defer h.guard.End(chatID)

	if err := h.bot.SendMessage(chatID, "⏳ 분석 중..."); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send ack message: %v", err)
	}

	entity, err := h.extractUC.Extract(ctx, sc, extract.ExtractInput{RawText: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Extract failed: %v", err)
		return h.bot.SendMessage(chatID, "이해하지 못했어요. 다시 한 번 적어주시겠어요?")
	}

	card := h.extractUC.ProjectToCard(entity)
	if card.Kind == extract.KindOther {
		return h.bot.SendMessage(chatID, "일정이나 할 일을 찾지 못했어요. 조금 더 구체적으로 적어주시겠어요?")
	}

	h.cards.Put(chatID, card)
	return h.bot.SendMessageWithMode(chatID, renderCard(card, h.resolver.Location()), "Markdown")
}

// confirmPending saves the chat's pending card.
func (h *handler) confirmPending(ctx context.Context, sc model.Scope, chatID int64) error {
	card, ok := h.cards.Get(chatID)
	if !ok {
		return h.bot.SendMessage(chatID, "저장할 카드가 없어요. 먼저 할 일이나 일정을 보내주세요.")
	}

	out, err := h.taskUC.ConfirmCard(ctx, sc, task.ConfirmInput{Card: card})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: ConfirmCard failed: %v", err)
		if errors.Is(err, task.ErrNothingToSave) {
			h.cards.Remove(chatID)
			return h.bot.SendMessage(chatID, "저장할 내용이 없었어요.")
		}
		return h.bot.SendMessage(chatID, "저장에 실패했어요. 잠시 후 다시 시도해주세요.")
	}

	h.cards.Remove(chatID)
	return h.bot.SendMessage(chatID, renderSaved(out, h.resolver.Location()))
}

// sendDigest replies with today's bucketed summary. Missing estimates are
// backfilled first so the buckets reflect stored values.
func (h *handler) sendDigest(ctx context.Context, sc model.Scope, chatID int64) error {
	if _, err := h.taskUC.BackfillEstimates(ctx, sc); err != nil {
		h.l.Warnf(ctx, "telegram handler: estimate backfill failed (non-fatal): %v", err)
	}

	d, err := h.digestUC.BuildToday(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: BuildToday failed: %v", err)
		return h.bot.SendMessage(chatID, "요약을 만들지 못했어요. 잠시 후 다시 시도해주세요.")
	}
	if d.Empty() {
		return h.bot.SendMessage(chatID, d.CoachLine)
	}
	return h.bot.SendMessage(chatID, d.CoachLine+"\n\n"+d.Message)
}
