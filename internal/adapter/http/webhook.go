package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/bnema/mediaferry/internal/adapter/http/validation"
	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/infrastructure/metrics"
)

const maxUpdateBytes = 1 << 20

type Dispatcher interface {
	Dispatch(ctx context.Context, event domain.Event)
}

var validate = validator.New()

// Webhook receives Bot API updates. It always answers 200 so the Bot API
// never redelivers; problems are reported to the user in chat instead.
func Webhook(dispatcher Dispatcher, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUpdateBytes)

		var update tgbotapi.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			logger.Warn.Printf("webhook: undecodable update: %v", err)
			metrics.WebhookEventsTotal.WithLabelValues("invalid").Inc()
			writeJSON(w, http.StatusOK, statusOK)
			return
		}

		event := DecodeUpdate(update, now())
		if err := validate.Struct(event); err != nil {
			logger.Warn.Printf("webhook: update %d rejected: %v", update.UpdateID, err)
			event = domain.Other{}
		}
		metrics.WebhookEventsTotal.WithLabelValues(eventType(event)).Inc()

		dispatch(context.WithoutCancel(r.Context()), dispatcher, update.UpdateID, event)
		writeJSON(w, http.StatusOK, statusOK)
	}
}

// dispatch contains panics from the router so the update is still acknowledged.
func dispatch(ctx context.Context, dispatcher Dispatcher, updateID int, event domain.Event) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.L().Error("webhook: dispatch panicked",
				zap.Int("update_id", updateID),
				zap.String("event", eventType(event)),
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
		}
	}()
	dispatcher.Dispatch(ctx, event)
}

// DecodeUpdate turns an update into exactly one event. Callback queries take
// precedence, then plain text, then videos and video documents.
func DecodeUpdate(u tgbotapi.Update, now time.Time) domain.Event {
	if cq := u.CallbackQuery; cq != nil {
		ev := domain.CallbackAction{QueryID: cq.ID, Data: cq.Data}
		if cq.From != nil {
			ev.UserID = cq.From.ID
		}
		if cq.Message != nil {
			ev.MessageID = cq.Message.MessageID
			if cq.Message.Chat != nil {
				ev.ChatID = cq.Message.Chat.ID
			}
		}
		return ev
	}

	msg := u.Message
	if msg == nil || msg.Chat == nil {
		return domain.Other{}
	}
	var userID int64
	if msg.From != nil {
		userID = msg.From.ID
	}

	switch {
	case msg.Text != "" && msg.Video == nil && msg.Document == nil:
		return domain.TextReply{Text: msg.Text, ChatID: msg.Chat.ID, UserID: userID, MessageID: msg.MessageID}
	case msg.Video != nil:
		return newVideo(msg, userID, msg.Video.FileID, msg.Video.FileName, msg.Video.MimeType, now)
	case msg.Document != nil && domain.IsVideoContainer(msg.Document.MimeType):
		return newVideo(msg, userID, msg.Document.FileID, msg.Document.FileName, msg.Document.MimeType, now)
	default:
		return domain.Other{}
	}
}

func newVideo(msg *tgbotapi.Message, userID int64, fileID, fileName, mimeType string, now time.Time) domain.NewVideo {
	return domain.NewVideo{
		FileID:    fileID,
		FileName:  validation.FileNameFor(fileName, msg.Caption, mimeType, now),
		MimeType:  mimeType,
		Caption:   msg.Caption,
		ChatID:    msg.Chat.ID,
		UserID:    userID,
		MessageID: msg.MessageID,
	}
}

func eventType(ev domain.Event) string {
	switch ev.(type) {
	case domain.NewVideo:
		return "video"
	case domain.CallbackAction:
		return "callback"
	case domain.TextReply:
		return "text"
	default:
		return "other"
	}
}
