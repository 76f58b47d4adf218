package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/port"
	"github.com/google/uuid"
)

// ConfirmationService routes decoded webhook events and drives each pending
// job through proposal, path changes and acceptance.
type ConfirmationService struct {
	pending   port.PendingStore
	queue     port.TaskQueue
	messenger port.Messenger
	roots     PathRoots
	newToken  func() string
}

func NewConfirmationService(pending port.PendingStore, queue port.TaskQueue, messenger port.Messenger, roots PathRoots) *ConfirmationService {
	return &ConfirmationService{
		pending:   pending,
		queue:     queue,
		messenger: messenger,
		roots:     roots,
		newToken: func() string {
			id := uuid.NewString()
			return id[:8]
		},
	}
}

func (s *ConfirmationService) Dispatch(ctx context.Context, event domain.Event) {
	switch ev := event.(type) {
	case domain.CallbackAction:
		s.handleCallback(ctx, ev)
	case domain.TextReply:
		s.handleText(ctx, ev)
	case domain.NewVideo:
		s.handleNewVideo(ctx, ev)
	}
}

func (s *ConfirmationService) handleNewVideo(ctx context.Context, ev domain.NewVideo) {
	payload, err := json.Marshal(ev.Payload())
	if err != nil {
		logger.Error.Printf("encode video payload: %v", err)
		return
	}

	taskID, err := s.queue.Enqueue(ctx, domain.TaskKindIngestNew, payload)
	if err != nil {
		logger.Error.Printf("enqueue %q from chat %d: %v", logger.SanitizeForLog(ev.FileName), ev.ChatID, err)
		s.send(ctx, ev.ChatID, textQueueError, domain.MessageOptions{ReplyTo: ev.MessageID})
		return
	}

	logger.Info.Printf("queued %q as task %s", logger.SanitizeForLog(ev.FileName), taskID)
	s.send(ctx, ev.ChatID, textProcessingStarted, domain.MessageOptions{ReplyTo: ev.MessageID})
}

func (s *ConfirmationService) handleCallback(ctx context.Context, ev domain.CallbackAction) {
	action, err := domain.ParseAction(ev.Data)
	if err != nil {
		logger.Warn.Printf("callback %s: %v", ev.QueryID, err)
		s.answer(ctx, ev.QueryID, answerUnknownAction)
		return
	}

	var answer string
	switch action.Kind {
	case domain.ActionAccept:
		answer, err = s.accept(ctx, ev, action)
	case domain.ActionChange:
		answer, err = s.change(ctx, ev, action)
	case domain.ActionBack:
		answer, err = s.back(ctx, ev, action)
	case domain.ActionPath:
		answer, err = s.selectPath(ctx, ev, action)
	case domain.ActionCustom:
		answer, err = s.custom(ctx, ev, action)
	case domain.ActionCopy:
		answer, err = s.copyPath(ctx, ev, action)
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrExpired):
		answer = answerJobNotFound
	case err != nil:
		logger.Error.Printf("callback %q: %v", ev.Data, err)
		answer = answerError
	}
	s.answer(ctx, ev.QueryID, answer)
}

// accept takes the job out of the store before enqueueing, so a double tap
// cannot enqueue twice. The job goes back if the queue refuses it.
func (s *ConfirmationService) accept(ctx context.Context, ev domain.CallbackAction, a domain.Action) (string, error) {
	job, err := s.pending.Take(a.JobID)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(job.Confirmed())
	if err != nil {
		s.pending.Put(job)
		return "", fmt.Errorf("encode confirmed payload: %w", err)
	}
	taskID, err := s.queue.Enqueue(ctx, domain.TaskKindIngestConfirmed, payload)
	if err != nil {
		s.pending.Put(job)
		return "", fmt.Errorf("enqueue confirmed task: %w", err)
	}

	logger.Info.Printf("job %s accepted, task %s -> %s", job.JobID, taskID, logger.SanitizeForLog(job.ProposedPath))
	s.edit(ctx, ev.ChatID, ev.MessageID, acceptedText(job, s.roots), domain.MessageOptions{Markdown: true})
	return answerStarted, nil
}

func (s *ConfirmationService) change(ctx context.Context, ev domain.CallbackAction, a domain.Action) (string, error) {
	job, err := s.pending.Get(a.JobID)
	if err != nil {
		return "", err
	}
	if job.WaitingForCustomPath {
		if job, err = s.pending.SetWaiting(a.JobID, false); err != nil {
			return "", err
		}
	}

	s.edit(ctx, ev.ChatID, ev.MessageID, changeText(job, s.roots), domain.MessageOptions{
		Markdown: true,
		Keyboard: changeKeyboard(a.JobID),
	})
	return answerChoosePath, nil
}

func (s *ConfirmationService) back(ctx context.Context, ev domain.CallbackAction, a domain.Action) (string, error) {
	job, err := s.pending.Get(a.JobID)
	if err != nil {
		return "", err
	}

	s.edit(ctx, ev.ChatID, ev.MessageID, promptText(job, s.roots), domain.MessageOptions{
		Markdown: true,
		Keyboard: confirmKeyboard(a.JobID),
	})
	return "", nil
}

func (s *ConfirmationService) selectPath(ctx context.Context, ev domain.CallbackAction, a domain.Action) (string, error) {
	job, err := s.pending.Get(a.JobID)
	if err != nil {
		return "", err
	}

	name := job.FileName
	if a.PathType == domain.PathTypeGeneral {
		name = s.newToken() + "_" + name
	}

	job, err = s.pending.UpdatePath(a.JobID, filepath.Join(s.roots.ForType(a.PathType), name))
	if err != nil {
		return "", err
	}

	s.edit(ctx, ev.ChatID, ev.MessageID, promptText(job, s.roots), domain.MessageOptions{
		Markdown: true,
		Keyboard: confirmKeyboard(a.JobID),
	})
	return fmt.Sprintf("Path updated to %s", a.PathType), nil
}

func (s *ConfirmationService) custom(ctx context.Context, ev domain.CallbackAction, a domain.Action) (string, error) {
	job, err := s.pending.SetWaiting(a.JobID, true)
	if err != nil {
		return "", err
	}

	s.edit(ctx, ev.ChatID, ev.MessageID, customPathText(job, s.roots), domain.MessageOptions{
		Markdown: true,
		Keyboard: customKeyboard(a.JobID),
	})
	return answerSendPath, nil
}

func (s *ConfirmationService) copyPath(ctx context.Context, ev domain.CallbackAction, a domain.Action) (string, error) {
	job, err := s.pending.Get(a.JobID)
	if err != nil {
		return "", err
	}

	s.send(ctx, ev.ChatID, s.roots.Display(job.ProposedPath), domain.MessageOptions{ReplyTo: ev.MessageID})
	return answerCopied, nil
}

// handleText treats a message as a custom path when the sender has a job
// waiting for one; anything else is ordinary chat and ignored.
func (s *ConfirmationService) handleText(ctx context.Context, ev domain.TextReply) {
	job, err := s.pending.FindWaiting(ev.ChatID, ev.UserID)
	if err != nil {
		return
	}

	rel, err := s.roots.ParseCustom(ev.Text)
	if err != nil {
		logger.Info.Printf("job %s: rejected custom path %q", job.JobID, logger.SanitizeForLog(strings.TrimSpace(ev.Text)))
		s.send(ctx, ev.ChatID, textInvalidPath, domain.MessageOptions{ReplyTo: ev.MessageID, Markdown: true})
		return
	}

	jobID := job.JobID
	job, err = s.pending.ApplyCustomPath(jobID, s.roots.Join(rel))
	if err != nil {
		logger.Warn.Printf("job %s: apply custom path: %v", jobID, err)
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrExpired) {
			s.send(ctx, ev.ChatID, answerJobNotFound, domain.MessageOptions{ReplyTo: ev.MessageID})
		}
		return
	}

	if job.ConfirmationMessageID != 0 {
		s.edit(ctx, job.ChatID, job.ConfirmationMessageID, promptText(job, s.roots), domain.MessageOptions{
			Markdown: true,
			Keyboard: confirmKeyboard(job.JobID),
		})
	}
	s.send(ctx, ev.ChatID, customPathSetText(job.ProposedPath, s.roots), domain.MessageOptions{
		ReplyTo:  ev.MessageID,
		Markdown: true,
	})
}

func (s *ConfirmationService) send(ctx context.Context, chatID int64, text string, opts domain.MessageOptions) {
	if _, err := s.messenger.SendMessage(ctx, chatID, text, opts); err != nil {
		logger.Warn.Printf("send message to chat %d: %v", chatID, err)
	}
}

func (s *ConfirmationService) edit(ctx context.Context, chatID int64, messageID int, text string, opts domain.MessageOptions) {
	if err := s.messenger.EditMessage(ctx, chatID, messageID, text, opts); err != nil {
		logger.Warn.Printf("edit message %d in chat %d: %v", messageID, chatID, err)
	}
}

func (s *ConfirmationService) answer(ctx context.Context, queryID, text string) {
	if err := s.messenger.AnswerCallback(ctx, queryID, text); err != nil {
		logger.Warn.Printf("answer callback %s: %v", queryID, err)
	}
}
