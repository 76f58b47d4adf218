// Package telegram implements the messenger, file resolver and webhook
// bootstrap on top of the Bot API.
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/port"
)

const (
	defaultBaseURL = "https://api.telegram.org"
	requestTimeout = 30 * time.Second
)

type Client struct {
	bot          *tgbotapi.BotAPI
	token        string
	fileEndpoint string
}

// NewClient connects to the Bot API at baseURL, or the public API when
// baseURL is empty. A self-hosted server in local mode hands out absolute
// file paths instead of download links.
func NewClient(token, baseURL string) (*Client, error) {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := &http.Client{Timeout: requestTimeout}
	bot, err := tgbotapi.NewBotAPIWithClient(token, baseURL+"/bot%s/%s", httpClient)
	if err != nil {
		return nil, fmt.Errorf("connect bot api: %w", logger.RedactURLError(err))
	}
	logger.Info.Printf("authorized as @%s", bot.Self.UserName)

	return &Client{
		bot:          bot,
		token:        token,
		fileEndpoint: baseURL + "/file/bot%s/%s",
	}, nil
}

func (c *Client) SendMessage(_ context.Context, chatID int64, text string, opts domain.MessageOptions) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = opts.ReplyTo
	if opts.Markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}
	if kb := keyboard(opts.Keyboard); kb != nil {
		msg.ReplyMarkup = *kb
	}

	sent, err := c.bot.Send(msg)
	if err != nil && opts.Markdown && isEntityError(err) {
		logger.Warn.Printf("chat %d: markdown rejected, resending as plain text", chatID)
		msg.ParseMode = ""
		sent, err = c.bot.Send(msg)
	}
	if err != nil {
		return 0, fmt.Errorf("send message: %w", logger.RedactURLError(err))
	}
	return sent.MessageID, nil
}

func (c *Client) EditMessage(_ context.Context, chatID int64, messageID int, text string, opts domain.MessageOptions) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if opts.Markdown {
		edit.ParseMode = tgbotapi.ModeMarkdown
	}
	edit.ReplyMarkup = keyboard(opts.Keyboard)

	_, err := c.bot.Request(edit)
	if err != nil && opts.Markdown && isEntityError(err) {
		edit.ParseMode = ""
		_, err = c.bot.Request(edit)
	}
	if err != nil && strings.Contains(err.Error(), "message is not modified") {
		return nil
	}
	if err != nil {
		return fmt.Errorf("edit message: %w", logger.RedactURLError(err))
	}
	return nil
}

func (c *Client) AnswerCallback(_ context.Context, queryID, text string) error {
	if _, err := c.bot.Request(tgbotapi.NewCallback(queryID, text)); err != nil {
		return fmt.Errorf("answer callback: %w", logger.RedactURLError(err))
	}
	return nil
}

func (c *Client) ResolveFile(_ context.Context, fileID string) (domain.FileSource, error) {
	file, err := c.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return domain.FileSource{}, fmt.Errorf("get file: %w", logger.RedactURLError(err))
	}
	if file.FilePath == "" {
		return domain.FileSource{}, fmt.Errorf("get file %s: %w: empty file path", fileID, domain.ErrUnsupportedSource)
	}

	if filepath.IsAbs(file.FilePath) {
		return domain.FileSource{Kind: domain.SourceLocal, Location: file.FilePath}, nil
	}
	return domain.FileSource{
		Kind:     domain.SourceRemote,
		Location: fmt.Sprintf(c.fileEndpoint, c.token, file.FilePath),
	}, nil
}

// EnsureWebhook registers url unless it is already the active webhook.
func (c *Client) EnsureWebhook(url string) error {
	info, err := c.bot.GetWebhookInfo()
	if err != nil {
		return fmt.Errorf("get webhook info: %w", logger.RedactURLError(err))
	}
	if info.URL == url {
		logger.Info.Printf("webhook already set to %s", url)
		return nil
	}

	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return fmt.Errorf("build webhook: %w", err)
	}
	if _, err := c.bot.Request(wh); err != nil {
		return fmt.Errorf("set webhook: %w", logger.RedactURLError(err))
	}
	logger.Info.Printf("webhook set to %s", url)
	return nil
}

func keyboard(rows [][]domain.Button) *tgbotapi.InlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}
	kbRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		kbRows = append(kbRows, tgbotapi.NewInlineKeyboardRow(buttons...))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(kbRows...)
	return &kb
}

func isEntityError(err error) bool {
	return strings.Contains(err.Error(), "can't parse entities")
}

var (
	_ port.Messenger    = (*Client)(nil)
	_ port.FileResolver = (*Client)(nil)
)
