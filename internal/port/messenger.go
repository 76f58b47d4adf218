package port

import (
	"context"

	"github.com/bnema/mediaferry/internal/domain"
)

type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string, opts domain.MessageOptions) (int, error)
	EditMessage(ctx context.Context, chatID int64, messageID int, text string, opts domain.MessageOptions) error
	AnswerCallback(ctx context.Context, queryID string, text string) error
}

type FileResolver interface {
	ResolveFile(ctx context.Context, fileID string) (domain.FileSource, error)
}
