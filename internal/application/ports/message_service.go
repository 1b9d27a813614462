package ports

import (
	"context"

	"portfolio-api/internal/domain/message"
)

type MessageService interface {
	CreateMessage(ctx context.Context, m message.Message) (*message.Message, error)
	FindMessages(ctx context.Context, page int) (message.Messages, error)
	MarkRead(ctx context.Context, ids []message.ID, read bool) (int64, error)
}
