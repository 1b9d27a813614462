package message

import (
	"context"
)

type Repository interface {
	CreateMessage(ctx context.Context, m Message) (*Message, error)
	FetchMessages(ctx context.Context, page int) (Messages, error)
	MarkRead(ctx context.Context, ids []ID, read bool) (int64, error)
}
