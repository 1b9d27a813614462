package chat

import (
	"context"
)

type Repository interface {
	GetOrCreateSession(ctx context.Context, sessionID string) (*Session, error)
	// FetchSession returns the session with all messages in order, or (nil, nil).
	FetchSession(ctx context.Context, sessionID string) (*Session, error)
	// FetchRecentMessages returns up to limit latest messages, oldest first.
	FetchRecentMessages(ctx context.Context, sessionPK uint64, limit int) ([]Message, error)
	AppendMessages(ctx context.Context, sessionPK uint64, msgs ...Message) error
}
