package ports

import (
	"context"

	"portfolio-api/internal/domain/chat"
)

type ChatReply struct {
	SessionID string
	Message   string
	Response  string
}

type ChatService interface {
	Send(ctx context.Context, sessionID, message string) (*ChatReply, error)
	History(ctx context.Context, sessionID string) (*chat.Session, error)
}
