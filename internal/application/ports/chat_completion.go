package ports

import (
	"context"

	"portfolio-api/internal/domain/chat"
)

// ChatCompletion is the external conversational model.
type ChatCompletion interface {
	Complete(ctx context.Context, systemPrompt string, history []chat.Message, message string) (string, error)
}
