package chat

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type (
	Session struct {
		ID        uint64
		SessionID string
		Messages  []Message
		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Message struct {
		ID        uint64
		Role      Role
		Content   string
		CreatedAt time.Time
	}
)
