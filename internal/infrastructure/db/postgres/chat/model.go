package chat

import "time"

type (
	Session struct {
		ID        uint64
		SessionID string
		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Message struct {
		ID        uint64
		Role      string
		Content   string
		CreatedAt time.Time
	}
)
