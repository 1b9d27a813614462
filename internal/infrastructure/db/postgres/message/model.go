package message

import "time"

type (
	Message struct {
		ID        uint64
		Name      string
		Email     string
		Subject   string
		Message   string
		IsRead    bool
		CreatedAt time.Time
	}
	Messages []*Message
)
