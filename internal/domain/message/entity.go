package message

import "time"

type (
	ID      uint64
	Message struct {
		ID        ID
		Name      string
		Email     string
		Subject   string
		Message   string
		IsRead    bool
		CreatedAt time.Time
	}
	Messages []*Message
)
