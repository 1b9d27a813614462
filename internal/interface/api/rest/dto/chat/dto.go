package chat

import (
	"time"

	"portfolio-api/internal/application/ports"
	"portfolio-api/internal/domain/chat"
)

type (
	Request struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}
	Response struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
		Response  string `json:"response"`
	}
	Message struct {
		Role      string    `json:"role"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"created_at"`
	}
	History struct {
		SessionID string    `json:"session_id"`
		Messages  []Message `json:"messages"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)

func ToResponse(r ports.ChatReply) Response {
	return Response{SessionID: r.SessionID, Message: r.Message, Response: r.Response}
}

func ToResponseHistory(s chat.Session) History {
	msgs := make([]Message, len(s.Messages))
	for i, m := range s.Messages {
		msgs[i] = Message{Role: string(m.Role), Content: m.Content, CreatedAt: m.CreatedAt}
	}

	return History{
		SessionID: s.SessionID,
		Messages:  msgs,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
