package message

import (
	"strings"

	"portfolio-api/internal/domain/message"
)

func ToDomainMessage(r Request) message.Message {
	return message.Message{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.ToLower(strings.TrimSpace(r.Email)),
		Subject: strings.TrimSpace(r.Subject),
		Message: strings.TrimSpace(r.Message),
	}
}

func ToResponseMessage(m message.Message) Message {
	return Message{
		ID:        uint64(m.ID),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func ToResponseMessages(ms message.Messages) ResponseData {
	out := make([]AdminMessage, len(ms))
	for idx, m := range ms {
		out[idx] = AdminMessage{Message: ToResponseMessage(*m), IsRead: m.IsRead}
	}

	return ResponseData{Data: out}
}

func ToDomainIDs(ids []uint64) []message.ID {
	out := make([]message.ID, len(ids))
	for i, id := range ids {
		out[i] = message.ID(id)
	}
	return out
}
