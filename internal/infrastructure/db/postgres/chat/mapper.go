package chat

import (
	domain "portfolio-api/internal/domain/chat"
)

func fromDBModel(m *Session) *domain.Session {
	return &domain.Session{
		ID:        m.ID,
		SessionID: m.SessionID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func messageFromDBModel(m *Message) domain.Message {
	return domain.Message{
		ID:        m.ID,
		Role:      domain.Role(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
