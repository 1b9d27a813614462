package message

import (
	domain "portfolio-api/internal/domain/message"
)

func fromDBModel(m *Message) *domain.Message {
	return &domain.Message{
		ID:        domain.ID(m.ID),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func fromDBModels(models Messages) domain.Messages {
	ms := make(domain.Messages, len(models))
	for idx, m := range models {
		ms[idx] = fromDBModel(m)
	}

	return ms
}
