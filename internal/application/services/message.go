package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"portfolio-api/internal/application/ports"
	domain "portfolio-api/internal/domain/message"
	"portfolio-api/internal/infrastructure/mq"
	"portfolio-api/internal/interface/api/rest/dto/message"
)

type MessageService struct {
	messageRepository domain.Repository
	publisher         ports.EventPublisher
	mCounter          *prometheus.CounterVec
}

func NewMessageService(
	messageRepository domain.Repository,
	publisher ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) ports.MessageService {
	return &MessageService{
		messageRepository: messageRepository,
		publisher:         publisher,
		mCounter:          mCounter,
	}
}

func (ms *MessageService) CreateMessage(ctx context.Context, m domain.Message) (*domain.Message, error) {
	out, err := ms.messageRepository.CreateMessage(ctx, m)
	if err != nil {
		return nil, err
	}

	if out != nil && ms.publisher != nil {
		ms.publisher.Publish(mq.NewEvent(mq.EventMessageCreated, message.ToResponseMessage(*out)))
	}

	ms.mCounter.WithLabelValues("message_created_total").Inc()

	return out, nil
}

func (ms *MessageService) FindMessages(ctx context.Context, page int) (domain.Messages, error) {
	return ms.messageRepository.FetchMessages(ctx, page)
}

func (ms *MessageService) MarkRead(ctx context.Context, ids []domain.ID, read bool) (int64, error) {
	n, err := ms.messageRepository.MarkRead(ctx, ids, read)
	if err != nil {
		return 0, err
	}

	ms.mCounter.WithLabelValues("message_marked_total").Add(float64(n))

	return n, nil
}
