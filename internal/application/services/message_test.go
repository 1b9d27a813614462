package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/domain/message"
	"portfolio-api/internal/infrastructure/mq"
	dto "portfolio-api/internal/interface/api/rest/dto/message"
)

func TestMessageService_CreateMessage(t *testing.T) {
	now := time.Now()
	repo := &FakeMessageRepository{
		CreateMessageFunc: func(_ context.Context, m message.Message) (*message.Message, error) {
			m.ID = 7
			m.CreatedAt = now
			return &m, nil
		},
	}
	pub := &recordingPublisher{}
	ms := NewMessageService(repo, pub, testCounter())

	out, err := ms.CreateMessage(context.Background(), message.Message{Name: "Ann", Email: "ann@example.com", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, message.ID(7), out.ID)

	require.Len(t, pub.events, 1)
	assert.Equal(t, mq.EventMessageCreated, pub.events[0].Type)
	payload, ok := pub.events[0].Payload.(dto.Message)
	require.True(t, ok)
	assert.Equal(t, uint64(7), payload.ID)
}

func TestMessageService_CreateMessage_Error(t *testing.T) {
	repo := &FakeMessageRepository{
		CreateMessageFunc: func(context.Context, message.Message) (*message.Message, error) {
			return nil, errors.New("insert failed")
		},
	}
	pub := &recordingPublisher{}
	ms := NewMessageService(repo, pub, testCounter())

	_, err := ms.CreateMessage(context.Background(), message.Message{})
	require.Error(t, err)
	assert.Empty(t, pub.events)
}

func TestMessageService_MarkRead(t *testing.T) {
	repo := &FakeMessageRepository{
		MarkReadFunc: func(_ context.Context, ids []message.ID, read bool) (int64, error) {
			assert.Equal(t, []message.ID{1, 2}, ids)
			assert.True(t, read)
			return 2, nil
		},
		FetchMessagesFunc: func(_ context.Context, page int) (message.Messages, error) {
			assert.Equal(t, 2, page)
			return message.Messages{{ID: 1}}, nil
		},
	}
	ms := NewMessageService(repo, nil, testCounter())

	n, err := ms.MarkRead(context.Background(), []message.ID{1, 2}, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	list, err := ms.FindMessages(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
