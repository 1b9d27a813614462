package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ports"
	"portfolio-api/internal/application/services"
	"portfolio-api/internal/domain/chat"
	dto "portfolio-api/internal/interface/api/rest/dto/chat"
)

func TestChatController_SendHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		send     func(ctx context.Context, sessionID, message string) (*ports.ChatReply, error)
		wantCode int
		wantBody map[string]any
	}{
		{
			name: "ok",
			body: dto.Request{Message: "  hello ", SessionID: "s1"},
			send: func(_ context.Context, sessionID, message string) (*ports.ChatReply, error) {
				return &ports.ChatReply{SessionID: sessionID, Message: message, Response: "hi!"}, nil
			},
			wantCode: http.StatusOK,
			wantBody: map[string]any{"session_id": "s1", "message": "hello", "response": "hi!"},
		},
		{
			name:     "empty message -> 400",
			body:     dto.Request{Message: "   "},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "not configured -> 503",
			body: dto.Request{Message: "hello"},
			send: func(context.Context, string, string) (*ports.ChatReply, error) {
				return nil, services.ErrChatUnavailable
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "upstream failure -> 500",
			body: dto.Request{Message: "hello"},
			send: func(context.Context, string, string) (*ports.ChatReply, error) {
				return nil, errors.New("quota")
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t)
			NewChatController(r, &FakeChatService{SendFunc: tt.send}, zap.NewNop())

			rr := doReq(t, r, http.MethodPost, RouteChat, tt.body)
			require.Equal(t, tt.wantCode, rr.Code)

			resp := decode(t, rr)
			for k, v := range tt.wantBody {
				assert.Equal(t, v, resp[k], "field %q mismatch", k)
			}
		})
	}
}

func TestChatController_HistoryHandler(t *testing.T) {
	cs := &FakeChatService{
		HistoryFunc: func(_ context.Context, sessionID string) (*chat.Session, error) {
			switch sessionID {
			case "known":
				return &chat.Session{SessionID: "known", Messages: []chat.Message{
					{Role: chat.RoleUser, Content: "hi"},
					{Role: chat.RoleAssistant, Content: "hello"},
				}}, nil
			case "broken":
				return nil, errors.New("db")
			}
			return nil, nil
		},
	}
	r := newTestRouter(t)
	NewChatController(r, cs, zap.NewNop())

	rr := doReq(t, r, http.MethodGet, "/api/v1/chat-history/known", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	msgs, ok := decode(t, rr)["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "assistant", msgs[1].(map[string]any)["role"])

	assert.Equal(t, http.StatusNotFound, doReq(t, r, http.MethodGet, "/api/v1/chat-history/unknown", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, doReq(t, r, http.MethodGet, "/api/v1/chat-history/broken", nil).Code)
}
