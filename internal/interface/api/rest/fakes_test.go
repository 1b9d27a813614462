package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/application/ports"
	"portfolio-api/internal/domain/chat"
	"portfolio-api/internal/domain/message"
	"portfolio-api/internal/domain/profile"
	"portfolio-api/internal/interface/api/rest/dto/portfolio"
)

type FakeAuthService struct {
	LoginFunc func(ctx context.Context, email, password string) (string, error)
}

func (f *FakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return f.LoginFunc(ctx, email, password)
}

type FakeProfileService struct {
	GetProfileFunc       func(ctx context.Context) (*portfolio.Profile, error)
	UpdateAvatarFunc     func(ctx context.Context, filename string, content []byte) (*portfolio.Image, error)
	DeleteAvatarFunc     func(ctx context.Context) error
	UpdateSkillPhotoFunc func(ctx context.Context, id profile.SkillID, filename string, content []byte) (*portfolio.Image, error)
	DeleteSkillFunc      func(ctx context.Context, id profile.SkillID) error
}

func (f *FakeProfileService) GetProfile(ctx context.Context) (*portfolio.Profile, error) {
	return f.GetProfileFunc(ctx)
}

func (f *FakeProfileService) UpdateAvatar(ctx context.Context, filename string, content []byte) (*portfolio.Image, error) {
	return f.UpdateAvatarFunc(ctx, filename, content)
}

func (f *FakeProfileService) DeleteAvatar(ctx context.Context) error {
	return f.DeleteAvatarFunc(ctx)
}

func (f *FakeProfileService) UpdateSkillPhoto(
	ctx context.Context,
	id profile.SkillID,
	filename string,
	content []byte,
) (*portfolio.Image, error) {
	return f.UpdateSkillPhotoFunc(ctx, id, filename, content)
}

func (f *FakeProfileService) DeleteSkill(ctx context.Context, id profile.SkillID) error {
	return f.DeleteSkillFunc(ctx, id)
}

type FakeMessageService struct {
	CreateMessageFunc func(ctx context.Context, m message.Message) (*message.Message, error)
	FindMessagesFunc  func(ctx context.Context, page int) (message.Messages, error)
	MarkReadFunc      func(ctx context.Context, ids []message.ID, read bool) (int64, error)
}

func (f *FakeMessageService) CreateMessage(ctx context.Context, m message.Message) (*message.Message, error) {
	return f.CreateMessageFunc(ctx, m)
}

func (f *FakeMessageService) FindMessages(ctx context.Context, page int) (message.Messages, error) {
	return f.FindMessagesFunc(ctx, page)
}

func (f *FakeMessageService) MarkRead(ctx context.Context, ids []message.ID, read bool) (int64, error) {
	return f.MarkReadFunc(ctx, ids, read)
}

type FakeChatService struct {
	SendFunc    func(ctx context.Context, sessionID, message string) (*ports.ChatReply, error)
	HistoryFunc func(ctx context.Context, sessionID string) (*chat.Session, error)
}

func (f *FakeChatService) Send(ctx context.Context, sessionID, message string) (*ports.ChatReply, error) {
	return f.SendFunc(ctx, sessionID, message)
}

func (f *FakeChatService) History(ctx context.Context, sessionID string) (*chat.Session, error) {
	return f.HistoryFunc(ctx, sessionID)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var b []byte
	switch v := body.(type) {
	case nil:
	case string:
		b = []byte(v)
	default:
		var err error
		b, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(method, path, bytes.NewReader(b))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doMultipart(t *testing.T, r *gin.Engine, method, path, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}
