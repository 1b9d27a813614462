package services

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"portfolio-api/internal/application/upload"
	"portfolio-api/internal/domain/chat"
	"portfolio-api/internal/domain/message"
	"portfolio-api/internal/domain/profile"
	"portfolio-api/internal/domain/user"
	"portfolio-api/internal/infrastructure/mq"
)

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counter"}, []string{"result"})
}

type FakeUserRepository struct {
	FetchUserByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	FetchInternalIDFunc  func(ctx context.Context, uuid user.UUID) (user.ID, error)
}

func (f *FakeUserRepository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return f.FetchUserByEmailFunc(ctx, email)
}

func (f *FakeUserRepository) FetchInternalID(ctx context.Context, uuid user.UUID) (user.ID, error) {
	return f.FetchInternalIDFunc(ctx, uuid)
}

type FakeProfileRepository struct {
	FetchProfileFunc         func(ctx context.Context) (*profile.Profile, error)
	UpdateAvatarPathFunc     func(ctx context.Context, id profile.ID, path string) error
	FetchSkillFunc           func(ctx context.Context, id profile.SkillID) (*profile.SkillCategory, error)
	UpdateSkillPhotoPathFunc func(ctx context.Context, id profile.SkillID, path string) error
	DeleteSkillFunc          func(ctx context.Context, id profile.SkillID) error
}

func (f *FakeProfileRepository) FetchProfile(ctx context.Context) (*profile.Profile, error) {
	return f.FetchProfileFunc(ctx)
}

func (f *FakeProfileRepository) UpdateAvatarPath(ctx context.Context, id profile.ID, path string) error {
	return f.UpdateAvatarPathFunc(ctx, id, path)
}

func (f *FakeProfileRepository) FetchSkill(ctx context.Context, id profile.SkillID) (*profile.SkillCategory, error) {
	return f.FetchSkillFunc(ctx, id)
}

func (f *FakeProfileRepository) UpdateSkillPhotoPath(ctx context.Context, id profile.SkillID, path string) error {
	return f.UpdateSkillPhotoPathFunc(ctx, id, path)
}

func (f *FakeProfileRepository) DeleteSkill(ctx context.Context, id profile.SkillID) error {
	return f.DeleteSkillFunc(ctx, id)
}

type FakeMessageRepository struct {
	CreateMessageFunc func(ctx context.Context, m message.Message) (*message.Message, error)
	FetchMessagesFunc func(ctx context.Context, page int) (message.Messages, error)
	MarkReadFunc      func(ctx context.Context, ids []message.ID, read bool) (int64, error)
}

func (f *FakeMessageRepository) CreateMessage(ctx context.Context, m message.Message) (*message.Message, error) {
	return f.CreateMessageFunc(ctx, m)
}

func (f *FakeMessageRepository) FetchMessages(ctx context.Context, page int) (message.Messages, error) {
	return f.FetchMessagesFunc(ctx, page)
}

func (f *FakeMessageRepository) MarkRead(ctx context.Context, ids []message.ID, read bool) (int64, error) {
	return f.MarkReadFunc(ctx, ids, read)
}

type FakeChatRepository struct {
	GetOrCreateSessionFunc  func(ctx context.Context, sessionID string) (*chat.Session, error)
	FetchSessionFunc        func(ctx context.Context, sessionID string) (*chat.Session, error)
	FetchRecentMessagesFunc func(ctx context.Context, sessionPK uint64, limit int) ([]chat.Message, error)
	AppendMessagesFunc      func(ctx context.Context, sessionPK uint64, msgs ...chat.Message) error
}

func (f *FakeChatRepository) GetOrCreateSession(ctx context.Context, sessionID string) (*chat.Session, error) {
	return f.GetOrCreateSessionFunc(ctx, sessionID)
}

func (f *FakeChatRepository) FetchSession(ctx context.Context, sessionID string) (*chat.Session, error) {
	return f.FetchSessionFunc(ctx, sessionID)
}

func (f *FakeChatRepository) FetchRecentMessages(ctx context.Context, sessionPK uint64, limit int) ([]chat.Message, error) {
	return f.FetchRecentMessagesFunc(ctx, sessionPK, limit)
}

func (f *FakeChatRepository) AppendMessages(ctx context.Context, sessionPK uint64, msgs ...chat.Message) error {
	return f.AppendMessagesFunc(ctx, sessionPK, msgs...)
}

type FakeCompletion struct {
	CompleteFunc func(ctx context.Context, systemPrompt string, history []chat.Message, message string) (string, error)
}

func (f *FakeCompletion) Complete(ctx context.Context, systemPrompt string, history []chat.Message, message string) (string, error) {
	return f.CompleteFunc(ctx, systemPrompt, history, message)
}

type FakeImageField struct {
	ReplaceFunc func(ctx context.Context, previous, filename string, content []byte,
		persist func(ctx context.Context, path string) error) (string, error)
	DeleteFunc func(ctx context.Context, current string) error
	URLsFunc   func(ctx context.Context, current string) upload.URLs
}

func (f *FakeImageField) Replace(
	ctx context.Context,
	previous, filename string,
	content []byte,
	persist func(ctx context.Context, path string) error,
) (string, error) {
	return f.ReplaceFunc(ctx, previous, filename, content, persist)
}

func (f *FakeImageField) Delete(ctx context.Context, current string) error {
	return f.DeleteFunc(ctx, current)
}

func (f *FakeImageField) URLs(ctx context.Context, current string) upload.URLs {
	if f.URLsFunc == nil {
		if current == "" {
			return upload.URLs{}
		}
		return upload.URLs{Normal: "/media/" + current}
	}
	return f.URLsFunc(ctx, current)
}

type memCache struct {
	mu          sync.Mutex
	payload     []byte
	gets        int
	invalidated int
	GetErr      error
}

func (c *memCache) Get(context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	return c.payload, nil
}

func (c *memCache) Set(_ context.Context, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = payload
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = nil
	c.invalidated++
	return nil
}

type recordingPublisher struct {
	events []mq.Event
}

func (p *recordingPublisher) Publish(e mq.Event) bool {
	p.events = append(p.events, e)
	return true
}
