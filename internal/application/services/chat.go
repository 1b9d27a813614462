package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ports"
	"portfolio-api/internal/domain/chat"
	"portfolio-api/internal/domain/profile"
)

const defaultHistoryLimit = 10

// ErrChatUnavailable is returned when no chat completion backend is configured.
var ErrChatUnavailable = errors.New("chat is not configured")

type ChatService struct {
	chatRepository    chat.Repository
	profileRepository profile.Repository
	completion        ports.ChatCompletion
	historyLimit      int
	logger            *zap.Logger
	mCounter          *prometheus.CounterVec
}

// NewChatService accepts a nil completion; Send then fails with ErrChatUnavailable.
func NewChatService(
	chatRepository chat.Repository,
	profileRepository profile.Repository,
	completion ports.ChatCompletion,
	historyLimit int,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.ChatService {
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	return &ChatService{
		chatRepository:    chatRepository,
		profileRepository: profileRepository,
		completion:        completion,
		historyLimit:      historyLimit,
		logger:            logger,
		mCounter:          mCounter,
	}
}

func (cs *ChatService) Send(ctx context.Context, sessionID, message string) (*ports.ChatReply, error) {
	if cs.completion == nil {
		return nil, ErrChatUnavailable
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	s, err := cs.chatRepository.GetOrCreateSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	history, err := cs.chatRepository.FetchRecentMessages(ctx, s.ID, cs.historyLimit)
	if err != nil {
		return nil, err
	}

	p, err := cs.profileRepository.FetchProfile(ctx)
	if err != nil {
		// the assistant still answers, just without portfolio context
		cs.logger.Warn("chat: profile unavailable", zap.Error(err))
	}

	answer, err := cs.completion.Complete(ctx, systemPrompt(p), history, message)
	if err != nil {
		cs.mCounter.WithLabelValues("chat_failed_total").Inc()
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	err = cs.chatRepository.AppendMessages(ctx, s.ID,
		chat.Message{Role: chat.RoleUser, Content: message},
		chat.Message{Role: chat.RoleAssistant, Content: answer},
	)
	if err != nil {
		return nil, err
	}

	cs.mCounter.WithLabelValues("chat_replied_total").Inc()

	return &ports.ChatReply{
		SessionID: s.SessionID,
		Message:   message,
		Response:  answer,
	}, nil
}

func (cs *ChatService) History(ctx context.Context, sessionID string) (*chat.Session, error) {
	return cs.chatRepository.FetchSession(ctx, sessionID)
}

func systemPrompt(p *profile.Profile) string {
	var b strings.Builder

	if p == nil {
		b.WriteString("You are an AI assistant for a portfolio website.\n")
	} else {
		fmt.Fprintf(&b, "You are an AI assistant for %s's portfolio website.\n\n", p.Name)
		fmt.Fprintf(&b, "Name: %s\nRole: %s\nSummary: %s\nEmail: %s\n", p.Name, p.Role, p.Summary, p.Email)

		if len(p.Education) > 0 {
			b.WriteString("\nEducation:\n")
			for _, e := range p.Education {
				fmt.Fprintf(&b, "- %s from %s (%s)", e.Degree, e.Institution, e.Year)
				if e.GPA != "" {
					fmt.Fprintf(&b, ", GPA: %s", e.GPA)
				}
				b.WriteString("\n")
			}
		}
		if len(p.Skills) > 0 {
			b.WriteString("\nSkills:\n")
			for _, s := range p.Skills {
				fmt.Fprintf(&b, "- %s: %s\n", s.Name, s.Description)
			}
		}
		if len(p.Projects) > 0 {
			b.WriteString("\nProjects:\n")
			for _, pr := range p.Projects {
				fmt.Fprintf(&b, "- %s: %s\n  Technologies: %s\n", pr.Title, pr.Description, pr.Technologies)
			}
		}
	}

	b.WriteString(`
Answer questions about the portfolio owner's background, skills, projects and education.
Be friendly and professional. If asked about something not in the portfolio, say you don't have that information.
Keep answers concise.`)

	return b.String()
}
