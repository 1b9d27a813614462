package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domain "portfolio-api/internal/domain/chat"
	"portfolio-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetOrCreateSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	s := new(Session)
	if err := r.db.QueryRow(ctx, UpsertSession, sessionID).Scan(
		&s.ID, &s.SessionID, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return fromDBModel(s), nil
}

func (r *Repository) FetchSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	s := new(Session)
	err := r.db.QueryRow(ctx, SelectSession, sessionID).Scan(
		&s.ID, &s.SessionID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	out := fromDBModel(s)
	if out.Messages, err = r.queryMessages(ctx, SelectSessionMessages, s.ID); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Repository) FetchRecentMessages(ctx context.Context, sessionPK uint64, limit int) ([]domain.Message, error) {
	return r.queryMessages(ctx, SelectRecentMessages, sessionPK, limit)
}

func (r *Repository) queryMessages(ctx context.Context, sql string, args ...any) ([]domain.Message, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		m := new(Message)
		if err = rows.Scan(&m.ID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, messageFromDBModel(m))
	}

	return out, rows.Err()
}

// AppendMessages stores msgs in one transaction so a reply is never saved
// without the question that produced it.
func (r *Repository) AppendMessages(ctx context.Context, sessionPK uint64, msgs ...domain.Message) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for _, m := range msgs {
		if _, err = tx.Exec(ctx, InsertMessage, sessionPK, string(m.Role), m.Content); err != nil {
			return fmt.Errorf("insert %s message: %w", m.Role, err)
		}
	}
	if _, err = tx.Exec(ctx, TouchSession, sessionPK); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
