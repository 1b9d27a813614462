package message

import (
	"context"

	domain "portfolio-api/internal/domain/message"
	"portfolio-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateMessage(ctx context.Context, in domain.Message) (*domain.Message, error) {
	m := new(Message)
	err := r.db.QueryRow(ctx, InsertMessage, in.Name, in.Email, in.Subject, in.Message).Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Subject,
		&m.Message,
		&m.IsRead,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) FetchMessages(ctx context.Context, page int) (domain.Messages, error) {
	rows, err := r.db.Query(ctx, SelectMessages, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ms Messages
	for rows.Next() {
		m := new(Message)
		if err = rows.Scan(
			&m.ID,
			&m.Name,
			&m.Email,
			&m.Subject,
			&m.Message,
			&m.IsRead,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(ms), nil
}

func (r *Repository) MarkRead(ctx context.Context, ids []domain.ID, read bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	pk := make([]int64, len(ids))
	for i, id := range ids {
		pk[i] = int64(id)
	}

	tag, err := r.db.Exec(ctx, UpdateIsRead, read, pk)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
