package chat

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "portfolio-api/internal/domain/chat"
)

var (
	sessionColumns = []string{"id", "session_id", "created_at", "updated_at"}
	messageColumns = []string{"id", "role", "content", "created_at"}
)

func TestRepository_GetOrCreateSession(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	now := time.Now()
	pool.ExpectQuery(regexp.QuoteMeta("INSERT INTO chat_sessions")).
		WithArgs("s-1").
		WillReturnRows(pgxmock.NewRows(sessionColumns).AddRow(uint64(3), "s-1", now, now))

	s, err := NewRepository(pool).GetOrCreateSession(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), s.ID)
	assert.Equal(t, "s-1", s.SessionID)
}

func TestRepository_FetchSession(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	now := time.Now()
	pool.ExpectQuery(regexp.QuoteMeta("FROM chat_sessions")).
		WithArgs("s-1").
		WillReturnRows(pgxmock.NewRows(sessionColumns).AddRow(uint64(3), "s-1", now, now))
	pool.ExpectQuery(regexp.QuoteMeta("FROM chat_messages")).
		WithArgs(uint64(3)).
		WillReturnRows(pgxmock.NewRows(messageColumns).
			AddRow(uint64(1), "user", "hi", now).
			AddRow(uint64(2), "assistant", "hello", now))
	pool.ExpectQuery(regexp.QuoteMeta("FROM chat_sessions")).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	repo := NewRepository(pool)

	s, err := repo.FetchSession(context.Background(), "s-1")
	require.NoError(t, err)
	require.Len(t, s.Messages, 2)
	assert.Equal(t, domain.RoleAssistant, s.Messages[1].Role)

	s, err = repo.FetchSession(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, s)
	require.NoError(t, pool.ExpectationsWereMet())
}

func TestRepository_FetchRecentMessages(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectQuery(regexp.QuoteMeta("LIMIT $2")).
		WithArgs(uint64(3), 10).
		WillReturnRows(pgxmock.NewRows(messageColumns).AddRow(uint64(9), "user", "latest", time.Now()))

	msgs, err := NewRepository(pool).FetchRecentMessages(context.Background(), 3, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "latest", msgs[0].Content)
}

func TestRepository_AppendMessages(t *testing.T) {
	t.Run("commits", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectBegin()
		pool.ExpectExec(regexp.QuoteMeta("INSERT INTO chat_messages")).
			WithArgs(uint64(3), "user", "q").WillReturnResult(pgxmock.NewResult("INSERT", 1))
		pool.ExpectExec(regexp.QuoteMeta("INSERT INTO chat_messages")).
			WithArgs(uint64(3), "assistant", "a").WillReturnResult(pgxmock.NewResult("INSERT", 1))
		pool.ExpectExec(regexp.QuoteMeta("UPDATE chat_sessions")).
			WithArgs(uint64(3)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		pool.ExpectCommit()

		err = NewRepository(pool).AppendMessages(context.Background(), 3,
			domain.Message{Role: domain.RoleUser, Content: "q"},
			domain.Message{Role: domain.RoleAssistant, Content: "a"},
		)
		require.NoError(t, err)
		require.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("rolls back", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectBegin()
		pool.ExpectExec(regexp.QuoteMeta("INSERT INTO chat_messages")).
			WithArgs(uint64(3), "user", "q").WillReturnError(errors.New("boom"))
		pool.ExpectRollback()

		err = NewRepository(pool).AppendMessages(context.Background(), 3,
			domain.Message{Role: domain.RoleUser, Content: "q"})
		require.Error(t, err)
		require.NoError(t, pool.ExpectationsWereMet())
	})
}
