package chat

const (
	UpsertSession = `
		INSERT INTO chat_sessions (session_id)
		VALUES ($1)
		ON CONFLICT (session_id) DO UPDATE SET updated_at = now()
		RETURNING id, session_id, created_at, updated_at
	`
	SelectSession = `
		SELECT id, session_id, created_at, updated_at
		FROM chat_sessions
		WHERE session_id = $1
	`
	SelectSessionMessages = `
		SELECT id, role, content, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at, id
	`
	SelectRecentMessages = `
		SELECT id, role, content, created_at FROM (
			SELECT id, role, content, created_at
			FROM chat_messages
			WHERE session_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		) recent
		ORDER BY created_at, id
	`
	InsertMessage = `INSERT INTO chat_messages (session_id, role, content) VALUES ($1, $2, $3)`
	TouchSession  = `UPDATE chat_sessions SET updated_at = now() WHERE id = $1`
)
