package message

const (
	InsertMessage = `
		INSERT INTO messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, subject, message, is_read, created_at
	`
	SelectMessages = `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM messages
		ORDER BY created_at DESC, id DESC
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
	UpdateIsRead = `UPDATE messages SET is_read = $1 WHERE id = ANY($2)`
)
