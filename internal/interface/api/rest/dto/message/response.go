package message

import "time"

type (
	// Message is returned to the public sender.
	Message struct {
		ID        uint64    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Subject   string    `json:"subject"`
		Message   string    `json:"message"`
		CreatedAt time.Time `json:"created_at"`
	}
	// AdminMessage adds the read flag for the inbox listing.
	AdminMessage struct {
		Message
		IsRead bool `json:"is_read"`
	}
	ResponseData struct {
		Data []AdminMessage `json:"data"`
	}
	MarkReadResponse struct {
		Updated int64 `json:"updated"`
	}
)
