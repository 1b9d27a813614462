package message

type (
	Request struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	MarkReadRequest struct {
		IDs    []uint64 `json:"ids"`
		IsRead *bool    `json:"is_read"`
	}
)
