package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID
	// User is an administrator allowed to edit the portfolio.
	User struct {
		UUID         UUID
		Email        string
		PasswordHash *string
		Role         string
		Name         string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
)
