package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID           uint64
		UUID         uuid.UUID
		Email        string
		PasswordHash *string
		Role         string
		Name         string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
)
