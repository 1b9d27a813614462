package user

import (
	"context"
)

type Repository interface {
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)
}
