package upload

import (
	"context"
	"errors"
)

var (
	// ErrUnprocessable means the upload could not be decoded as an image.
	ErrUnprocessable   = errors.New("upload is not a processable image")
	ErrDuplicateRecord = errors.New("upload record already exists for normal path")
	ErrCorruptRecord   = errors.New("upload record is incomplete")
)

type Repository interface {
	// FindByNormalPath returns (nil, nil) when no record exists.
	FindByNormalPath(ctx context.Context, normalPath string) (*Record, error)
	Create(ctx context.Context, rec *Record) (*Record, error)
	Delete(ctx context.Context, id uint64) error
}
