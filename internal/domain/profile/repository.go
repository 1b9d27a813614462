package profile

import (
	"context"
	"errors"
)

// ErrNotFound is returned by updates that matched no row.
var ErrNotFound = errors.New("profile entity not found")

type Repository interface {
	// FetchProfile returns the first profile with its children, or (nil, nil).
	FetchProfile(ctx context.Context) (*Profile, error)
	UpdateAvatarPath(ctx context.Context, id ID, path string) error
	FetchSkill(ctx context.Context, id SkillID) (*SkillCategory, error)
	UpdateSkillPhotoPath(ctx context.Context, id SkillID, path string) error
	DeleteSkill(ctx context.Context, id SkillID) error
}
