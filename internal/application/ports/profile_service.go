package ports

import (
	"context"

	"portfolio-api/internal/domain/profile"
	"portfolio-api/internal/interface/api/rest/dto/portfolio"
)

type ProfileService interface {
	GetProfile(ctx context.Context) (*portfolio.Profile, error)
	UpdateAvatar(ctx context.Context, filename string, content []byte) (*portfolio.Image, error)
	DeleteAvatar(ctx context.Context) error
	UpdateSkillPhoto(ctx context.Context, id profile.SkillID, filename string, content []byte) (*portfolio.Image, error)
	DeleteSkill(ctx context.Context, id profile.SkillID) error
}
