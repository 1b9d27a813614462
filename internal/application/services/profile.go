package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"portfolio-api/internal/application/ports"
	"portfolio-api/internal/application/upload"
	"portfolio-api/internal/domain/profile"
	"portfolio-api/internal/infrastructure/mq"
	"portfolio-api/internal/interface/api/rest/dto/portfolio"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrSkillNotFound   = errors.New("skill not found")
)

// ImageField is the part of upload.Field the profile needs.
type ImageField interface {
	Replace(
		ctx context.Context,
		previous, filename string,
		content []byte,
		persist func(ctx context.Context, path string) error,
	) (string, error)
	Delete(ctx context.Context, current string) error
	URLs(ctx context.Context, current string) upload.URLs
}

// SkillPhotos hands out the image field of one skill. Each skill writes into
// its own slot so equal filenames of different skills never collide.
type SkillPhotos func(id profile.SkillID) ImageField

type ProfileService struct {
	profileRepository profile.Repository
	avatar            ImageField
	skillPhoto        SkillPhotos
	cache             ports.ProfileCache
	publisher         ports.EventPublisher
	logger            *zap.Logger
	mCounter          *prometheus.CounterVec
}

// NewProfileService accepts nil cache and publisher.
func NewProfileService(
	profileRepository profile.Repository,
	avatar ImageField,
	skillPhoto SkillPhotos,
	cache ports.ProfileCache,
	publisher ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.ProfileService {
	return &ProfileService{
		profileRepository: profileRepository,
		avatar:            avatar,
		skillPhoto:        skillPhoto,
		cache:             cache,
		publisher:         publisher,
		logger:            logger,
		mCounter:          mCounter,
	}
}

// GetProfile returns (nil, nil) when no profile exists.
func (ps *ProfileService) GetProfile(ctx context.Context) (*portfolio.Profile, error) {
	if cached := ps.cached(ctx); cached != nil {
		return cached, nil
	}

	p, err := ps.profileRepository.FetchProfile(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	out := portfolio.ToResponseProfile(*p, ps.resolver(ctx, ps.avatar),
		func(id profile.SkillID, path string) *portfolio.Image {
			return ps.resolver(ctx, ps.skillPhoto(id))(path)
		},
	)
	ps.store(ctx, &out)

	return &out, nil
}

func (ps *ProfileService) UpdateAvatar(ctx context.Context, filename string, content []byte) (*portfolio.Image, error) {
	p, err := ps.profileRepository.FetchProfile(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}

	current, err := ps.avatar.Replace(ctx, p.AvatarPath, filename, content,
		func(ctx context.Context, path string) error {
			return ps.profileRepository.UpdateAvatarPath(ctx, p.ID, path)
		},
	)
	if err != nil {
		return nil, err
	}

	ps.changed(ctx, "avatar", current)

	return ps.resolver(ctx, ps.avatar)(current), nil
}

// DeleteAvatar clears the stored value first so a failed file cleanup never
// leaves the profile pointing at removed files.
func (ps *ProfileService) DeleteAvatar(ctx context.Context) error {
	p, err := ps.profileRepository.FetchProfile(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrProfileNotFound
	}
	if p.AvatarPath == "" {
		return nil
	}

	if err = ps.profileRepository.UpdateAvatarPath(ctx, p.ID, ""); err != nil {
		return err
	}
	if err = ps.avatar.Delete(ctx, p.AvatarPath); err != nil {
		ps.logger.Error("avatar files cleanup failed", zap.String("path", p.AvatarPath), zap.Error(err))
	}

	ps.changed(ctx, "avatar", "")

	return nil
}

func (ps *ProfileService) UpdateSkillPhoto(
	ctx context.Context,
	id profile.SkillID,
	filename string,
	content []byte,
) (*portfolio.Image, error) {
	s, err := ps.profileRepository.FetchSkill(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrSkillNotFound
	}

	field := ps.skillPhoto(id)
	current, err := field.Replace(ctx, s.PhotoPath, filename, content,
		func(ctx context.Context, path string) error {
			return ps.profileRepository.UpdateSkillPhotoPath(ctx, id, path)
		},
	)
	if err != nil {
		return nil, err
	}

	ps.changed(ctx, "skill_photo", current)

	return ps.resolver(ctx, field)(current), nil
}

func (ps *ProfileService) DeleteSkill(ctx context.Context, id profile.SkillID) error {
	s, err := ps.profileRepository.FetchSkill(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return ErrSkillNotFound
	}

	if err = ps.profileRepository.DeleteSkill(ctx, id); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return ErrSkillNotFound
		}
		return err
	}
	if err = ps.skillPhoto(id).Delete(ctx, s.PhotoPath); err != nil {
		ps.logger.Error("skill photo cleanup failed", zap.String("path", s.PhotoPath), zap.Error(err))
	}

	ps.changed(ctx, "skill", "")

	return nil
}

func (ps *ProfileService) resolver(ctx context.Context, f ImageField) portfolio.ImageResolver {
	return func(path string) *portfolio.Image {
		u := f.URLs(ctx, path)
		return portfolio.NewImage(u.Original, u.Icon, u.Normal, u.Large)
	}
}

func (ps *ProfileService) cached(ctx context.Context) *portfolio.Profile {
	if ps.cache == nil {
		return nil
	}

	payload, err := ps.cache.Get(ctx)
	if err != nil {
		ps.logger.Warn("profile cache read failed", zap.Error(err))
		return nil
	}
	if payload == nil {
		return nil
	}

	var out portfolio.Profile
	if err = json.Unmarshal(payload, &out); err != nil {
		ps.logger.Warn("profile cache entry is corrupt", zap.Error(err))
		return nil
	}

	ps.mCounter.WithLabelValues("profile_cache_hit_total").Inc()

	return &out
}

func (ps *ProfileService) store(ctx context.Context, p *portfolio.Profile) {
	if ps.cache == nil {
		return
	}

	payload, err := json.Marshal(p)
	if err != nil {
		ps.logger.Warn("profile cache encode failed", zap.Error(err))
		return
	}
	if err = ps.cache.Set(ctx, payload); err != nil {
		ps.logger.Warn("profile cache write failed", zap.Error(err))
	}
}

func (ps *ProfileService) changed(ctx context.Context, field, path string) {
	if ps.cache != nil {
		if err := ps.cache.Invalidate(ctx); err != nil {
			ps.logger.Warn("profile cache invalidation failed", zap.Error(err))
		}
	}

	if ps.publisher != nil {
		ps.publisher.Publish(mq.NewEvent(mq.EventProfileUpdated, map[string]string{
			"field": field,
			"path":  path,
		}))
	}

	ps.mCounter.WithLabelValues("profile_updated_total").Inc()
}
