package portfolio

import (
	"portfolio-api/internal/domain/profile"
)

// ImageResolver turns a stored normal path into variant URLs; nil means no image.
type ImageResolver func(path string) *Image

// SkillImageResolver resolves a skill photo within the skill's own upload slot.
type SkillImageResolver func(id profile.SkillID, path string) *Image

func NewImage(original, icon, normal, large string) *Image {
	if original == "" && icon == "" && normal == "" && large == "" {
		return nil
	}
	return &Image{
		Original: optional(original),
		Icon:     optional(icon),
		Normal:   optional(normal),
		Large:    optional(large),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ToResponseProfile(p profile.Profile, avatar ImageResolver, skillPhoto SkillImageResolver) Profile {
	out := Profile{
		ID:        uint64(p.ID),
		Name:      p.Name,
		Role:      p.Role,
		Subtitle:  p.Subtitle,
		Summary:   p.Summary,
		Email:     p.Email,
		GitHub:    p.GitHub,
		LinkedIn:  p.LinkedIn,
		Avatar:    avatar(p.AvatarPath),
		Stats:     make([]Stat, len(p.Stats)),
		Education: make([]Education, len(p.Education)),
		Skills:    make([]Skill, len(p.Skills)),
		Projects:  make([]Project, len(p.Projects)),
	}

	for i, s := range p.Stats {
		out.Stats[i] = Stat{Value: s.Value, Label: s.Label, Order: s.Order}
	}
	for i, e := range p.Education {
		out.Education[i] = Education{
			Degree:      e.Degree,
			Institution: e.Institution,
			Year:        e.Year,
			GPA:         e.GPA,
			Details:     e.Details,
			Order:       e.Order,
		}
	}
	for i, s := range p.Skills {
		out.Skills[i] = Skill{
			ID:          uint64(s.ID),
			Name:        s.Name,
			Description: s.Description,
			Photo:       skillPhoto(s.ID, s.PhotoPath),
			Order:       s.Order,
		}
	}
	for i, pr := range p.Projects {
		out.Projects[i] = Project{
			ID:           pr.ID,
			Title:        pr.Title,
			Description:  pr.Description,
			Technologies: pr.Technologies,
			GitHubURL:    pr.GitHubURL,
			LiveURL:      pr.LiveURL,
			ImageURL:     pr.ImageURL,
			Order:        pr.Order,
			IsFeatured:   pr.IsFeatured,
			CreatedAt:    pr.CreatedAt,
		}
	}

	return out
}
