package profile

import (
	domain "portfolio-api/internal/domain/profile"
)

func fromDBModel(m *Profile) *domain.Profile {
	return &domain.Profile{
		ID:         domain.ID(m.ID),
		Name:       m.Name,
		Role:       m.Role,
		Subtitle:   m.Subtitle,
		Summary:    m.Summary,
		Email:      m.Email,
		GitHub:     m.GitHub,
		LinkedIn:   m.LinkedIn,
		AvatarPath: m.AvatarPath,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func skillFromDBModel(m *SkillCategory) *domain.SkillCategory {
	return &domain.SkillCategory{
		ID:          domain.SkillID(m.ID),
		ProfileID:   domain.ID(m.ProfileID),
		Name:        m.Name,
		Description: m.Description,
		PhotoPath:   m.PhotoPath,
		Order:       m.Order,
	}
}
