package user

import (
	domain "portfolio-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	return &domain.User{
		UUID:         model.UUID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         model.Role,
		Name:         model.Name,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
