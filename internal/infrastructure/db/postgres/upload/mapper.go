package upload

import (
	domain "portfolio-api/internal/domain/upload"
	"portfolio-api/internal/domain/user"
)

func fromDBModel(model *Record) *domain.Record {
	return &domain.Record{
		ID:               model.ID,
		Uploader:         (*user.ID)(model.UploaderID),
		OriginalFilename: model.OriginalFilename,
		OriginalSize:     uint64(model.OriginalSize),
		Checksum:         model.Checksum,
		Paths: domain.Paths{
			Original: model.OriginalPath,
			Icon:     model.IconPath,
			Normal:   model.NormalPath,
			Large:    model.LargePath,
		},
		OwnerField: model.OwnerField,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
