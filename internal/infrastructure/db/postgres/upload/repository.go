package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domain "portfolio-api/internal/domain/upload"
	"portfolio-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByNormalPath(ctx context.Context, normalPath string) (*domain.Record, error) {
	rec := new(Record)
	err := r.db.QueryRow(ctx, SelectRecordByNormalPath, normalPath).Scan(
		&rec.ID,
		&rec.UploaderID,
		&rec.OriginalFilename,
		&rec.OriginalSize,
		&rec.Checksum,
		&rec.OriginalPath,
		&rec.IconPath,
		&rec.NormalPath,
		&rec.LargePath,
		&rec.OwnerField,

		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(rec), nil
}

func (r *Repository) Create(ctx context.Context, in *domain.Record) (*domain.Record, error) {
	if !in.Paths.Complete() {
		return nil, domain.ErrCorruptRecord
	}

	var uploader *uint64
	if in.Uploader != nil {
		id := uint64(*in.Uploader)
		uploader = &id
	}

	rec := new(Record)
	err := r.db.QueryRow(
		ctx,
		InsertRecord,
		uploader,
		in.OriginalFilename,
		int64(in.OriginalSize),
		in.Checksum,
		in.Paths.Original,
		in.Paths.Icon,
		in.Paths.Normal,
		in.Paths.Large,
		in.OwnerField,
	).Scan(
		&rec.ID,
		&rec.UploaderID,
		&rec.OriginalFilename,
		&rec.OriginalSize,
		&rec.Checksum,
		&rec.OriginalPath,
		&rec.IconPath,
		&rec.NormalPath,
		&rec.LargePath,
		&rec.OwnerField,

		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateRecord, in.Paths.Normal)
		}
		return nil, err
	}

	return fromDBModel(rec), nil
}

func (r *Repository) Delete(ctx context.Context, id uint64) error {
	if _, err := r.db.Exec(ctx, DeleteRecordByID, id); err != nil {
		return err
	}
	return nil
}
