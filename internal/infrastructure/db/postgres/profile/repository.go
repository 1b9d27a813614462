package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domain "portfolio-api/internal/domain/profile"
	"portfolio-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchProfile(ctx context.Context) (*domain.Profile, error) {
	m := new(Profile)
	err := r.db.QueryRow(ctx, SelectFirstProfile).Scan(
		&m.ID,
		&m.Name,
		&m.Role,
		&m.Subtitle,
		&m.Summary,
		&m.Email,
		&m.GitHub,
		&m.LinkedIn,
		&m.AvatarPath,

		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p := fromDBModel(m)

	if p.Stats, err = r.fetchStats(ctx, m.ID); err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	if p.Education, err = r.fetchEducation(ctx, m.ID); err != nil {
		return nil, fmt.Errorf("education: %w", err)
	}
	if p.Skills, err = r.fetchSkills(ctx, m.ID); err != nil {
		return nil, fmt.Errorf("skills: %w", err)
	}
	if p.Projects, err = r.fetchProjects(ctx, m.ID); err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}

	return p, nil
}

func (r *Repository) fetchStats(ctx context.Context, profileID uint64) ([]domain.Stat, error) {
	rows, err := r.db.Query(ctx, SelectStats, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Stat
	for rows.Next() {
		var s Stat
		if err = rows.Scan(&s.ID, &s.Value, &s.Label, &s.Order); err != nil {
			return nil, err
		}
		out = append(out, domain.Stat(s))
	}

	return out, rows.Err()
}

func (r *Repository) fetchEducation(ctx context.Context, profileID uint64) ([]domain.Education, error) {
	rows, err := r.db.Query(ctx, SelectEducation, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Education
	for rows.Next() {
		var e Education
		if err = rows.Scan(&e.ID, &e.Degree, &e.Institution, &e.Year, &e.GPA, &e.Details, &e.Order); err != nil {
			return nil, err
		}
		out = append(out, domain.Education(e))
	}

	return out, rows.Err()
}

func (r *Repository) fetchSkills(ctx context.Context, profileID uint64) ([]domain.SkillCategory, error) {
	rows, err := r.db.Query(ctx, SelectSkills, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SkillCategory
	for rows.Next() {
		s := new(SkillCategory)
		if err = rows.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Description, &s.PhotoPath, &s.Order); err != nil {
			return nil, err
		}
		out = append(out, *skillFromDBModel(s))
	}

	return out, rows.Err()
}

func (r *Repository) fetchProjects(ctx context.Context, profileID uint64) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, SelectProjects, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		var p Project
		if err = rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.Technologies,
			&p.GitHubURL,
			&p.LiveURL,
			&p.ImageURL,
			&p.Order,
			&p.IsFeatured,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, domain.Project(p))
	}

	return out, rows.Err()
}

func (r *Repository) UpdateAvatarPath(ctx context.Context, id domain.ID, path string) error {
	return r.execOne(ctx, UpdateAvatarByID, path, uint64(id))
}

func (r *Repository) FetchSkill(ctx context.Context, id domain.SkillID) (*domain.SkillCategory, error) {
	s := new(SkillCategory)
	err := r.db.QueryRow(ctx, SelectSkillByID, uint64(id)).Scan(
		&s.ID, &s.ProfileID, &s.Name, &s.Description, &s.PhotoPath, &s.Order,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return skillFromDBModel(s), nil
}

func (r *Repository) UpdateSkillPhotoPath(ctx context.Context, id domain.SkillID, path string) error {
	return r.execOne(ctx, UpdateSkillPhotoByID, path, uint64(id))
}

func (r *Repository) DeleteSkill(ctx context.Context, id domain.SkillID) error {
	return r.execOne(ctx, DeleteSkillByID, uint64(id))
}

func (r *Repository) execOne(ctx context.Context, sql string, args ...any) error {
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
