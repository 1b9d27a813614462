package profile

import "time"

type (
	ID      uint64
	SkillID uint64

	Profile struct {
		ID         ID
		Name       string
		Role       string
		Subtitle   string
		Summary    string
		Email      string
		GitHub     string
		LinkedIn   string
		AvatarPath string

		Stats     []Stat
		Education []Education
		Skills    []SkillCategory
		Projects  []Project

		CreatedAt time.Time
		UpdatedAt time.Time
	}

	Stat struct {
		ID    uint64
		Value string
		Label string
		Order int
	}

	Education struct {
		ID          uint64
		Degree      string
		Institution string
		Year        string
		GPA         string
		Details     string
		Order       int
	}

	SkillCategory struct {
		ID          SkillID
		ProfileID   ID
		Name        string
		Description string
		PhotoPath   string
		Order       int
	}

	Project struct {
		ID           uint64
		Title        string
		Description  string
		Technologies string
		GitHubURL    string
		LiveURL      string
		ImageURL     string
		Order        int
		IsFeatured   bool
		CreatedAt    time.Time
	}
)
