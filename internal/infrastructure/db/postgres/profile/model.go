package profile

import "time"

type (
	Profile struct {
		ID         uint64
		Name       string
		Role       string
		Subtitle   string
		Summary    string
		Email      string
		GitHub     string
		LinkedIn   string
		AvatarPath string

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
		ID          uint64
		ProfileID   uint64
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
