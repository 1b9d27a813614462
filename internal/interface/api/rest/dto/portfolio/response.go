package portfolio

import "time"

type (
	// Image lists the variant URLs of one uploaded image; unknown variants are null.
	Image struct {
		Original *string `json:"original"`
		Icon     *string `json:"icon"`
		Normal   *string `json:"normal"`
		Large    *string `json:"large"`
	}

	Profile struct {
		ID        uint64      `json:"id"`
		Name      string      `json:"name"`
		Role      string      `json:"role"`
		Subtitle  string      `json:"subtitle"`
		Summary   string      `json:"summary"`
		Email     string      `json:"email"`
		GitHub    string      `json:"github"`
		LinkedIn  string      `json:"linkedin"`
		Avatar    *Image      `json:"avatar"`
		Stats     []Stat      `json:"stats"`
		Education []Education `json:"education"`
		Skills    []Skill     `json:"skills"`
		Projects  []Project   `json:"projects"`
	}

	Stat struct {
		Value string `json:"value"`
		Label string `json:"label"`
		Order int    `json:"order"`
	}

	Education struct {
		Degree      string `json:"degree"`
		Institution string `json:"institution"`
		Year        string `json:"year"`
		GPA         string `json:"gpa"`
		Details     string `json:"details"`
		Order       int    `json:"order"`
	}

	Skill struct {
		ID          uint64 `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Photo       *Image `json:"photo"`
		Order       int    `json:"order"`
	}

	Project struct {
		ID           uint64    `json:"id"`
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		Technologies string    `json:"technologies"`
		GitHubURL    string    `json:"github_url"`
		LiveURL      string    `json:"live_url"`
		ImageURL     string    `json:"image_url"`
		Order        int       `json:"order"`
		IsFeatured   bool      `json:"is_featured"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
