package upload

import (
	"time"
)

type (
	// Record mirrors a row of upload_records.
	Record struct {
		ID               uint64
		UploaderID       *uint64
		OriginalFilename string
		OriginalSize     int64
		Checksum         string
		OriginalPath     string
		IconPath         string
		NormalPath       string
		LargePath        string
		OwnerField       string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
)
