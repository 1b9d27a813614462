package upload

import (
	"time"

	"portfolio-api/internal/domain/user"
)

type Variant string

const (
	VariantOriginal Variant = "original"
	VariantIcon     Variant = "icon"
	VariantNormal   Variant = "normal"
	VariantLarge    Variant = "large"
)

// Variants lists every variant in write order; normal goes last because its
// path becomes the field value.
var Variants = []Variant{VariantOriginal, VariantIcon, VariantLarge, VariantNormal}

type (
	// Paths holds the storage path of every variant of one upload.
	Paths struct {
		Original string
		Icon     string
		Normal   string
		Large    string
	}

	// Record is the audit row of one logical upload, keyed by Paths.Normal.
	Record struct {
		ID               uint64
		Uploader         *user.ID
		OriginalFilename string
		OriginalSize     uint64
		Checksum         string
		Paths            Paths
		OwnerField       string

		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// VariantFile is one generated representation waiting to be written.
	VariantFile struct {
		Content  []byte
		Filename string
	}

	// VariantSet is produced once per upload and consumed by the field.
	VariantSet map[Variant]VariantFile
)

func (p Paths) Get(v Variant) string {
	switch v {
	case VariantOriginal:
		return p.Original
	case VariantIcon:
		return p.Icon
	case VariantNormal:
		return p.Normal
	case VariantLarge:
		return p.Large
	}
	return ""
}

func (p *Paths) Set(v Variant, path string) {
	switch v {
	case VariantOriginal:
		p.Original = path
	case VariantIcon:
		p.Icon = path
	case VariantNormal:
		p.Normal = path
	case VariantLarge:
		p.Large = path
	}
}

// Complete reports whether all four variant paths are set.
func (p Paths) Complete() bool {
	return p.Original != "" && p.Icon != "" && p.Normal != "" && p.Large != ""
}

// Contains reports whether path is one of the variant paths.
func (p Paths) Contains(path string) bool {
	for _, v := range Variants {
		if p.Get(v) == path {
			return true
		}
	}
	return false
}

// Complete reports whether the set carries every variant.
func (s VariantSet) Complete() bool {
	for _, v := range Variants {
		if _, ok := s[v]; !ok {
			return false
		}
	}
	return true
}
