package imaging

import (
	"bytes"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"portfolio-api/internal/domain/upload"
)

const Ext = ".webp"

// ErrUnprocessable means the upload is not a decodable image.
var ErrUnprocessable = upload.ErrUnprocessable

type Preset struct {
	Variant upload.Variant
	Max     Size
}

var Presets = []Preset{
	{Variant: upload.VariantIcon, Max: Size{Width: 256, Height: 256}},
	{Variant: upload.VariantNormal, Max: Size{Width: 800, Height: 800}},
	{Variant: upload.VariantLarge, Max: Size{Width: 1920, Height: 1920}},
}

type Generator struct {
	transcoder *Transcoder
	presets    []Preset
}

func NewGenerator(transcoder *Transcoder) *Generator {
	return &Generator{
		transcoder: transcoder,
		presets:    Presets,
	}
}

// Generate produces the original passthrough plus one WebP per preset.
// It returns ErrUnprocessable when content cannot be decoded.
func (g *Generator) Generate(filename string, content []byte) (upload.VariantSet, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: empty content", ErrUnprocessable)
	}

	src, err := imaging.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnprocessable, err)
	}
	base := normalize(src, hasAlpha(src))

	original := make([]byte, len(content))
	copy(original, content)

	set := upload.VariantSet{
		upload.VariantOriginal: {Content: original, Filename: filename},
	}
	lossyName := Stem(filename) + Ext
	for _, p := range g.presets {
		enc, err := g.transcoder.Compress(base, p.Max)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", p.Variant, err)
		}
		set[p.Variant] = upload.VariantFile{Content: enc.Data, Filename: lossyName}
	}

	return set, nil
}

// Stem returns the base name of filename without its extension.
func Stem(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == "/" {
		return "file"
	}
	return stem
}
