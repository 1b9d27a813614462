// Package imaging turns uploaded image bytes into resized, recompressed WebP
// representations.
package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

const (
	InitialQuality = 85
	MinQuality     = 60
	QualityStep    = 5
	// TargetMaxSize is the encoded size the quality search tries to get under.
	TargetMaxSize = 500 * 1024

	// webpMethod 6 is the slowest libwebp method with the best compression.
	webpMethod = 6
)

type Size struct {
	Width  int
	Height int
}

// Encoded is the output of one Compress call.
type Encoded struct {
	Data    []byte
	Quality int
	Width   int
	Height  int
}

type encodeFunc func(img image.Image, quality int) ([]byte, error)

type Transcoder struct {
	targetSize int
	encode     encodeFunc
}

func NewTranscoder() *Transcoder {
	return &Transcoder{
		targetSize: TargetMaxSize,
		encode:     encodeWebP,
	}
}

// Compress fits img inside max without upscaling and encodes it as lossy WebP,
// lowering the quality in steps of QualityStep while the result is larger than
// TargetMaxSize. The MinQuality encoding is returned even when it is still too big.
func (t *Transcoder) Compress(img image.Image, max Size) (*Encoded, error) {
	if img == nil {
		return nil, fmt.Errorf("compress: nil image")
	}
	if max.Width <= 0 || max.Height <= 0 {
		return nil, fmt.Errorf("compress: invalid max dimensions %dx%d", max.Width, max.Height)
	}

	resized := imaging.Fit(img, max.Width, max.Height, imaging.Lanczos)

	quality := InitialQuality
	data, err := t.encode(resized, quality)
	if err != nil {
		return nil, fmt.Errorf("compress: encode q=%d: %w", quality, err)
	}
	for len(data) > t.targetSize && quality > MinQuality {
		quality -= QualityStep
		if data, err = t.encode(resized, quality); err != nil {
			return nil, fmt.Errorf("compress: encode q=%d: %w", quality, err)
		}
	}

	b := resized.Bounds()
	return &Encoded{
		Data:    data,
		Quality: quality,
		Width:   b.Dx(),
		Height:  b.Dy(),
	}, nil
}

func encodeWebP(img image.Image, quality int) ([]byte, error) {
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(quality))
	if err != nil {
		return nil, fmt.Errorf("webp encoder options: %w", err)
	}
	options.Method = webpMethod

	var buf bytes.Buffer
	if err = webp.Encode(&buf, img, options); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
