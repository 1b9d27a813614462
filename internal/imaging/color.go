package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// hasAlpha reports whether the decoded source carries transparency: a palette
// with a non-opaque entry, or a pixel format with an alpha channel that is in use.
func hasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		return false
	case interface{ Opaque() bool }:
		return !m.Opaque()
	}
	return false
}

// normalize converts the source into the single color mode used for every
// variant of one upload: NRGBA with alpha kept, or NRGBA forced opaque.
func normalize(img image.Image, alpha bool) *image.NRGBA {
	dst := imaging.Clone(img)
	if alpha {
		return dst
	}
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}
