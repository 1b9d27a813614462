package upload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"My Photo.JPG", "my-photo.jpg"},
		{"Café déjà vu.png", "cafe-deja-vu.png"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\avatar.webp`, "avatar.webp"},
		{"  --weird__name--.gif", "weird-name.gif"},
		{"con.png", "_con.png"},
		{"", "file"},
		{"...", "file"},
		{"noext", "noext"},
		{"bad.ex t", "bad-ex-t"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.in))
		})
	}
}

func TestSanitizeFileName_TruncatesLongNames(t *testing.T) {
	got := SanitizeFileName(strings.Repeat("a", 300) + ".png")
	assert.Len(t, got, maxBaseNameLen)
	assert.True(t, strings.HasSuffix(got, ".png"))
}
