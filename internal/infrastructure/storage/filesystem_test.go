package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileSystem_SaveExistsDelete(t *testing.T) {
	root := t.TempDir()
	s, err := NewFileSystem(root, "/media/", zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	p, err := s.Save(ctx, "avatars/normal/a.webp", []byte("one"))
	require.NoError(t, err)
	assert.Equal(t, "avatars/normal/a.webp", p)

	data, err := os.ReadFile(filepath.Join(root, "avatars", "normal", "a.webp"))
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), data)

	ok, err := s.Exists(ctx, p)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Delete(ctx, p))
	ok, err = s.Exists(ctx, p)
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting a missing file is fine
	require.NoError(t, s.Delete(ctx, p))
}

func TestFileSystem_SaveRenamesOnCollision(t *testing.T) {
	s, err := NewFileSystem(t.TempDir(), "/media", nil)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := s.Save(ctx, "icon/a.webp", []byte("1"))
	require.NoError(t, err)
	second, err := s.Save(ctx, "icon/a.webp", []byte("2"))
	require.NoError(t, err)
	third, err := s.Save(ctx, "icon/a.webp", []byte("3"))
	require.NoError(t, err)

	assert.Equal(t, "icon/a.webp", first)
	assert.Equal(t, "icon/a_1.webp", second)
	assert.Equal(t, "icon/a_2.webp", third)
}

func TestFileSystem_RejectsEscapingPaths(t *testing.T) {
	s, err := NewFileSystem(t.TempDir(), "/media", nil)
	require.NoError(t, err)
	ctx := context.Background()

	for _, p := range []string{"", "../x.webp", "/etc/passwd", "a/../../x"} {
		_, err := s.Save(ctx, p, []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidPath, p)
	}
}

func TestFileSystem_URL(t *testing.T) {
	s, err := NewFileSystem(t.TempDir(), "/media/", nil)
	require.NoError(t, err)

	assert.Equal(t, "/media/avatars/normal/a.webp", s.URL("avatars/normal/a.webp"))
	assert.Empty(t, s.URL(""))
}
