package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()

	s, err := NewLocalStorage(t.TempDir(), "http://localhost:3000/")
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveAndOpen(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	url, err := s.Save(ctx, "cover.png", []byte("image bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/uploads/cover.png", url)

	data, contentType, err := s.Open(ctx, "cover.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestLocalStorage_OpenMissing(t *testing.T) {
	s := newTestStorage(t)

	_, _, err := s.Open(context.Background(), "missing.png")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLocalStorage_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Save(ctx, "cover.png", []byte("image bytes"), "image/png")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "cover.png"))

	_, _, err = s.Open(ctx, "cover.png")
	assert.ErrorIs(t, err, ErrFileNotFound)

	// Deleting twice reports not found
	assert.ErrorIs(t, s.Delete(ctx, "cover.png"), ErrFileNotFound)
}

func TestLocalStorage_List(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = s.Save(ctx, "a.png", []byte("a"), "image/png")
	require.NoError(t, err)
	_, err = s.Save(ctx, "b.jpg", []byte("b"), "image/jpeg")
	require.NoError(t, err)

	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.png", "b.jpg"}, names)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for _, name := range []string{"../escape.png", "a/b.png", ""} {
		_, err := s.Save(ctx, name, []byte("x"), "image/png")
		assert.Error(t, err, "name %q", name)

		_, _, err = s.Open(ctx, name)
		assert.ErrorIs(t, err, ErrFileNotFound, "name %q", name)
	}
}

func TestNewFilename(t *testing.T) {
	a := NewFilename("cover.PNG")
	b := NewFilename("cover.PNG")

	assert.NotEqual(t, a, b)
	assert.True(t, len(a) > 4)
	assert.Equal(t, ".png", a[len(a)-4:])
}

func TestThumbnailName(t *testing.T) {
	assert.Equal(t, "abc_thumb.jpg", ThumbnailName("abc.png"))
	assert.Equal(t, "abc_thumb.jpg", ThumbnailName("abc.jpg"))
}

func TestFilenameFromURL(t *testing.T) {
	assert.Equal(t, "abc.png", FilenameFromURL("http://localhost:3000/uploads/abc.png"))
	assert.Equal(t, "", FilenameFromURL(""))
}
