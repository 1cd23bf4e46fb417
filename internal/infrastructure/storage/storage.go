package storage

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrFileNotFound is returned by Open and Delete when the named file does
// not exist in the store.
var ErrFileNotFound = errors.New("file not found")

// MediaStore abstracts durable storage for uploaded images. Save returns a
// publicly reachable URL for the stored file.
type MediaStore interface {
	Save(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	Open(ctx context.Context, filename string) ([]byte, string, error)
	Delete(ctx context.Context, filename string) error
	// List returns every stored filename; used by the orphan sweep job.
	List(ctx context.Context) ([]string, error)
}

// NewFilename generates a collision-free stored name, keeping the original
// extension so content types stay guessable.
func NewFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.NewString() + ext
}

// ThumbnailName derives the thumbnail variant name for a stored file.
// Thumbnails are always re-encoded as JPEG.
func ThumbnailName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return base + "_thumb.jpg"
}

// FilenameFromURL extracts the stored filename from a public image URL.
// The empty string means the record carries no image.
func FilenameFromURL(url string) string {
	if url == "" {
		return ""
	}
	return filepath.Base(url)
}

// contentTypeFor maps a filename extension to a MIME type for serving.
func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
