package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ErrInvalidImage marks an upload that is not an acceptable image; handlers
// map it to a 400.
var ErrInvalidImage = errors.New("invalid image")

// ImageProcessor validates uploads and renders the thumbnail variant.
type ImageProcessor struct {
	MaxSize int64 // bytes
}

func NewImageProcessor(maxSize int64) *ImageProcessor {
	if maxSize <= 0 {
		maxSize = 5 * 1024 * 1024
	}
	return &ImageProcessor{MaxSize: maxSize}
}

// Validate accepts JPEG/PNG up to MaxSize.
func (p *ImageProcessor) Validate(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("%w: image exceeds %dMB", ErrInvalidImage, p.MaxSize/(1024*1024))
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: not an image", ErrInvalidImage)
	}

	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("%w: format %s not allowed (only jpeg/png)", ErrInvalidImage, format)
	}
}

// Thumbnail fits the image into 300x300 and encodes JPEG at quality 90.
func (p *ImageProcessor) Thumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, 300, 300, imaging.Lanczos)

	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("cannot encode thumbnail: %w", err)
	}

	return b.Bytes(), nil
}
