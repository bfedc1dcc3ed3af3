package integrations

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif"

	"golang.org/x/image/draw"
)

// ImageNormalizer downscales comic images that are wider than a reader
// screen before they go into an EPUB. Images that already fit pass through
// untouched, byte for byte.
type ImageNormalizer struct {
	maxWidth int
}

func NewImageNormalizer(maxWidth int) *ImageNormalizer {
	if maxWidth <= 0 {
		maxWidth = 1200
	}
	return &ImageNormalizer{maxWidth: maxWidth}
}

// Normalize returns the (possibly resized) image bytes and the extension
// they should be stored under.
func (n *ImageNormalizer) Normalize(input []byte) ([]byte, string, error) {
	img, format, err := image.Decode(bytes.NewReader(input))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= n.maxWidth {
		ext := "png"
		if format == "jpeg" {
			ext = "jpg"
		} else if format == "gif" {
			ext = "gif"
		}
		return input, ext, nil
	}

	scale := float64(n.maxWidth) / float64(bounds.Dx())
	height := int(float64(bounds.Dy()) * scale)
	dst := image.NewRGBA(image.Rect(0, 0, n.maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if format == "jpeg" {
		if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85}); err != nil {
			return nil, "", fmt.Errorf("encode jpeg: %w", err)
		}
		return buf.Bytes(), "jpg", nil
	}
	// Animated GIFs lose their animation on resize anyway, so everything
	// non-JPEG comes out as PNG.
	if err := png.Encode(&buf, dst); err != nil {
		return nil, "", fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), "png", nil
}
