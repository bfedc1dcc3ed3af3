package integrations

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizePassthrough(t *testing.T) {
	normalizer := NewImageNormalizer(1200)
	input := encodeTestPNG(t, 800, 600)

	out, ext, err := normalizer.Normalize(input)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if ext != "png" {
		t.Errorf("Expected png extension, got %s", ext)
	}
	if !bytes.Equal(out, input) {
		t.Error("Small images must pass through unchanged")
	}
}

func TestNormalizeDownscales(t *testing.T) {
	normalizer := NewImageNormalizer(100)
	input := encodeTestPNG(t, 400, 200)

	out, ext, err := normalizer.Normalize(input)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if ext != "png" {
		t.Errorf("Expected png extension, got %s", ext)
	}

	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("Expected width 100, got %d", img.Bounds().Dx())
	}
	if img.Bounds().Dy() != 50 {
		t.Errorf("Expected height 50 (aspect kept), got %d", img.Bounds().Dy())
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	normalizer := NewImageNormalizer(100)

	if _, _, err := normalizer.Normalize([]byte("not an image")); err == nil {
		t.Error("Expected decode error")
	}
}
