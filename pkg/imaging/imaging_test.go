package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func gradientImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: 64,
				A: 255,
			})
		}
	}
	return img
}

func TestEncodeJPEG_RoundTripPreservesDimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{name: "square", width: 32, height: 32},
		{name: "landscape", width: 64, height: 16},
		{name: "single pixel", width: 1, height: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := EncodeJPEG(gradientImage(tc.width, tc.height))
			if err != nil {
				t.Fatalf("EncodeJPEG() error = %v", err)
			}

			raw, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				t.Fatalf("output is not valid base64: %v", err)
			}
			decoded, err := jpeg.Decode(bytes.NewReader(raw))
			if err != nil {
				t.Fatalf("output is not a valid JPEG: %v", err)
			}

			bounds := decoded.Bounds()
			if bounds.Dx() != tc.width || bounds.Dy() != tc.height {
				t.Fatalf("dimensions = %dx%d, want %dx%d",
					bounds.Dx(), bounds.Dy(), tc.width, tc.height)
			}
		})
	}
}

func TestDecode_PNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, gradientImage(10, 12)); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}

	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 12 {
		t.Fatalf("dimensions = %v", img.Bounds())
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode(strings.NewReader("not an image")); err == nil {
		t.Fatal("Decode() accepted garbage input")
	}
}

func TestDataURL(t *testing.T) {
	if got := DataURL("abc"); got != "data:image/jpeg;base64,abc" {
		t.Fatalf("DataURL() = %q", got)
	}
}
