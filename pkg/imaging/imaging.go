package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"io"

	_ "image/png"
)

// jpegQuality is the quality used when re-encoding uploads for transport.
const jpegQuality = 85

// dataURLPrefix marks an inline JPEG payload for chat-completion requests.
const dataURLPrefix = "data:image/jpeg;base64,"

// Decode reads a PNG or JPEG image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// EncodeJPEG re-encodes a decoded image as JPEG into a memory buffer and
// returns the bytes as a base64 ASCII string. The encoding is lossy in
// content but preserves pixel dimensions. Codec errors surface unmodified.
func EncodeJPEG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DataURL wraps a base64 JPEG payload as an inline data URL.
func DataURL(b64 string) string {
	return dataURLPrefix + b64
}
