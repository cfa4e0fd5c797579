// Package media fetches and decodes card image assets. The native side does
// the network I/O; this package turns the returned bytes into Go images and
// keeps a small per-URL cache so re-renders of the same card do not refetch.
package media

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	// Standard formats register themselves with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Extended formats common in card assets.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes image bytes, accepting png, jpeg, gif, webp, and bmp.
// It returns the decoded image and the detected format name.
func DecodeImage(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("decode image: empty data")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// ToRGBA converts an image to RGBA, returning the input unchanged when it
// already is one.
func ToRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil
	}
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, src, bounds.Min, draw.Src)
	return rgba
}
