//go:build !windows

package icon

import "image"

// Encode returns img in the format the tray expects (PNG).
func Encode(img image.Image) ([]byte, error) {
	return EncodePNG(img)
}
