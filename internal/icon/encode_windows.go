//go:build windows

package icon

import (
	"bytes"
	"image"

	ico "github.com/sergeymakinen/go-ico"
)

// Encode returns img in the format the Windows tray expects (ICO).
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
