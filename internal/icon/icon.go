// Package icon renders the tray bitmap for a Num Lock state.
package icon

import (
	"image"
	"image/color"
	"log"
	"os"
)

// Size is the edge length of rendered icons in pixels.
const Size = 64

// LEDElementID marks the element of the vector asset recoloured when Num Lock is off.
const LEDElementID = "numlock-led"

// Renderer produces the tray icon image. It tries the vector asset first and
// falls back to a drawn glyph when the asset cannot be used.
type Renderer struct {
	AssetPath     string
	InactiveColor string

	// readFile is swapped in tests.
	readFile func(string) ([]byte, error)
}

// New creates a renderer for the asset at assetPath.
func New(assetPath, inactiveColor string) *Renderer {
	return &Renderer{
		AssetPath:     assetPath,
		InactiveColor: inactiveColor,
		readFile:      os.ReadFile,
	}
}

// Render returns a Size×Size RGBA image for the given state. It never fails.
func (r *Renderer) Render(active bool) image.Image {
	img, err := r.renderAsset(active)
	if err != nil {
		log.Printf("[icon] Using fallback icon: %v", err)
		return Fallback(active)
	}
	return img
}

// HasAsset reports whether the vector asset exists on disk.
func (r *Renderer) HasAsset() bool {
	if r.AssetPath == "" {
		return false
	}
	_, err := os.Stat(r.AssetPath)
	return err == nil
}

func (r *Renderer) renderAsset(active bool) (*image.RGBA, error) {
	read := r.readFile
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(r.AssetPath)
	if err != nil {
		return nil, err
	}
	if !active {
		data, err = Recolor(data, LEDElementID, r.InactiveColor)
		if err != nil {
			return nil, err
		}
	}
	return Rasterize(data, Size)
}

// Fallback colours.
var (
	activeFill   = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	inactiveFill = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	glyphColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
