package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"regexp"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/watchfire-io/numlocktray/internal/models"
)

var (
	errMarkerNotFound = errors.New("LED element not found in asset")
	fillAttrPattern   = regexp.MustCompile(`\sfill\s*=\s*("[^"]*"|'[^']*')`)
	styleAttrPattern  = regexp.MustCompile(`\sstyle\s*=\s*("[^"]*"|'[^']*')`)
	styleFillPattern  = regexp.MustCompile(`(^|;)(\s*)fill\s*:[^;]*`)
)

// Recolor sets the fill of the element whose id is elementID to fill.
func Recolor(svg []byte, elementID, fill string) ([]byte, error) {
	if !models.IsHexColor(fill) {
		return nil, fmt.Errorf("invalid fill color %q", fill)
	}

	tagPattern := regexp.MustCompile(`<[^<>]*\sid\s*=\s*["']` + regexp.QuoteMeta(elementID) + `["'][^<>]*>`)
	loc := tagPattern.FindIndex(svg)
	if loc == nil {
		return nil, errMarkerNotFound
	}

	tag := svg[loc[0]:loc[1]]
	newTag, styled := recolorStyle(tag, fill)
	switch {
	case fillAttrPattern.Match(newTag):
		newTag = fillAttrPattern.ReplaceAllLiteral(newTag, []byte(` fill="`+fill+`"`))
	case styled:
		// The style declaration overrides any presentation attribute.
	default:
		// Insert right after the element name.
		nameEnd := bytes.IndexAny(newTag, " \t\r\n")
		inserted := make([]byte, 0, len(newTag)+len(fill)+8)
		inserted = append(inserted, newTag[:nameEnd]...)
		inserted = append(inserted, ` fill="`+fill+`"`...)
		inserted = append(inserted, newTag[nameEnd:]...)
		newTag = inserted
	}

	out := make([]byte, 0, len(svg)+len(newTag)-len(tag))
	out = append(out, svg[:loc[0]]...)
	out = append(out, newTag...)
	out = append(out, svg[loc[1]:]...)
	return out, nil
}

// recolorStyle rewrites fill declarations inside the tag's style attribute,
// which take precedence over a fill attribute. It reports whether any existed.
func recolorStyle(tag []byte, fill string) ([]byte, bool) {
	m := styleAttrPattern.FindSubmatchIndex(tag)
	if m == nil {
		return tag, false
	}
	// m[2]:m[3] is the quoted value; strip the quotes.
	valStart, valEnd := m[2]+1, m[3]-1
	value := tag[valStart:valEnd]
	if !styleFillPattern.Match(value) {
		return tag, false
	}
	// fill is a validated hex colour, so it holds no template expansions.
	value = styleFillPattern.ReplaceAll(value, []byte("${1}${2}fill:"+fill))

	out := make([]byte, 0, len(tag)+len(fill))
	out = append(out, tag[:valStart]...)
	out = append(out, value...)
	out = append(out, tag[valEnd:]...)
	return out, true
}

// Rasterize draws an SVG document into a size×size RGBA image.
func Rasterize(svg []byte, size int) (img *image.RGBA, err error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("rasterize svg: %v", r)
		}
	}()

	w, h := float64(size), float64(size)
	icon.SetTarget(0, 0, w, h)
	img = image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}
