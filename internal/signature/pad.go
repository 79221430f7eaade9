// Package signature models the sign-off drawing surface: an alpha raster
// that can report whether it has been marked and encode itself into a
// transportable image string.
package signature

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// encodePrefix matches the canvas data-URL form the workflow endpoint expects.
const encodePrefix = "data:image/png;base64,"

// Pad is a fixed-size drawing surface. A freshly created Pad is fully
// transparent; any stroke with non-zero opacity marks it.
type Pad struct {
	width  int
	height int
	alpha  []uint8
}

// NewPad creates an empty pad of the given dimensions.
func NewPad(width, height int) *Pad {
	return &Pad{
		width:  width,
		height: height,
		alpha:  make([]uint8, width*height),
	}
}

// FromImage builds a Pad from a decoded image, taking each pixel's alpha
// channel. Used when a signature is supplied as an image file.
func FromImage(img image.Image) *Pad {
	bounds := img.Bounds()
	pad := NewPad(bounds.Dx(), bounds.Dy())
	for y := 0; y < pad.height; y++ {
		for x := 0; x < pad.width; x++ {
			_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pad.alpha[y*pad.width+x] = uint8(a >> 8)
		}
	}
	return pad
}

// Set marks one pixel with the given opacity. Out-of-range coordinates are
// ignored.
func (p *Pad) Set(x, y int, opacity uint8) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	p.alpha[y*p.width+x] = opacity
}

// IsEmpty reports whether no pixel carries non-zero opacity.
func (p *Pad) IsEmpty() bool {
	for _, a := range p.alpha {
		if a != 0 {
			return false
		}
	}
	return true
}

// Encode renders the pad as ink-on-transparent PNG and returns it as a
// base64 data string. Encoding is deterministic for identical pad content.
// Callers check IsEmpty first; encoding an empty pad is a caller bug but
// still yields a valid (blank) image.
func (p *Pad) Encode() (string, error) {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			a := p.alpha[y*p.width+x]
			if a != 0 {
				img.SetNRGBA(x, y, color.NRGBA{A: a})
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding signature png: %w", err)
	}
	return encodePrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
