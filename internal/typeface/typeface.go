// Package typeface loads TrueType fonts and draws text onto frame buffers.
package typeface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DefaultPath is the bold DejaVu face shipped with Raspberry Pi OS.
const DefaultPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"

// DefaultSize is the point size used for numerals and the readout.
const DefaultSize = 20

// ErrMissingGlyph is returned when the font has no glyph for a rune.
var ErrMissingGlyph = errors.New("font has no glyph")

// Font is a parsed TrueType face at a fixed size.
type Font struct {
	ttf  *truetype.Font
	face font.Face
}

// Load reads and parses the font file at path.
func Load(path string, points float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := Parse(data, points)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse builds a Font from TrueType data.
func Parse(data []byte, points float64) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{
		ttf: ttf,
		face: truetype.NewFace(ttf, &truetype.Options{
			Size:    points,
			DPI:     72,
			Hinting: font.HintingFull,
		}),
	}, nil
}

// Covers reports an error naming the first rune of s the font cannot draw.
func (f *Font) Covers(s string) error {
	for _, r := range s {
		if f.ttf.Index(r) == 0 {
			return fmt.Errorf("%w: %q", ErrMissingGlyph, r)
		}
	}
	return nil
}

// Measure returns the rendered width of s and the line height of the face.
func (f *Font) Measure(s string) (width, height int) {
	m := f.face.Metrics()
	return font.MeasureString(f.face, s).Ceil(), (m.Ascent + m.Descent).Ceil()
}

// DrawText draws s with its top-left corner at the given point.
func (f *Font) DrawText(dst draw.Image, at image.Point, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(at.X, at.Y).Add(fixed.Point26_6{Y: f.face.Metrics().Ascent}),
	}
	d.DrawString(s)
}
