// Package render composes watch face frames and pushes them to a display.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"watchface-go/internal/geometry"
)

// glyphs lists every rune a frame may draw.
const glyphs = "0123456789: "

// TextDrawer measures and draws text.
type TextDrawer interface {
	Measure(s string) (width, height int)
	DrawText(dst draw.Image, at image.Point, s string, c color.Color)
	Covers(s string) error
}

// Palette holds the face colors.
type Palette struct {
	Background color.RGBA
	Numeral    color.RGBA
	Tick       color.RGBA
	Hour       color.RGBA
	Minute     color.RGBA
	Second     color.RGBA
	HubFill    color.RGBA
	HubOutline color.RGBA
	Readout    color.RGBA
}

// DefaultPalette returns the face colors.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{0, 0, 0, 255},
		Numeral:    color.RGBA{255, 255, 255, 255},
		Tick:       color.RGBA{192, 192, 192, 255},
		Hour:       color.RGBA{0, 0, 255, 255},
		Minute:     color.RGBA{0, 255, 0, 255},
		Second:     color.RGBA{255, 0, 0, 255},
		HubFill:    color.RGBA{0, 0, 255, 255},
		HubOutline: color.RGBA{0, 255, 0, 255},
		Readout:    color.RGBA{128, 128, 128, 255},
	}
}

// Renderer draws frames into a single buffer it owns.
type Renderer struct {
	geo     *geometry.Geometry
	font    TextDrawer
	palette Palette
	frame   *image.RGBA
	gc      *draw2dimg.GraphicContext
}

// New returns a Renderer for geo. It fails if font cannot draw the digits.
func New(geo *geometry.Geometry, font TextDrawer, palette Palette) (*Renderer, error) {
	if err := font.Covers(glyphs); err != nil {
		return nil, fmt.Errorf("font unusable: %w", err)
	}
	frame := image.NewRGBA(image.Rect(0, 0, geo.Width, geo.Height))
	gc := draw2dimg.NewGraphicContext(frame)
	gc.SetLineCap(draw2d.ButtCap)
	return &Renderer{
		geo:     geo,
		font:    font,
		palette: palette,
		frame:   frame,
		gc:      gc,
	}, nil
}

// Frame returns the buffer Compose draws into.
func (r *Renderer) Frame() *image.RGBA {
	return r.frame
}

// Compose redraws the whole face for now and returns the frame.
func (r *Renderer) Compose(now time.Time) *image.RGBA {
	g, p := r.geo, r.palette

	draw.Draw(r.frame, r.frame.Bounds(), &image.Uniform{p.Background}, image.Point{}, draw.Src)

	for _, n := range g.Numerals {
		r.font.DrawText(r.frame, n.Anchor, n.Text, p.Numeral)
	}
	for _, tk := range g.Major {
		r.line(tk.Inner, tk.Outer, p.Tick, tk.Width)
	}
	for i, tk := range g.Minor {
		if i%5 == 0 {
			continue
		}
		r.line(tk.Inner, tk.Outer, p.Tick, tk.Width)
	}

	s := SampleOf(now)
	a := AnglesOf(s)
	r.line(g.Center, g.Along(a.Hour, g.Hour.Radius), p.Hour, g.Hour.Width)
	r.line(g.Center, g.Along(a.Minute, g.Minute.Radius), p.Minute, g.Minute.Width)
	r.line(g.Center, g.Along(a.Second, g.Second.Radius), p.Second, g.Second.Width)

	r.gc.BeginPath()
	draw2dkit.Circle(r.gc, g.Center.X, g.Center.Y, g.HubRadius)
	r.gc.SetFillColor(p.HubFill)
	r.gc.SetStrokeColor(p.HubOutline)
	r.gc.SetLineWidth(1)
	r.gc.FillStroke()

	text := s.Readout()
	w, _ := r.font.Measure(text)
	at := image.Pt(int(g.Center.X)-w/2, int(g.Center.Y+g.ReadoutOffset))
	r.font.DrawText(r.frame, at, text, p.Readout)

	return r.frame
}

func (r *Renderer) line(from, to geometry.Point, c color.Color, width float64) {
	r.gc.BeginPath()
	r.gc.MoveTo(from.X, from.Y)
	r.gc.LineTo(to.X, to.Y)
	r.gc.SetStrokeColor(c)
	r.gc.SetLineWidth(width)
	r.gc.Stroke()
}
