// Package geometry precomputes the static layout of the watch face: the
// center, hand lengths, tick mark segments and numeral anchors.
//
// Angles follow the clock-face convention: 0 points at 12 o'clock and values
// grow clockwise. Screen coordinates have +y pointing down.
package geometry

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
)

const (
	// MinorTicks is the number of one-minute ticks around the rim.
	MinorTicks = 60
	// MajorTicks is the number of five-minute ticks around the rim.
	MajorTicks = 12
	// Numerals is the number of hour labels.
	Numerals = 12
)

// ErrInvalidLayout is returned when the display size and layout cannot
// produce a usable face.
var ErrInvalidLayout = errors.New("invalid watch face layout")

// Point is a position in screen space.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p*k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dir returns the unit vector theta radians clockwise from 12 o'clock.
func Dir(theta float64) Point {
	return Point{X: math.Sin(theta), Y: -math.Cos(theta)}
}

// TickMark is a radial segment on the rim.
type TickMark struct {
	Angle float64
	Inner Point
	Outer Point
	Width float64
}

// NumeralLabel anchors the top-left corner of an hour label.
type NumeralLabel struct {
	Text   string
	Anchor image.Point
}

// Hand is the length and stroke width of a clock hand.
type Hand struct {
	Radius float64
	Width  float64
}

// Geometry is computed once per display and never modified afterwards.
type Geometry struct {
	Width, Height int
	Center        Point
	Radius        float64

	Hour, Minute, Second Hand

	HubRadius     float64
	ReadoutOffset float64

	Minor    [MinorTicks]TickMark
	Major    [MajorTicks]TickMark
	Numerals [Numerals]NumeralLabel
}

// New computes the face geometry for a width x height display.
func New(width, height int, l Layout) (*Geometry, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: display size %dx%d", ErrInvalidLayout, width, height)
	}
	g := &Geometry{
		Width:         width,
		Height:        height,
		Center:        Point{X: float64(width) / 2, Y: float64(height) / 2},
		Radius:        float64(width) / 2,
		Hour:          Hand{Radius: float64(width)/2 - l.HourInset, Width: l.HourWidth},
		Minute:        Hand{Radius: float64(width)/2 - l.MinuteInset, Width: l.MinuteWidth},
		Second:        Hand{Radius: float64(width)/2 - l.SecondInset, Width: l.SecondWidth},
		HubRadius:     l.HubRadius,
		ReadoutOffset: l.ReadoutOffset,
	}
	if err := g.check(l); err != nil {
		return nil, err
	}

	for i := range g.Minor {
		g.Minor[i] = g.tick(float64(i)*2*math.Pi/MinorTicks, l.MinorTickLength, l.MinorTickWidth)
	}
	for i := range g.Major {
		g.Major[i] = g.tick(float64(i)*2*math.Pi/MajorTicks, l.MajorTickLength, l.MajorTickWidth)
	}

	bias := Point{X: l.NumeralBiasX, Y: l.NumeralBiasY}
	for i := range g.Numerals {
		theta := float64(i+1) * 2 * math.Pi / Numerals
		p := g.Along(theta, g.Radius-l.NumeralInset).Add(bias)
		g.Numerals[i] = NumeralLabel{
			Text:   strconv.Itoa(i + 1),
			Anchor: image.Pt(int(math.Round(p.X)), int(math.Round(p.Y))),
		}
	}
	return g, nil
}

// Along returns the point radius pixels from the center in direction theta.
func (g *Geometry) Along(theta, radius float64) Point {
	return g.Center.Add(Dir(theta).Scale(radius))
}

func (g *Geometry) tick(theta, length, width float64) TickMark {
	return TickMark{
		Angle: theta,
		Inner: g.Along(theta, g.Radius-length),
		Outer: g.Along(theta, g.Radius),
		Width: width,
	}
}

// check verifies every radius is positive and inside the rim.
func (g *Geometry) check(l Layout) error {
	limit := math.Min(float64(g.Width), float64(g.Height)) / 2
	radii := []struct {
		name string
		r    float64
	}{
		{"hour hand", g.Hour.Radius},
		{"minute hand", g.Minute.Radius},
		{"second hand", g.Second.Radius},
		{"minor tick", g.Radius - l.MinorTickLength},
		{"major tick", g.Radius - l.MajorTickLength},
		{"numeral", g.Radius - l.NumeralInset},
	}
	for _, r := range radii {
		if r.r <= 0 || r.r >= limit {
			return fmt.Errorf("%w: %s radius %.1f outside (0, %.1f)", ErrInvalidLayout, r.name, r.r, limit)
		}
	}
	if g.Hour.Width <= 0 || g.Minute.Width <= 0 || g.Second.Width <= 0 {
		return fmt.Errorf("%w: hand widths must be positive", ErrInvalidLayout)
	}
	return nil
}
