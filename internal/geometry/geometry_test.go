package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func newFace(t *testing.T) *Geometry {
	t.Helper()
	g, err := New(240, 240, DefaultLayout())
	require.NoError(t, err)
	return g
}

func TestDir(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
		want  Point
	}{
		{"twelve", 0, Point{0, -1}},
		{"three", math.Pi / 2, Point{1, 0}},
		{"six", math.Pi, Point{0, 1}},
		{"nine", 3 * math.Pi / 2, Point{-1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dir(tt.theta)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
		})
	}
}

func TestNew_CenterAndHands(t *testing.T) {
	g := newFace(t)

	assert.Equal(t, Point{120, 120}, g.Center)
	assert.Equal(t, 120.0, g.Radius)
	assert.Equal(t, Hand{Radius: 75, Width: 8}, g.Hour)
	assert.Equal(t, Hand{Radius: 85, Width: 6}, g.Minute)
	assert.Equal(t, Hand{Radius: 95, Width: 1}, g.Second)
	assert.Equal(t, 5.0, g.HubRadius)
	assert.Equal(t, 30.0, g.ReadoutOffset)
}

func TestNew_MajorTicksShareMinorAngles(t *testing.T) {
	g := newFace(t)

	for i := 0; i < MajorTicks; i++ {
		major, minor := g.Major[i], g.Minor[5*i]

		assert.InDelta(t, minor.Angle, major.Angle, eps, "tick %d", i)
		assert.InDelta(t, minor.Outer.X, major.Outer.X, eps, "tick %d", i)
		assert.InDelta(t, minor.Outer.Y, major.Outer.Y, eps, "tick %d", i)
		assert.NotEqual(t, minor.Width, major.Width)

		inner := math.Hypot(major.Inner.X-g.Center.X, major.Inner.Y-g.Center.Y)
		assert.InDelta(t, 113.0, inner, eps)
		inner = math.Hypot(minor.Inner.X-g.Center.X, minor.Inner.Y-g.Center.Y)
		assert.InDelta(t, 115.0, inner, eps)
	}
}

func TestNew_TickWidths(t *testing.T) {
	g := newFace(t)
	for _, tk := range g.Minor {
		assert.Equal(t, 2.0, tk.Width)
	}
	for _, tk := range g.Major {
		assert.Equal(t, 4.0, tk.Width)
	}
}

func TestNew_TicksInsideDisplay(t *testing.T) {
	g := newFace(t)

	inBounds := func(p Point) bool {
		return p.X >= -eps && p.X <= float64(g.Width)+eps &&
			p.Y >= -eps && p.Y <= float64(g.Height)+eps
	}
	count := 0
	for _, tk := range g.Minor {
		assert.True(t, inBounds(tk.Inner), "minor inner %+v", tk.Inner)
		assert.True(t, inBounds(tk.Outer), "minor outer %+v", tk.Outer)
		count++
	}
	for _, tk := range g.Major {
		assert.True(t, inBounds(tk.Inner), "major inner %+v", tk.Inner)
		assert.True(t, inBounds(tk.Outer), "major outer %+v", tk.Outer)
		count++
	}
	assert.Equal(t, 72, count)
}

func TestNew_FirstTickPointsUp(t *testing.T) {
	g := newFace(t)

	assert.InDelta(t, 120.0, g.Major[0].Outer.X, eps)
	assert.InDelta(t, 0.0, g.Major[0].Outer.Y, eps)
	assert.InDelta(t, 240.0, g.Major[3].Outer.X, eps)
	assert.InDelta(t, 120.0, g.Major[3].Outer.Y, eps)
}

func TestNew_Numerals(t *testing.T) {
	g := newFace(t)

	for i, n := range g.Numerals {
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}[i], n.Text)
	}

	twelve := g.Numerals[11]
	assert.Equal(t, 110, twelve.Anchor.X)
	assert.Equal(t, 8, twelve.Anchor.Y)
	assert.Less(t, twelve.Anchor.Y, g.Height/4)

	three := g.Numerals[2]
	assert.Equal(t, 212, three.Anchor.X)
	assert.Equal(t, 110, three.Anchor.Y)

	six := g.Numerals[5]
	assert.Equal(t, 110, six.Anchor.X)
	assert.Equal(t, 212, six.Anchor.Y)
}

func TestNew_Deterministic(t *testing.T) {
	a := newFace(t)
	b := newFace(t)
	assert.Equal(t, *a, *b)
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		mutate        func(*Layout)
	}{
		{"zero width", 0, 240, nil},
		{"negative height", 240, -1, nil},
		{"hand longer than face", 240, 240, func(l *Layout) { l.SecondInset = -5 }},
		{"hand with no length", 240, 240, func(l *Layout) { l.HourInset = 120 }},
		{"tick past center", 240, 240, func(l *Layout) { l.MajorTickLength = 130 }},
		{"flat hand", 240, 240, func(l *Layout) { l.MinuteWidth = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			if tt.mutate != nil {
				tt.mutate(&l)
			}
			g, err := New(tt.width, tt.height, l)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}
