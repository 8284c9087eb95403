package render

import (
	"fmt"
	"math"
	"time"
)

// Sample is the wall-clock reading a frame is drawn for.
type Sample struct {
	Hour, Minute, Second int
}

// SampleOf reads hour, minute and second from t in t's own location.
func SampleOf(t time.Time) Sample {
	h, m, s := t.Clock()
	return Sample{Hour: h, Minute: m, Second: s}
}

// Angles holds hand directions in radians, clockwise from 12 o'clock.
type Angles struct {
	Hour, Minute, Second float64
}

// AnglesOf maps a sample to hand angles. The minute hand creeps with the
// seconds; the second hand steps once per second.
func AnglesOf(s Sample) Angles {
	h := float64(s.Hour%12) + float64(s.Minute)/60
	m := float64(s.Minute) + float64(s.Second)/60
	return Angles{
		Hour:   h * 2 * math.Pi / 12,
		Minute: m * 2 * math.Pi / 60,
		Second: float64(s.Second) * 2 * math.Pi / 60,
	}
}

// Readout formats the digital time shown under the hub, e.g. " 9:05:03".
func (s Sample) Readout() string {
	return fmt.Sprintf("%2d:%02d:%02d", s.Hour, s.Minute, s.Second)
}
