package geometry

// Layout groups the pixel constants of the watch face. Insets are measured
// inward from the full radius R = width/2.
type Layout struct {
	NumeralInset float64
	// NumeralBias shifts the label's top-left corner so the glyphs sit
	// centered on the computed point.
	NumeralBiasX, NumeralBiasY float64

	MinorTickLength float64
	MinorTickWidth  float64
	MajorTickLength float64
	MajorTickWidth  float64

	HourInset   float64
	HourWidth   float64
	MinuteInset float64
	MinuteWidth float64
	SecondInset float64
	SecondWidth float64

	HubRadius     float64
	ReadoutOffset float64
}

// DefaultLayout is tuned for the 240x240 1.3" panels.
func DefaultLayout() Layout {
	return Layout{
		NumeralInset: 18,
		NumeralBiasX: -10,
		NumeralBiasY: -10,

		MinorTickLength: 5,
		MinorTickWidth:  2,
		MajorTickLength: 7,
		MajorTickWidth:  4,

		HourInset:   45,
		HourWidth:   8,
		MinuteInset: 35,
		MinuteWidth: 6,
		SecondInset: 25,
		SecondWidth: 1,

		HubRadius:     5,
		ReadoutOffset: 30,
	}
}
