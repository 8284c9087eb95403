// Command watchface shows an analog watch face on a 240x240 ST7789 panel.
package main

import (
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"

	"watchface-go/internal/geometry"
	"watchface-go/internal/logger"
	"watchface-go/internal/render"
	"watchface-go/internal/st7789"
	"watchface-go/internal/typeface"
)

const banner = `watchface - display a watch face, with second hand.

Plug the 1.3" LCD (SPI) breakout into the front Breakout Garden slot.

Usage: %s [display_type]

Where display_type is one of:

  * square - 240x240 1.3" Square LCD
  * round  - 240x240 1.3" Round LCD (applies an offset)
`

// panelKind returns the first argument, or "round" when there is none. The
// token is not validated; st7789.PanelOpts treats anything but "square" as
// round.
func panelKind(args []string) string {
	if len(args) == 0 {
		return "round"
	}
	return args[0]
}

func main() {
	fmt.Printf(banner+"\n", os.Args[0])

	opts := st7789.PanelOpts(panelKind(os.Args[1:]))

	dev, err := st7789.Open(&opts)
	if err != nil {
		logger.Fatalf("display: %v", err)
	}
	bounds := dev.Bounds()
	logger.Infof("%s ready: %dx%d offset %d", dev, bounds.Dx(), bounds.Dy(), opts.OffsetLeft)

	geo, err := geometry.New(bounds.Dx(), bounds.Dy(), geometry.DefaultLayout())
	if err != nil {
		logger.Fatalf("layout: %v", err)
	}

	font, err := typeface.Load(typeface.DefaultPath, typeface.DefaultSize)
	if err != nil {
		logger.Fatalf("font: %v", err)
	}
	r, err := render.New(geo, font, render.DefaultPalette())
	if err != nil {
		logger.Fatalf("renderer: %v", err)
	}

	logger.Infof("rendering every %s", render.DefaultInterval)
	err = render.Run(clockwork.NewRealClock(), dev, r, render.DefaultInterval)
	logger.Errorf("%v", err)
	if herr := dev.Halt(); herr != nil {
		logger.Warnf("halt: %v", herr)
	}
	os.Exit(1)
}
