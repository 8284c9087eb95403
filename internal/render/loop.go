package render

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/display"

	"watchface-go/internal/logger"
)

// DefaultInterval is the pause between frames. It keeps the second hand
// current without redrawing flat out.
const DefaultInterval = 100 * time.Millisecond

// statsEvery is how many frames pass between timing log lines, about once a
// minute at DefaultInterval.
var statsEvery = 600

// ErrPresent wraps faults raised by the display while showing a frame.
var ErrPresent = errors.New("present frame")

// Run composes and presents a frame, sleeps interval, and repeats. It only
// returns when the display fails.
func Run(clock clockwork.Clock, dev display.Drawer, r *Renderer, interval time.Duration) error {
	var composeTotal, presentTotal time.Duration
	for frames := 1; ; frames++ {
		start := clock.Now()
		frame := r.Compose(start)
		composed := clock.Now()

		if err := dev.Draw(frame.Bounds(), frame, image.Point{}); err != nil {
			return fmt.Errorf("%w %d on %s: %w", ErrPresent, frames, dev, err)
		}
		composeTotal += composed.Sub(start)
		presentTotal += clock.Since(composed)

		if frames%statsEvery == 0 {
			n := time.Duration(statsEvery)
			logger.Infof("frames=%d avg compose=%s avg present=%s",
				frames, composeTotal/n, presentTotal/n)
			composeTotal, presentTotal = 0, 0
		}
		clock.Sleep(interval)
	}
}
