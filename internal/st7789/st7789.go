// Package st7789 drives Sitronix ST7789 240x240 TFT panels over SPI, such as
// the Pimoroni 1.3" square and round breakouts.
//
// The panel is written in 16 bit RGB565. Every Draw sends the whole frame;
// the driver does no differential updates.
package st7789

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Command set, see the ST7789VW datasheet section 9.
const (
	cmdSWRESET   = 0x01
	cmdSLPOUT    = 0x11
	cmdNORON     = 0x13
	cmdINVOFF    = 0x20
	cmdINVON     = 0x21
	cmdDISPOFF   = 0x28
	cmdDISPON    = 0x29
	cmdCASET     = 0x2A
	cmdRASET     = 0x2B
	cmdRAMWR     = 0x2C
	cmdMADCTL    = 0x36
	cmdCOLMOD    = 0x3A
	cmdPORCTRL   = 0xB2
	cmdGCTRL     = 0xB7
	cmdVCOMS     = 0xBB
	cmdLCMCTRL   = 0xC0
	cmdVDVVRHEN  = 0xC2
	cmdVRHS      = 0xC3
	cmdVDVS      = 0xC4
	cmdFRCTRL2   = 0xC6
	cmdPWCTRL1   = 0xD0
	cmdPVGAMCTRL = 0xE0
	cmdNVGAMCTRL = 0xE1
)

// defaultChunk bounds a single SPI transaction when the port reports no
// limit. spidev defaults to 4096 bytes.
const defaultChunk = 4096

// Opts configures the bus and panel.
type Opts struct {
	Port       int // SPI bus number, 0 for SPI0
	CS         int // chip select line on that bus
	DC         string
	Backlight  string // empty when the backlight is wired high
	Speed      physic.Frequency
	Width      int
	Height     int
	OffsetLeft int // controller column where the visible area starts
	OffsetTop  int
	Invert     bool
}

// DefaultOpts matches a 1.3" breakout in the front Breakout Garden slot.
func DefaultOpts() Opts {
	return Opts{
		Port:      0,
		CS:        1,
		DC:        "GPIO9",
		Backlight: "GPIO19",
		Speed:     80 * physic.MegaHertz,
		Width:     240,
		Height:    240,
		Invert:    true,
	}
}

// RoundOffset is the column offset of the round panel's visible area.
const RoundOffset = 40

// PanelOpts returns DefaultOpts for the named panel kind. "square" has no
// offset; any other value is treated as "round".
func PanelOpts(kind string) Opts {
	o := DefaultOpts()
	if kind != "square" {
		o.OffsetLeft = RoundOffset
	}
	return o
}

// Dev is an open ST7789 panel. It implements display.Drawer.
type Dev struct {
	name  string
	c     spi.Conn
	port  spi.PortCloser
	dc    gpio.PinOut
	bl    gpio.PinOut
	opts  Opts
	rect  image.Rectangle
	chunk int
	buf   []byte
}

var _ display.Drawer = (*Dev)(nil)

// Open initializes the host drivers, opens the SPI port and GPIO pins named
// in opts, and brings the panel out of sleep.
func Open(opts *Opts) (*Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("st7789: host init: %w", err)
	}
	port, err := spireg.Open(fmt.Sprintf("SPI%d.%d", opts.Port, opts.CS))
	if err != nil {
		return nil, fmt.Errorf("st7789: open spi: %w", err)
	}
	c, err := port.Connect(opts.Speed, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("st7789: connect spi: %w", err)
	}
	dc := gpioreg.ByName(opts.DC)
	if dc == nil {
		port.Close()
		return nil, fmt.Errorf("st7789: no gpio %q for data/command", opts.DC)
	}
	var bl gpio.PinOut
	if opts.Backlight != "" {
		p := gpioreg.ByName(opts.Backlight)
		if p == nil {
			port.Close()
			return nil, fmt.Errorf("st7789: no gpio %q for backlight", opts.Backlight)
		}
		bl = p
	}
	d, err := NewSPI(c, dc, bl, opts)
	if err != nil {
		port.Close()
		return nil, err
	}
	d.port = port
	return d, nil
}

// NewSPI initializes a panel on an already connected SPI conn. bl may be nil.
func NewSPI(c spi.Conn, dc, bl gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("st7789: invalid size %dx%d", opts.Width, opts.Height)
	}
	chunk := defaultChunk
	if l, ok := c.(conn.Limits); ok {
		if m := l.MaxTxSize(); m > 0 && m < chunk {
			chunk = m
		}
	}
	d := &Dev{
		name:  fmt.Sprintf("st7789{%s}", c),
		c:     c,
		dc:    dc,
		bl:    bl,
		opts:  *opts,
		rect:  image.Rect(0, 0, opts.Width, opts.Height),
		chunk: chunk,
		buf:   make([]byte, opts.Width*opts.Height*2),
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) init() error {
	if d.bl != nil {
		if err := d.bl.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7789: backlight: %w", err)
		}
		time.Sleep(100 * time.Millisecond)
		if err := d.bl.Out(gpio.High); err != nil {
			return fmt.Errorf("st7789: backlight: %w", err)
		}
	}
	if err := d.command(cmdSWRESET); err != nil {
		return err
	}
	time.Sleep(150 * time.Millisecond)

	inversion := byte(cmdINVOFF)
	if d.opts.Invert {
		inversion = cmdINVON
	}
	seq := []struct {
		cmd  byte
		data []byte
	}{
		{cmdMADCTL, []byte{0x70}},
		{cmdPORCTRL, []byte{0x0C, 0x0C, 0x00, 0x33, 0x33}},
		{cmdCOLMOD, []byte{0x05}},
		{cmdGCTRL, []byte{0x14}},
		{cmdVCOMS, []byte{0x37}},
		{cmdLCMCTRL, []byte{0x2C}},
		{cmdVDVVRHEN, []byte{0x01}},
		{cmdVRHS, []byte{0x12}},
		{cmdVDVS, []byte{0x20}},
		{0xD6, []byte{0xA1}},
		{cmdFRCTRL2, []byte{0x0F}},
		{cmdPWCTRL1, []byte{0xA4, 0xA1}},
		{cmdPVGAMCTRL, []byte{0xD0, 0x04, 0x0D, 0x11, 0x13, 0x2B, 0x3F, 0x54, 0x4C, 0x18, 0x0D, 0x0B, 0x1F, 0x23}},
		{cmdNVGAMCTRL, []byte{0xD0, 0x04, 0x0C, 0x11, 0x13, 0x2C, 0x3F, 0x44, 0x51, 0x2F, 0x1F, 0x1F, 0x20, 0x23}},
		{inversion, nil},
		{cmdSLPOUT, nil},
		{cmdNORON, nil},
		{cmdDISPON, nil},
	}
	for _, s := range seq {
		if err := d.command(s.cmd, s.data...); err != nil {
			return err
		}
	}
	time.Sleep(100 * time.Millisecond)
	return nil
}

func (d *Dev) String() string {
	return d.name
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer. The dirty rectangle r is clipped to the
// panel and only that window is sent.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	rgba, _ := src.(*image.RGBA)
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sx, sy := sp.X+x-r.Min.X, sp.Y+y-r.Min.Y
			var c color.RGBA
			if rgba != nil {
				c = rgba.RGBAAt(sx, sy)
			} else {
				c = color.RGBAModel.Convert(src.At(sx, sy)).(color.RGBA)
			}
			v := RGB565(c)
			d.buf[n] = byte(v >> 8)
			d.buf[n+1] = byte(v)
			n += 2
		}
	}
	if err := d.window(r); err != nil {
		return err
	}
	if err := d.command(cmdRAMWR); err != nil {
		return err
	}
	return d.data(d.buf[:n])
}

// Fill paints the whole panel with c.
func (d *Dev) Fill(c color.Color) error {
	img := image.NewRGBA(d.rect)
	draw.Draw(img, d.rect, &image.Uniform{c}, image.Point{}, draw.Src)
	return d.Draw(d.rect, img, image.Point{})
}

// Halt blanks the panel and switches the backlight off.
func (d *Dev) Halt() error {
	err := d.command(cmdDISPOFF)
	if d.bl != nil {
		err = errors.Join(err, d.bl.Out(gpio.Low))
	}
	if d.port != nil {
		err = errors.Join(err, d.port.Close())
		d.port = nil
	}
	return err
}

// RGB565 packs c into the panel's 16 bit pixel format.
func RGB565(c color.RGBA) uint16 {
	return uint16(c.R&0xF8)<<8 | uint16(c.G&0xFC)<<3 | uint16(c.B)>>3
}

func (d *Dev) window(r image.Rectangle) error {
	x0 := r.Min.X + d.opts.OffsetLeft
	x1 := r.Max.X - 1 + d.opts.OffsetLeft
	y0 := r.Min.Y + d.opts.OffsetTop
	y1 := r.Max.Y - 1 + d.opts.OffsetTop
	if err := d.command(cmdCASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	return d.command(cmdRASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
}

func (d *Dev) command(cmd byte, args ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return fmt.Errorf("st7789: dc: %w", err)
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return fmt.Errorf("st7789: command 0x%02X: %w", cmd, err)
	}
	if len(args) == 0 {
		return nil
	}
	return d.data(args)
}

func (d *Dev) data(b []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("st7789: dc: %w", err)
	}
	for len(b) > 0 {
		n := len(b)
		if n > d.chunk {
			n = d.chunk
		}
		if err := d.c.Tx(b[:n], nil); err != nil {
			return fmt.Errorf("st7789: write: %w", err)
		}
		b = b[n:]
	}
	return nil
}
