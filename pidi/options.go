package pidi

import (
	"flag"

	st7789 "github.com/tfemby/ST7789v2-pidi"
)

// Options are the plugin settings, one per command line flag.
type Options struct {
	Rotation      int
	SPIPort       int
	SPIChipSelect int
	DCPin         int
	ResetPin      int
	BacklightPin  int
	Width         int
	Height        int
	SPISpeedMHz   int
	Invert        bool
	OffsetLeft    int
	OffsetTop     int
	GPIOChip      string
}

// DefaultOptions match the Waveshare 1.69" 240x280 panel (240x320 frame buffer) on a
// Raspberry Pi.
var DefaultOptions = Options{
	Rotation:      0,
	SPIPort:       0,
	SPIChipSelect: 1,
	DCPin:         9,
	ResetPin:      27,
	BacklightPin:  13,
	Width:         240,
	Height:        320,
	SPISpeedMHz:   80,
	Invert:        true,
	GPIOChip:      "gpiochip0",
}

// RegisterFlags adds the options to fs, using the current values as defaults.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&o.Rotation, "rotation", o.Rotation, "Rotation in degrees: 0, 90, 180 or 270")
	fs.IntVar(&o.SPIPort, "spi-port", o.SPIPort, "SPI port: 0 or 1")
	fs.IntVar(&o.SPIChipSelect, "spi-chip-select-pin", o.SPIChipSelect, "SPI chip select: 0 or 1")
	fs.IntVar(&o.DCPin, "spi-data-command-pin", o.DCPin, "SPI data/command pin")
	fs.IntVar(&o.ResetPin, "spi-reset-pin", o.ResetPin, "SPI reset pin, -1 if not connected")
	fs.IntVar(&o.BacklightPin, "backlight-pin", o.BacklightPin, "ST7789 backlight pin, -1 if not connected")
	fs.IntVar(&o.Width, "width", o.Width, "LCD RAM width")
	fs.IntVar(&o.Height, "height", o.Height, "LCD RAM height")
	fs.IntVar(&o.SPISpeedMHz, "spi-speed-mhz", o.SPISpeedMHz, "SPI speed in MHz")
	fs.BoolVar(&o.Invert, "invert", o.Invert, "Invert display colors")
	fs.IntVar(&o.OffsetLeft, "offset-left", o.OffsetLeft, "Column offset of the panel in LCD RAM")
	fs.IntVar(&o.OffsetTop, "offset-top", o.OffsetTop, "Row offset of the panel in LCD RAM")
	fs.StringVar(&o.GPIOChip, "gpio-chip", o.GPIOChip, "GPIO character device")
}

// Config converts the options to a driver configuration.
func (o *Options) Config() st7789.Config {
	return st7789.Config{
		Port:       o.SPIPort,
		ChipSelect: o.SPIChipSelect,
		SpeedHz:    int64(o.SPISpeedMHz) * 1000 * 1000,
		Chip:       o.GPIOChip,
		DC:         o.DCPin,
		Reset:      pin(o.ResetPin),
		Backlight:  pin(o.BacklightPin),
		Width:      o.Width,
		Height:     o.Height,
		Rotation:   o.Rotation,
		Invert:     o.Invert,
		OffsetLeft: o.OffsetLeft,
		OffsetTop:  o.OffsetTop,
	}
}

// pin maps any negative flag value to "not connected".
func pin(offset int) int {
	if offset < 0 {
		return st7789.NoPin
	}
	return offset
}
