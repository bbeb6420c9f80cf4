// Package st7789 drives ST7789 TFT LCD controllers attached to a host SPI bus.
//
// The driver owns an SPI connection and up to three GPIO output lines: data/command
// select, reset and backlight enable. Every Display call converts an RGB image to RGB565
// and streams it over the full panel window; there is no frame buffer, diffing or partial
// refresh.
//
// A Dev is not safe for concurrent use.
package st7789

import (
	"fmt"
	"image"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

// GPIO consumer labels.
const (
	consumerDC        = "st7789-dc"
	consumerReset     = "st7789-rst"
	consumerBacklight = "st7789-bl"
)

// sleep blocks between reset phases and after settling commands.
var sleep = time.Sleep

// Dev is an ST7789 panel.
type Dev struct {
	bus       Bus
	dc        Line
	reset     Line
	backlight Line

	width      int
	height     int
	rotation   Rotation
	invert     bool
	offsetLeft int
	offsetTop  int
}

// New initializes the panel on an open bus, acquiring its lines from chip.
//
// The driver takes ownership of bus and of the acquired lines; Close releases those that
// implement io.Closer.
func New(bus Bus, chip Chip, config *Config) (*Dev, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	rotation, _ := RotationFromDegrees(config.Rotation)

	d := &Dev{
		bus:        bus,
		width:      config.Width,
		height:     config.Height,
		rotation:   rotation,
		invert:     config.Invert,
		offsetLeft: config.OffsetLeft,
		offsetTop:  config.OffsetTop,
	}

	var err error
	if d.dc, err = chip.Line(config.DC, consumerDC, gpio.Low); err != nil {
		return nil, &HardwareInitError{Op: fmt.Sprintf("acquire dc line %d", config.DC), Err: err}
	}

	if config.Backlight != NoPin {
		if d.backlight, err = chip.Line(config.Backlight, consumerBacklight, gpio.Low); err != nil {
			_ = closeAll(d.dc)
			return nil, &HardwareInitError{Op: fmt.Sprintf("acquire backlight line %d", config.Backlight), Err: err}
		}
		if err = d.powerUpBacklight(); err != nil {
			_ = closeAll(d.dc, d.backlight)
			return nil, err
		}
	} else {
		Logger.Debug("st7789: no backlight control")
	}

	if config.Reset != NoPin {
		if d.reset, err = chip.Line(config.Reset, consumerReset, gpio.Low); err != nil {
			_ = closeAll(d.dc, d.backlight)
			return nil, &HardwareInitError{Op: fmt.Sprintf("acquire reset line %d", config.Reset), Err: err}
		}
		if err = d.Reset(); err != nil {
			_ = closeAll(d.dc, d.backlight, d.reset)
			return nil, err
		}
	}

	if err = d.init(); err != nil {
		_ = closeAll(d.dc, d.backlight, d.reset)
		return nil, err
	}

	Logger.WithFields(logrus.Fields{
		"size":     fmt.Sprintf("%dx%d", d.width, d.height),
		"rotation": d.rotation.String(),
		"invert":   d.invert,
		"offset":   image.Pt(d.offsetLeft, d.offsetTop).String(),
	}).Debug("st7789: initialized")
	return d, nil
}

// powerUpBacklight pulses the backlight low before enabling it.
func (d *Dev) powerUpBacklight() error {
	if err := d.SetBacklight(false); err != nil {
		return err
	}
	sleep(100 * time.Millisecond)
	return d.SetBacklight(true)
}

// Reset runs the hardware reset sequence. It does nothing without a reset line.
//
// The line is driven high, low and high again with 500ms between each level, so the
// controller sees a clean edge whatever state the line powered up in.
func (d *Dev) Reset() error {
	if d.reset == nil {
		return nil
	}
	for _, level := range []gpio.Level{gpio.High, gpio.Low, gpio.High} {
		if err := d.reset.Out(level); err != nil {
			return &BusError{Op: "set reset", Err: err}
		}
		sleep(500 * time.Millisecond)
	}
	return nil
}

// SetBacklight turns the backlight on or off. It does nothing without a backlight line.
func (d *Dev) SetBacklight(on bool) error {
	if d.backlight == nil {
		return nil
	}
	if err := d.backlight.Out(gpio.Level(on)); err != nil {
		return &BusError{Op: "set backlight", Err: err}
	}
	return nil
}

// Show toggles the display on or off.
func (d *Dev) Show(show bool) error {
	var command = byte(DISPOFF)
	if show {
		command = DISPON
	}
	return d.Command(command)
}

// Halt turns the backlight and the display off.
func (d *Dev) Halt() error {
	if err := d.SetBacklight(false); err != nil {
		return err
	}
	return d.Show(false)
}

// Close releases the bus and the GPIO lines. It does not change what the panel shows; call
// Halt first to power it down.
func (d *Dev) Close() error {
	return closeAll(d.bus, d.dc, d.reset, d.backlight)
}

// Width is the logical width, as seen on screen after rotation.
func (d *Dev) Width() int {
	if d.rotation.Transposed() {
		return d.height
	}
	return d.width
}

// Height is the logical height, as seen on screen after rotation.
func (d *Dev) Height() int {
	if d.rotation.Transposed() {
		return d.width
	}
	return d.height
}

// Bounds is the logical display bounding box; Display expects images of this size.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Width(), d.Height())
}

// Rotation returns the configured rotation.
func (d *Dev) Rotation() Rotation {
	return d.rotation
}

func (d *Dev) String() string {
	return fmt.Sprintf("ST7789 %dx%d", d.Width(), d.Height())
}
