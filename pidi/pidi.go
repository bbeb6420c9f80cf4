// Package pidi adapts the ST7789 driver to the lifecycle of a pidi display plugin.
//
// The plugin host decides when to start, stop and redraw, and composes the image; this
// package only forwards those calls to the panel.
package pidi

import (
	"image"
	"io"

	"github.com/sirupsen/logrus"

	st7789 "github.com/tfemby/ST7789v2-pidi"
)

// Name is the display option value that selects this plugin.
const Name = "st7789"

// Panel is the part of *st7789.Dev the plugin uses.
type Panel interface {
	Show(bool) error
	SetBacklight(bool) error
	Display(image.Image) error
	Bounds() image.Rectangle
}

// Display is the plugin's output.
type Display struct {
	panel Panel
	log   logrus.FieldLogger
}

// New returns a Display drawing on panel.
func New(panel Panel) *Display {
	return &Display{
		panel: panel,
		log:   st7789.Logger.WithField("display", Name),
	}
}

// Open initializes the panel described by options.
func Open(options *Options) (*Display, error) {
	config := options.Config()
	dev, err := st7789.Open(&config)
	if err != nil {
		return nil, err
	}
	return New(dev), nil
}

// Bounds is the size images passed to Redraw must have.
func (d *Display) Bounds() image.Rectangle {
	return d.panel.Bounds()
}

// Start turns the display and its backlight on.
func (d *Display) Start() error {
	d.log.Debug("start")
	if err := d.panel.Show(true); err != nil {
		return err
	}
	return d.panel.SetBacklight(true)
}

// Stop turns the backlight and the display off.
func (d *Display) Stop() error {
	d.log.Debug("stop")
	if err := d.panel.SetBacklight(false); err != nil {
		return err
	}
	return d.panel.Show(false)
}

// Redraw shows img. A nil image means nothing has been composed yet and is ignored.
func (d *Display) Redraw(img image.Image) error {
	if img == nil {
		return nil
	}
	return d.panel.Display(img)
}

// Close releases the panel hardware.
func (d *Display) Close() error {
	if c, ok := d.panel.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
