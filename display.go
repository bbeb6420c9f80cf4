package st7789

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/tfemby/ST7789v2-pidi/pixel"
)

// SetWindow sets the controller RAM window for the following pixel data and arms a memory
// write. Coordinates are inclusive, in native panel orientation, before the configured
// offsets are added.
//
// The controller's write pointer only returns to the window's top-left corner when RAMWR
// is sent, so call SetWindow before every pixel stream.
func (d *Dev) SetWindow(x0, y0, x1, y1 int) error {
	x0 += d.offsetLeft
	x1 += d.offsetLeft
	y0 += d.offsetTop
	y1 += d.offsetTop
	Logger.Debugf("st7789: window (%d,%d)-(%d,%d)", x0, y0, x1, y1)

	for _, command := range [][]byte{
		{CASET, byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}, // Column address
		{RASET, byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}, // Row address
	} {
		if err := d.Command(command[0]); err != nil {
			return err
		}
		if err := d.Data(command[1:]...); err != nil {
			return err
		}
	}
	return d.Command(RAMWR) // Write to RAM
}

// SetFullWindow sets the window to the whole panel.
func (d *Dev) SetFullWindow() error {
	return d.SetWindow(0, 0, d.width-1, d.height-1)
}

// Display writes img to the whole panel. The image must have the logical panel size,
// see Bounds.
func (d *Dev) Display(img image.Image) error {
	if size := img.Bounds().Size(); size != d.Bounds().Size() {
		return fmt.Errorf("%w: got %s, want %s", ErrImageSize, size, d.Bounds().Size())
	}
	data := ImageToData(img, d.rotation)
	if err := d.SetFullWindow(); err != nil {
		return err
	}
	return d.Data(data...)
}

// ImageToData converts img to big-endian RGB565 bytes in panel scan order. The image is
// first turned counter-clockwise by the rotation's quarter turns, which compensates for
// the panel being mounted rotated.
func ImageToData(img image.Image, rotation Rotation) []byte {
	return pixel.FromImage(img).Rotate(rotation.QuarterTurns()).RGB565(binary.BigEndian)
}
