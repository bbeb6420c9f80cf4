package st7789

import "time"

// Registers (from the ST7789V datasheet).
const (
	NOP       = 0x00
	SWRESET   = 0x01 // Software Reset
	RDDID     = 0x04
	RDDST     = 0x09
	SLPIN     = 0x10
	SLPOUT    = 0x11 // Sleep Out
	PTLON     = 0x12
	NORON     = 0x13
	INVOFF    = 0x20 // Display Inversion Off
	INVON     = 0x21 // Display Inversion On
	DISPOFF   = 0x28 // Display Off
	DISPON    = 0x29 // Display On
	CASET     = 0x2A // Column Address Set
	RASET     = 0x2B // Row Address Set
	RAMWR     = 0x2C // Memory Write
	RAMRD     = 0x2E
	PTLAR     = 0x30
	MADCTL    = 0x36 // Memory Data Access Control
	COLMOD    = 0x3A // Interface Pixel Format
	RAMCTRL   = 0xB0
	RGBCTRL   = 0xB1
	PORCTRL   = 0xB2 // Porch Setting
	FRCTRL1   = 0xB3
	GCTRL     = 0xB7 // Gate Control
	DGMEN     = 0xBA
	VCOMS     = 0xBB // VCOM Setting
	LCMCTRL   = 0xC0 // LCM Control
	IDSET     = 0xC1
	VDVVRHEN  = 0xC2 // VDV and VRH Command Enable
	VRHS      = 0xC3 // VRH Set
	VDVS      = 0xC4 // VDV Set
	VCMOFSET  = 0xC5
	FRCTRL2   = 0xC6 // Frame Rate Control in Normal Mode
	PWCTRL1   = 0xD0 // Power Control 1
	PVGAMCTRL = 0xE0 // Positive Voltage Gamma Control
	NVGAMCTRL = 0xE1 // Negative Voltage Gamma Control
)

// vendorD6 is undocumented; the panel vendor's init code writes it after PWCTRL1.
const vendorD6 = 0xD6

// step is one register write of the initialization sequence.
type step struct {
	cmd   byte
	data  []byte
	delay time.Duration
}

// initSequence returns the vendor initialization sequence. Order and delays matter: a
// reordered sequence leaves the panel blank or with corrupted colors.
func initSequence(invert bool) []step {
	inversion := byte(INVOFF)
	if invert {
		inversion = INVON
	}
	return []step{
		{cmd: SWRESET, delay: 150 * time.Millisecond},
		{cmd: MADCTL, data: []byte{0x00}},
		{cmd: COLMOD, data: []byte{0x05}}, // 16 bits per pixel
		{cmd: PORCTRL, data: []byte{0x0B, 0x0B, 0x00, 0x33, 0x35}},
		{cmd: GCTRL, data: []byte{0x11}},
		{cmd: VCOMS, data: []byte{0x35}},
		{cmd: LCMCTRL, data: []byte{0x2C}},
		{cmd: VDVVRHEN, data: []byte{0x01}},
		{cmd: VRHS, data: []byte{0x0D}},
		{cmd: VDVS, data: []byte{0x20}},
		{cmd: FRCTRL2, data: []byte{0x13}},
		{cmd: PWCTRL1, data: []byte{0xA4, 0xA1}},
		{cmd: vendorD6, data: []byte{0xA1}},
		{cmd: PVGAMCTRL, data: []byte{0xF0, 0x06, 0x0B, 0x0A, 0x09, 0x26, 0x29, 0x33, 0x41, 0x18, 0x16, 0x15, 0x29, 0x2D}},
		{cmd: NVGAMCTRL, data: []byte{0xF0, 0x04, 0x08, 0x08, 0x07, 0x03, 0x28, 0x32, 0x40, 0x3B, 0x19, 0x18, 0x2A, 0x2E}},
		{cmd: inversion},
		{cmd: SLPOUT},
		{cmd: DISPON, delay: 100 * time.Millisecond},
	}
}

func (d *Dev) init() error {
	for _, s := range initSequence(d.invert) {
		if err := d.Command(s.cmd); err != nil {
			return err
		}
		if len(s.data) > 0 {
			if err := d.Data(s.data...); err != nil {
				return err
			}
		}
		if s.delay > 0 {
			sleep(s.delay)
		}
	}
	return nil
}
