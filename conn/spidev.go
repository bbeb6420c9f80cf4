package conn

import (
	"errors"
	"fmt"
	"os"

	"github.com/tfemby/ST7789v2-pidi/internal/ioctl"
)

// Definitions from <linux/spi/spidev.h>
const (
	spiCPHA = 0x01
	spiCPOL = 0x02
)

// SPIMode is the clock polarity and phase.
type SPIMode uint8

// SPI modes.
const (
	SPIMode0 SPIMode = (0 | 0)             //nolint:staticcheck
	SPIMode1 SPIMode = (0 | spiCPHA)       //nolint:staticcheck
	SPIMode2 SPIMode = (spiCPOL | 0)       //nolint:staticcheck
	SPIMode3 SPIMode = (spiCPOL | spiCPHA) //nolint:staticcheck
)

const (
	spiDevPath        = "/dev/spidev"
	spiIOCMode        = 0x6b01
	spiIOCLSBFirst    = 0x6b02
	spiIOCBitsPerWord = 0x6b03
	spiIOCMaxSpeedHz  = 0x6b04
)

// ErrFullDuplex is returned by Spidev.Tx when asked to read; panels are write-only.
var ErrFullDuplex = errors.New("conn: spidev reads are not supported")

// Spidev is a raw Linux spidev character device, driven with ioctl calls.
//
// It is an alternative to OpenSPI for kernels or boards periph.io does not detect.
type Spidev struct {
	f           *os.File
	fd          uintptr
	name        string
	mode        SPIMode
	lsbFirst    uint8
	bitsPerWord uint8
	maxSpeedHz  uint32
}

// SpidevPath returns the device node for port and chip select.
func SpidevPath(port, cs int) string {
	return fmt.Sprintf("%s%d.%d", spiDevPath, port, cs)
}

// OpenSpidev opens /dev/spidev<port>.<cs> and reads its current settings.
func OpenSpidev(port, cs int) (*Spidev, error) {
	name := SpidevPath(port, cs)
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	c := &Spidev{
		f:    f,
		fd:   f.Fd(),
		name: name,
	}
	for _, read := range []struct {
		ptr any
		cmd uintptr
	}{
		{&c.mode, spiIOCMode},
		{&c.lsbFirst, spiIOCLSBFirst},
		{&c.bitsPerWord, spiIOCBitsPerWord},
		{&c.maxSpeedHz, spiIOCMaxSpeedHz},
	} {
		if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, read.ptr, read.cmd), read.ptr); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return c, nil
}

// Configure sets mode, bit order and clock in one go.
func (c *Spidev) Configure(mode SPIMode, lsbFirst bool, hz int) error {
	if err := c.SetMode(mode); err != nil {
		return err
	}
	if err := c.SetLSBFirst(lsbFirst); err != nil {
		return err
	}
	return c.SetMaxSpeed(hz)
}

func (c *Spidev) Close() error {
	return c.f.Close()
}

func (c *Spidev) String() string {
	return fmt.Sprintf("%s mode=%d lsb first=%t bits per word=%d max speed=%dHz", c.name, c.mode, c.lsbFirst != 0, c.bitsPerWord, c.maxSpeedHz)
}

func (c *Spidev) Mode() SPIMode {
	return c.mode
}

func (c *Spidev) SetMode(mode SPIMode) error {
	mode &= 0x0f

	if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &mode, spiIOCMode), &mode); err != nil {
		return err
	}

	var test SPIMode
	if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &test, spiIOCMode), &test); err != nil {
		return err
	}

	if test != mode {
		return fmt.Errorf("conn: SPI attempted to set mode %#02x, but mode %#02x is in use", mode, test)
	}

	c.mode = mode
	return nil
}

// SetLSBFirst selects least significant bit first (true) or most significant bit first.
func (c *Spidev) SetLSBFirst(lsbFirst bool) error {
	var v uint8
	if lsbFirst {
		v = 1
	}
	if c.lsbFirst != v {
		if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &v, spiIOCLSBFirst), &v); err != nil {
			return err
		}
		c.lsbFirst = v
	}
	return nil
}

func (c *Spidev) MaxSpeed() int {
	return int(c.maxSpeedHz)
}

func (c *Spidev) SetMaxSpeed(v int) error {
	if v <= 0 {
		return fmt.Errorf("conn: SPI speed %dHz is not positive", v)
	}

	u := uint32(v)
	if c.maxSpeedHz != u {
		if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &u, spiIOCMaxSpeedHz), &u); err != nil {
			return err
		}
		c.maxSpeedHz = u
	}

	return nil
}

// Tx writes w as one transfer. Reading is not supported, r must be empty.
func (c *Spidev) Tx(w, r []byte) error {
	if len(r) > 0 {
		return ErrFullDuplex
	}
	_, err := c.f.Write(w)
	return err
}
