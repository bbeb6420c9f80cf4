package st7789

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"

	"github.com/tfemby/ST7789v2-pidi/conn"
)

// Open opens the SPI port through periph.io and the GPIO character device named by
// config.Chip, then initializes the panel as New does.
func Open(config *Config) (*Dev, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	bus, err := conn.OpenSPI(config.Port, config.ChipSelect, config.SpeedHz)
	if err != nil {
		return nil, &HardwareInitError{Op: fmt.Sprintf("open SPI%d.%d", config.Port, config.ChipSelect), Err: err}
	}
	Logger.Debugf("st7789: using %s", bus)

	chipName := config.Chip
	if chipName == "" {
		chipName = DefaultConfig.Chip
	}

	d, err := New(bus, CdevChip(chipName), config)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}
	return d, nil
}

// CdevChip returns a Chip requesting lines from the named GPIO character device.
func CdevChip(name string) Chip {
	return AdaptChip(conn.CdevChip{Name: name})
}

// AdaptChip wraps a conn line provider as a Chip.
func AdaptChip(c interface {
	Line(offset int, consumer string, initial gpio.Level) (conn.Line, error)
}) Chip {
	return ChipFunc(func(offset int, consumer string, initial gpio.Level) (Line, error) {
		l, err := c.Line(offset, consumer, initial)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
