package st7789

import "fmt"

// NoPin marks an optional GPIO line (Reset, Backlight) as not connected.
const NoPin = -1

// Config describes the bus, GPIO lines and geometry of a panel.
//
// Pins are line offsets on the GPIO chip. Optional pins must be set to NoPin when
// they are not wired; the zero value 0 is a valid offset.
type Config struct {
	// Port is the SPI port (bus) number.
	Port int

	// ChipSelect is the SPI chip select on Port.
	ChipSelect int

	// SpeedHz is the SPI clock.
	SpeedHz int64

	// Chip is the GPIO character device used by Open, such as "gpiochip0".
	Chip string

	// DC is the data/command line.
	DC int

	// Reset line, or NoPin.
	Reset int

	// Backlight enable line, or NoPin.
	Backlight int

	// Width and Height are the native panel RAM dimensions.
	Width  int
	Height int

	// Rotation in degrees: 0, 90, 180 or 270. Quarter turns require a square panel.
	Rotation int

	// Invert turns on display inversion; most IPS panels need it.
	Invert bool

	// OffsetLeft and OffsetTop position the panel inside a larger controller RAM.
	OffsetLeft int
	OffsetTop  int
}

// DefaultConfig is the Pimoroni/Waveshare style wiring on a Raspberry Pi.
var DefaultConfig = Config{
	Port:       0,
	ChipSelect: 1,
	SpeedHz:    4_000_000,
	Chip:       "gpiochip0",
	DC:         9,
	Reset:      NoPin,
	Backlight:  NoPin,
	Width:      240,
	Height:     320,
	Invert:     true,
}

// Validate checks the configuration and returns a *ConfigError for the first problem found.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 1 {
		return &ConfigError{Field: "port", Reason: fmt.Sprintf("%d is not 0 or 1", c.Port)}
	}
	if c.ChipSelect < 0 || c.ChipSelect > 1 {
		return &ConfigError{Field: "chip select", Reason: fmt.Sprintf("%d is not 0 or 1", c.ChipSelect)}
	}
	if c.SpeedHz <= 0 {
		return &ConfigError{Field: "spi speed", Reason: fmt.Sprintf("%dHz is not positive", c.SpeedHz)}
	}
	if c.DC < 0 {
		return &ConfigError{Field: "dc pin", Reason: "a data/command line is required"}
	}
	if c.Reset < NoPin {
		return &ConfigError{Field: "reset pin", Reason: fmt.Sprintf("%d is not a line offset", c.Reset)}
	}
	if c.Backlight < NoPin {
		return &ConfigError{Field: "backlight pin", Reason: fmt.Sprintf("%d is not a line offset", c.Backlight)}
	}
	if c.Width < 1 || c.Height < 1 {
		return &ConfigError{Field: "size", Reason: fmt.Sprintf("%dx%d has an empty dimension", c.Width, c.Height)}
	}
	if c.OffsetLeft < 0 || c.OffsetTop < 0 {
		return &ConfigError{Field: "offset", Reason: fmt.Sprintf("(%d,%d) is negative", c.OffsetLeft, c.OffsetTop)}
	}
	rotation, err := RotationFromDegrees(c.Rotation)
	if err != nil {
		return err
	}
	if c.Width != c.Height && rotation.Transposed() {
		return &ConfigError{
			Field:  "rotation",
			Reason: fmt.Sprintf("%s is not supported for %dx%d resolution", rotation, c.Width, c.Height),
		}
	}
	return nil
}
