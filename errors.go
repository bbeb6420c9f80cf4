package st7789

import (
	"errors"
	"fmt"
)

// ErrImageSize is returned by Display when the image does not match the logical panel size.
var ErrImageSize = errors.New("st7789: image size does not match display")

// ConfigError reports an invalid configuration. It is returned before any hardware is touched.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("st7789: invalid %s: %s", e.Field, e.Reason)
}

// HardwareInitError reports a failure to open the bus or to acquire a GPIO line.
type HardwareInitError struct {
	Op  string
	Err error
}

func (e *HardwareInitError) Error() string {
	return fmt.Sprintf("st7789: %s: %v", e.Op, e.Err)
}

func (e *HardwareInitError) Unwrap() error {
	return e.Err
}

// BusError reports a failed bus or line write after the bus was opened.
//
// The controller's address window and memory pointer are unknown after a BusError;
// the caller has to set a new window or construct a new driver.
type BusError struct {
	Op  string
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("st7789: %s: %v", e.Op, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}
