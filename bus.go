package st7789

import (
	"io"

	"periph.io/x/conn/v3/gpio"
)

// batchSize is the largest single bus transaction; spidev rejects larger transfers by default.
const batchSize = 4096

// Bus is an open SPI connection. periph.io spi.Conn implements it.
type Bus interface {
	Tx(w, r []byte) error
}

// Line is a GPIO output. periph.io gpio.PinOut implements it.
type Line interface {
	Out(gpio.Level) error
}

// Chip hands out GPIO output lines by offset.
type Chip interface {
	// Line acquires the line at offset as an output driven to the initial level.
	Line(offset int, consumer string, initial gpio.Level) (Line, error)
}

// ChipFunc adapts a function to the Chip interface.
type ChipFunc func(offset int, consumer string, initial gpio.Level) (Line, error)

// Line calls f.
func (f ChipFunc) Line(offset int, consumer string, initial gpio.Level) (Line, error) {
	return f(offset, consumer, initial)
}

// Command sends command bytes with the DC line low.
func (d *Dev) Command(command ...byte) error {
	return d.send(command, false)
}

// Data sends parameter or pixel bytes with the DC line high.
func (d *Dev) Data(data ...byte) error {
	return d.send(data, true)
}

func (d *Dev) send(data []byte, isData bool) error {
	if err := d.dc.Out(gpio.Level(isData)); err != nil {
		return &BusError{Op: "set dc", Err: err}
	}
	return d.writeChunked(data)
}

func (d *Dev) writeChunked(data []byte) error {
	if len(data) > batchSize {
		Logger.Debugf("st7789: write %d bytes of data in %d chunks", len(data), (len(data)+batchSize-1)/batchSize)
	}
	for len(data) > 0 {
		n := len(data)
		if n > batchSize {
			n = batchSize
		}
		if err := d.bus.Tx(data[:n], nil); err != nil {
			return &BusError{Op: "write", Err: err}
		}
		data = data[n:]
	}
	return nil
}

func closeAll(closers ...any) (err error) {
	for _, c := range closers {
		if c, ok := c.(io.Closer); ok {
			if cerr := c.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}
	return
}
