package conn

import (
	"errors"
	"fmt"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// ErrNoPin is returned when a GPIO is not known to the registry.
var ErrNoPin = errors.New("conn: GPIO pin is invalid")

// Line is a GPIO output.
type Line interface {
	Out(gpio.Level) error
}

// CdevChip requests lines from a GPIO character device such as "gpiochip0".
type CdevChip struct {
	Name string
}

// Line requests offset as an output at the initial level, labelled with consumer.
func (c CdevChip) Line(offset int, consumer string, initial gpio.Level) (Line, error) {
	l, err := gpiocdev.RequestLine(c.Name, offset,
		gpiocdev.AsOutput(levelValue(initial)),
		gpiocdev.WithConsumer(consumer))
	if err != nil {
		return nil, fmt.Errorf("conn: request %s line %d: %w", c.Name, offset, err)
	}
	return &CdevLine{
		line:     l,
		chip:     c.Name,
		offset:   offset,
		consumer: consumer,
	}, nil
}

// CdevLine is an output line requested from a GPIO character device.
type CdevLine struct {
	line     *gpiocdev.Line
	chip     string
	offset   int
	consumer string
}

func (l *CdevLine) String() string {
	return fmt.Sprintf("%s:%d (%s)", l.chip, l.offset, l.consumer)
}

// Out drives the line.
func (l *CdevLine) Out(level gpio.Level) error {
	return l.line.SetValue(levelValue(level))
}

// Close releases the line back to the kernel.
func (l *CdevLine) Close() error {
	return l.line.Close()
}

func levelValue(level gpio.Level) int {
	if level == gpio.High {
		return 1
	}
	return 0
}

// Registry hands out periph.io pins named GPIO<offset>, as on a Raspberry Pi.
type Registry struct{}

// Line looks up GPIO<offset> and drives it to the initial level. periph.io has no
// consumer labels, so consumer is unused.
func (Registry) Line(offset int, _ string, initial gpio.Level) (Line, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("GPIO%d", offset)
	p := gpioreg.ByName(name)
	if p == nil || p == gpio.INVALID {
		return nil, fmt.Errorf("%w: %s", ErrNoPin, name)
	}
	if err := p.Out(initial); err != nil {
		return nil, err
	}
	return p, nil
}
