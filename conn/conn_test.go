package conn

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestSpidevPath(t *testing.T) {
	for _, test := range []struct {
		port, cs int
		want     string
	}{
		{0, 0, "/dev/spidev0.0"},
		{0, 1, "/dev/spidev0.1"},
		{1, 0, "/dev/spidev1.0"},
	} {
		if v := SpidevPath(test.port, test.cs); v != test.want {
			t.Errorf("SpidevPath(%d, %d): expected %q, got %q", test.port, test.cs, test.want, v)
		}
	}
}

func TestSpidevTxRead(t *testing.T) {
	c := new(Spidev)
	if err := c.Tx([]byte{0x00}, make([]byte, 1)); !errors.Is(err, ErrFullDuplex) {
		t.Errorf("expected %v, got %v", ErrFullDuplex, err)
	}
}

func TestSpidevSetMaxSpeed(t *testing.T) {
	c := new(Spidev)
	if err := c.SetMaxSpeed(0); err == nil {
		t.Error("expected an error for 0Hz")
	}
}

func TestLevelValue(t *testing.T) {
	if v := levelValue(gpio.High); v != 1 {
		t.Errorf("expected High to be 1, got %d", v)
	}
	if v := levelValue(gpio.Low); v != 0 {
		t.Errorf("expected Low to be 0, got %d", v)
	}
}

func TestRegistryLine(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO197", Num: 197}
	if err := gpioreg.Register(pin); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = gpioreg.Unregister(pin.Name()) }()

	l, err := Registry{}.Line(197, "st7789-dc", gpio.High)
	if err != nil {
		t.Fatal(err)
	}
	if pin.L != gpio.High {
		t.Errorf("expected initial level High, got %s", pin.L)
	}
	if err = l.Out(gpio.Low); err != nil {
		t.Fatal(err)
	}
	if pin.L != gpio.Low {
		t.Errorf("expected Low after Out, got %s", pin.L)
	}
}

func TestRegistryLineMissing(t *testing.T) {
	if _, err := (Registry{}).Line(198, "st7789-dc", gpio.Low); !errors.Is(err, ErrNoPin) {
		t.Errorf("expected %v, got %v", ErrNoPin, err)
	}
}
