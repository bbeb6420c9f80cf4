package pidi

import (
	"errors"
	"flag"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	st7789 "github.com/tfemby/ST7789v2-pidi"
)

type fakePanel struct {
	calls  []string
	images []image.Image
	err    error
	closed bool
}

func (p *fakePanel) Show(on bool) error {
	if on {
		p.calls = append(p.calls, "show on")
	} else {
		p.calls = append(p.calls, "show off")
	}
	return p.err
}

func (p *fakePanel) SetBacklight(on bool) error {
	if on {
		p.calls = append(p.calls, "backlight on")
	} else {
		p.calls = append(p.calls, "backlight off")
	}
	return p.err
}

func (p *fakePanel) Display(img image.Image) error {
	p.calls = append(p.calls, "display")
	p.images = append(p.images, img)
	return p.err
}

func (p *fakePanel) Bounds() image.Rectangle {
	return image.Rect(0, 0, 240, 320)
}

func (p *fakePanel) Close() error {
	p.closed = true
	return nil
}

func TestDisplayLifecycle(t *testing.T) {
	p := &fakePanel{}
	d := New(p)

	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(d.Bounds())
	if err := d.Redraw(img); err != nil {
		t.Fatal(err)
	}
	if err := d.Redraw(nil); err != nil {
		t.Fatal(err)
	}
	if err := d.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}

	want := []string{"show on", "backlight on", "display", "backlight off", "show off"}
	if diff := cmp.Diff(want, p.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if len(p.images) != 1 || p.images[0] != image.Image(img) {
		t.Errorf("Redraw() passed %v, want the composed image", p.images)
	}
	if !p.closed {
		t.Error("Close() did not close the panel")
	}
}

func TestDisplayErrors(t *testing.T) {
	errPanel := errors.New("panel gone")
	p := &fakePanel{err: errPanel}
	d := New(p)

	if err := d.Start(); !errors.Is(err, errPanel) {
		t.Errorf("Start() = %v, want %v", err, errPanel)
	}
	if err := d.Stop(); !errors.Is(err, errPanel) {
		t.Errorf("Stop() = %v, want %v", err, errPanel)
	}
	// The first failing call stops the sequence.
	want := []string{"show on", "backlight off"}
	if diff := cmp.Diff(want, p.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want st7789.Config
	}{
		{
			name: "defaults",
			want: st7789.Config{
				Port:       0,
				ChipSelect: 1,
				SpeedHz:    80_000_000,
				Chip:       "gpiochip0",
				DC:         9,
				Reset:      27,
				Backlight:  13,
				Width:      240,
				Height:     320,
				Invert:     true,
			},
		},
		{
			name: "no reset or backlight",
			args: []string{
				"-rotation", "180",
				"-spi-port", "1",
				"-spi-chip-select-pin", "0",
				"-spi-data-command-pin", "25",
				"-spi-reset-pin", "-1",
				"-backlight-pin", "-1",
				"-width", "135",
				"-height", "240",
				"-spi-speed-mhz", "40",
				"-invert=false",
				"-offset-left", "52",
				"-offset-top", "40",
				"-gpio-chip", "gpiochip4",
			},
			want: st7789.Config{
				Port:       1,
				ChipSelect: 0,
				SpeedHz:    40_000_000,
				Chip:       "gpiochip4",
				DC:         25,
				Reset:      st7789.NoPin,
				Backlight:  st7789.NoPin,
				Width:      135,
				Height:     240,
				Rotation:   180,
				OffsetLeft: 52,
				OffsetTop:  40,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			options := DefaultOptions
			fs := flag.NewFlagSet(test.name, flag.ContinueOnError)
			options.RegisterFlags(fs)
			if err := fs.Parse(test.args); err != nil {
				t.Fatal(err)
			}

			got := options.Config()
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Config() mismatch (-want +got):\n%s", diff)
			}
			if err := got.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestPinBelowMinusOne(t *testing.T) {
	options := DefaultOptions
	options.BacklightPin = -5
	if got := options.Config().Backlight; got != st7789.NoPin {
		t.Errorf("Backlight = %d, want NoPin", got)
	}
}
