package st7789

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
)

type record struct {
	cmd  byte
	data []byte
}

// fakePanel is both the bus and the GPIO chip. Bytes sent while DC is low start a new
// record per byte, bytes sent while DC is high are appended to the last record.
type fakePanel struct {
	lines   map[string]*fakeLine
	events  []string
	tx      [][]byte
	records []record
	closed  bool

	txErr   error
	lineErr map[string]error
}

func newFakePanel() *fakePanel {
	return &fakePanel{
		lines:   make(map[string]*fakeLine),
		lineErr: make(map[string]error),
	}
}

func (p *fakePanel) Line(offset int, consumer string, initial gpio.Level) (Line, error) {
	if err := p.lineErr[consumer]; err != nil {
		return nil, err
	}
	l := &fakeLine{
		p:      p,
		name:   consumer,
		offset: offset,
		level:  initial,
	}
	p.lines[consumer] = l
	p.events = append(p.events, fmt.Sprintf("acquire %s=%s", consumer, initial))
	return l, nil
}

func (p *fakePanel) Tx(w, r []byte) error {
	if p.txErr != nil {
		return p.txErr
	}
	buf := append([]byte(nil), w...)
	p.tx = append(p.tx, buf)
	if p.lines[consumerDC].level == gpio.Low {
		for _, b := range buf {
			p.records = append(p.records, record{cmd: b})
		}
		return nil
	}
	if len(p.records) == 0 {
		return fmt.Errorf("data %x without a command", buf)
	}
	cur := &p.records[len(p.records)-1]
	cur.data = append(cur.data, buf...)
	return nil
}

func (p *fakePanel) Close() error {
	p.closed = true
	return nil
}

// reset forgets everything recorded so far.
func (p *fakePanel) reset() {
	p.events = nil
	p.tx = nil
	p.records = nil
}

// lineEvents returns the recorded events without the DC toggles.
func (p *fakePanel) lineEvents() []string {
	var out []string
	for _, e := range p.events {
		if !strings.HasPrefix(e, consumerDC+"=") {
			out = append(out, e)
		}
	}
	return out
}

type fakeLine struct {
	p      *fakePanel
	name   string
	offset int
	level  gpio.Level
	closed bool
}

func (l *fakeLine) Out(level gpio.Level) error {
	l.level = level
	l.p.events = append(l.p.events, fmt.Sprintf("%s=%s", l.name, level))
	return nil
}

func (l *fakeLine) Close() error {
	l.closed = true
	return nil
}

// fakeSleep records delays as events instead of blocking.
func fakeSleep(t *testing.T, p *fakePanel) {
	t.Helper()
	restore := sleep
	sleep = func(d time.Duration) {
		p.events = append(p.events, "sleep "+d.String())
	}
	t.Cleanup(func() { sleep = restore })
}

func testConfig(w, h int) Config {
	config := DefaultConfig
	config.Width = w
	config.Height = h
	return config
}

func newTestDev(t *testing.T, config Config) (*Dev, *fakePanel) {
	t.Helper()
	p := newFakePanel()
	fakeSleep(t, p)
	d, err := New(p, p, &config)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return d, p
}
