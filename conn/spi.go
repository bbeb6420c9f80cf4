// Package conn opens the SPI buses and GPIO lines a panel is wired to.
//
// OpenSPI and Registry go through periph.io, CdevChip through the GPIO character device
// (the same kernel interface libgpiod uses) and OpenSpidev talks to spidev directly.
package conn

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// SPI is a periph.io SPI port connected in mode 0, most significant bit first.
type SPI struct {
	port spi.PortCloser
	conn spi.Conn
}

// OpenSPI opens port and chip select cs at hz.
func OpenSPI(port, cs int, hz int64) (*SPI, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	p, err := spireg.Open(fmt.Sprintf("SPI%d.%d", port, cs))
	if err != nil {
		return nil, err
	}

	// spi.Mode0 without spi.LSBFirst sends the most significant bit first.
	c, err := p.Connect(physic.Frequency(hz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		_ = p.Close()
		return nil, err
	}

	return &SPI{
		port: p,
		conn: c,
	}, nil
}

func (s *SPI) String() string {
	return fmt.Sprintf("SPI bus %s", s.conn)
}

// Tx writes w and reads into r, if not nil.
func (s *SPI) Tx(w, r []byte) error {
	return s.conn.Tx(w, r)
}

func (s *SPI) Close() error {
	return s.port.Close()
}
