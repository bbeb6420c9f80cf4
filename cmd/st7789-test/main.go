package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	st7789 "github.com/tfemby/ST7789v2-pidi"
	"github.com/tfemby/ST7789v2-pidi/conn"
	"github.com/tfemby/ST7789v2-pidi/pidi"
)

var log = logrus.New()

func main() {
	options := pidi.DefaultOptions
	options.RegisterFlags(flag.CommandLine)
	busFlag := flag.String("bus", "periph", "SPI driver: periph or spidev")
	gpioFlag := flag.String("gpio", "cdev", "GPIO driver: cdev or periph")
	imageFlag := flag.String("image", "", "Image file to show, scaled to the panel")
	fillFlag := flag.String("fill", "", "Fill the panel with a color name or #rrggbb")
	holdFlag := flag.Duration("hold", 5*time.Second, "Time to keep the image on screen")
	previewFlag := flag.Int("preview", 0, "Also print the frame to the terminal, this many columns wide")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debugFlag {
		log.SetLevel(logrus.DebugLevel)
		st7789.Logger = log
	}

	config := options.Config()
	if err := config.Validate(); err != nil {
		fatal(err)
	}

	bus, err := openBus(*busFlag, &config)
	if err != nil {
		fatal(err)
	}
	chip, err := openChip(*gpioFlag, &config)
	if err != nil {
		_ = bus.Close()
		fatal(err)
	}

	dev, err := st7789.New(bus, chip, &config)
	if err != nil {
		_ = bus.Close()
		fatal(err)
	}
	log.Infof("using driver: %s, rotation %s, bus %s", dev, dev.Rotation(), bus)

	output := pidi.New(dev)
	defer func() {
		if err := dev.Halt(); err != nil {
			log.WithError(err).Warn("halt failed")
		}
		if err := output.Close(); err != nil {
			log.WithError(err).Warn("close failed")
		}
	}()

	var img image.Image
	switch {
	case *imageFlag != "":
		img, err = loadImage(*imageFlag, output.Bounds())
	case *fillFlag != "":
		img, err = fillImage(*fillFlag, output.Bounds())
	default:
		img, err = testCard(output.Bounds(), dev.String(), dev.Rotation().String())
	}
	if err != nil {
		fatal(err)
	}

	if *previewFlag > 0 {
		if err = preview(img, *previewFlag); err != nil {
			log.WithError(err).Warn("preview failed")
		}
	}

	start := time.Now()
	if err = output.Redraw(img); err != nil {
		fatal(err)
	}
	log.WithField("took", time.Since(start)).Info("frame sent")

	if err = output.Start(); err != nil {
		fatal(err)
	}
	time.Sleep(*holdFlag)
	if err = output.Stop(); err != nil {
		fatal(err)
	}
}

type spiBus interface {
	st7789.Bus
	Close() error
	String() string
}

func openBus(kind string, config *st7789.Config) (spiBus, error) {
	switch kind {
	case "periph":
		return conn.OpenSPI(config.Port, config.ChipSelect, config.SpeedHz)
	case "spidev":
		c, err := conn.OpenSpidev(config.Port, config.ChipSelect)
		if err != nil {
			return nil, err
		}
		if err = c.Configure(conn.SPIMode0, false, int(config.SpeedHz)); err != nil {
			_ = c.Close()
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported bus type %q", kind)
	}
}

func openChip(kind string, config *st7789.Config) (st7789.Chip, error) {
	switch kind {
	case "cdev":
		return st7789.CdevChip(config.Chip), nil
	case "periph":
		return st7789.AdaptChip(conn.Registry{}), nil
	default:
		return nil, fmt.Errorf("unsupported GPIO type %q", kind)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
