package main

import (
	"bytes"
	"image"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"golang.org/x/image/draw"
)

// preview prints img to the terminal, scaled to cols blocks wide.
func preview(img image.Image, cols int) error {
	return renderPreview(colorable.NewColorableStdout(), ansi256.Default, img, cols)
}

func renderPreview(w io.Writer, palette *ansi256.Palette, img image.Image, cols int) error {
	b := img.Bounds()
	rows := b.Dy() * cols / b.Dx()
	if rows < 1 {
		rows = 1
	}
	small := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, draw.Src, nil)

	var buf bytes.Buffer
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			_, _ = buf.WriteString(palette.Block(small.NRGBAAt(x, y)))
		}
		_, _ = buf.WriteString("\033[0m\n")
	}
	_, err := buf.WriteTo(w)
	return err
}
