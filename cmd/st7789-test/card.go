package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

var namedColors = map[string]color.NRGBA{
	"black": {A: 0xff},
	"white": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"red":   {R: 0xff, A: 0xff},
	"green": {G: 0xff, A: 0xff},
	"blue":  {B: 0xff, A: 0xff},
}

func parseColor(s string) (color.NRGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	c := color.NRGBA{A: 0xff}
	if _, err := fmt.Sscanf(strings.TrimPrefix(s, "#"), "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}

func fillImage(s string, r image.Rectangle) (image.Image, error) {
	c, err := parseColor(s)
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(r)
	draw.Draw(dst, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
	return dst, nil
}

// loadImage decodes name and scales it to fill r.
func loadImage(name string, r image.Rectangle) (image.Image, error) {
	src, err := gg.LoadImage(name)
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(r)
	draw.CatmullRom.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// testCard draws a gradient with a frame, color swatches and a caption.
func testCard(r image.Rectangle, name, rotation string) (image.Image, error) {
	w, h := float64(r.Dx()), float64(r.Dy())
	dc := gg.NewContext(r.Dx(), r.Dy())

	grad := gg.NewLinearGradient(0, 0, w, h)
	grad.AddColorStop(0, color.NRGBA{R: 0x20, G: 0x10, B: 0x60, A: 0xff})
	grad.AddColorStop(1, color.NRGBA{R: 0x00, G: 0x90, B: 0x80, A: 0xff})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// Outermost pixels show whether offsets are right.
	dc.SetColor(color.White)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, w-1, h-1)
	dc.Stroke()

	swatches := []color.NRGBA{namedColors["red"], namedColors["green"], namedColors["blue"], namedColors["white"]}
	radius := math.Min(w, h) / 12
	for i, c := range swatches {
		dc.SetColor(c)
		dc.DrawCircle(w*float64(i+1)/float64(len(swatches)+1), h/4, radius)
		dc.Fill()
	}

	// Top-left marker, to check rotation.
	dc.SetColor(namedColors["red"])
	dc.DrawRectangle(2, 2, radius, radius)
	dc.Fill()

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: math.Max(10, w/14)}))

	caption := fmt.Sprintf("%s %s", name, rotation)
	tw, th := dc.MeasureString(caption)
	padding := th / 2
	dc.SetColor(color.NRGBA{A: 0xa0})
	dc.DrawRoundedRectangle(w/2-tw/2-padding, h/2-th/2-padding, tw+2*padding, th+2*padding, padding)
	dc.Fill()
	dc.SetColor(color.White)
	dc.DrawStringAnchored(caption, w/2, h/2, 0.5, 0.5)

	return dc.Image(), nil
}
