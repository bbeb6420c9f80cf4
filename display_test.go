package st7789

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestImageToDataColors(t *testing.T) {
	for _, tc := range []struct {
		name string
		c    color.Color
		want []byte
	}{
		{"red", color.RGBA{R: 0xff, A: 0xff}, []byte{0xf8, 0x00}},
		{"green", color.RGBA{G: 0xff, A: 0xff}, []byte{0x07, 0xe0}},
		{"blue", color.RGBA{B: 0xff, A: 0xff}, []byte{0x00, 0x1f}},
		{"white", color.White, []byte{0xff, 0xff}},
		{"black", color.Black, []byte{0x00, 0x00}},
		{"low bits dropped", color.RGBA{R: 0x07, G: 0x03, B: 0x07, A: 0xff}, []byte{0x00, 0x00}},
		{"gray", color.Gray{Y: 0x80}, []byte{0x84, 0x10}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 1, 1))
			img.Set(0, 0, tc.c)

			if diff := cmp.Diff(ImageToData(img, NoRotation), tc.want); diff != "" {
				t.Errorf("ImageToData() difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestImageToDataDeterministic(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 7, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 37), G: uint8(y * 51), B: uint8(x * y), A: 0xff})
		}
	}

	for r := NoRotation; r <= Rotate270; r++ {
		first := ImageToData(img, r)
		second := ImageToData(img, r)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s: repeated ImageToData() difference (-first +second):\n%s", r, diff)
		}
		if len(first) != 7*5*2 {
			t.Errorf("%s: expected %d bytes, got %d", r, 7*5*2, len(first))
		}
	}
}

func TestImageToDataRotate180(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	img.Set(1, 0, color.RGBA{G: 0xff, A: 0xff})
	img.Set(2, 0, color.RGBA{B: 0xff, A: 0xff})

	want := []byte{0x00, 0x1f, 0x07, 0xe0, 0xf8, 0x00}
	if diff := cmp.Diff(ImageToData(img, Rotate180), want); diff != "" {
		t.Errorf("ImageToData() difference (-got +want):\n%s", diff)
	}
}
