package tutorial

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Checkerboard returns tightly packed RGBA pixels of alternating cell-sized
// squares, starting with a at the first pixel.
func Checkerboard(width, height, cell int, a, b color.RGBA) []byte {
	if cell < 1 {
		cell = 1
	}
	pix := make([]byte, 4*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			i := 4 * (y*width + x)
			pix[i+0], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return pix
}

var regular *truetype.Font

func regularFont() (*truetype.Font, error) {
	if regular != nil {
		return regular, nil
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	regular = f
	return f, nil
}

// Label renders s in fg on a transparent image sized to fit, with pad pixels
// on each side.
func Label(s string, size float64, pad int, fg color.Color) (*image.RGBA, error) {
	fnt, err := regularFont()
	if err != nil {
		return nil, fmt.Errorf("tutorial: parse font: %w", err)
	}
	face := truetype.NewFace(fnt, &truetype.Options{Size: size, Hinting: font.HintingFull})
	defer face.Close()

	m := face.Metrics()
	adv := font.MeasureString(face, s).Ceil()
	height := (m.Ascent + m.Descent).Ceil()
	dst := image.NewRGBA(image.Rect(0, 0, adv+2*pad, height+2*pad))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)

	dr := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(pad), Y: fixed.I(pad) + m.Ascent},
	}
	dr.DrawString(s)
	return dst, nil
}
