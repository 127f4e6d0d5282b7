// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edge

import (
	"image"
	"image/color"
)

// Grayscale creates a single channel copy of img, with the red
// channel of each pixel used as its intensity
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	new := image.NewGray(b)

	switch src := img.(type) {
	case *image.Gray:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			copy(new.Pix[new.PixOffset(b.Min.X, y):new.PixOffset(b.Max.X, y)],
				src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)])
		}
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := src.PixOffset(b.Min.X, y)
			j := new.PixOffset(b.Min.X, y)
			for x := b.Min.X; x < b.Max.X; x++ {
				new.Pix[j] = src.Pix[i]
				i += 4
				j++
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				new.SetGray(x, y, color.Gray{intensity(img.At(x, y))})
			}
		}
	}

	return new
}

// intensity returns the non-premultiplied red value of c
func intensity(c color.Color) uint8 {
	if g, ok := c.(color.Gray); ok {
		return g.Y
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA).R
}
