// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edge

import (
	"image"
	"math"
)

// Kernel is a 3x3 convolution matrix, indexed [row][column]
type Kernel [3][3]int

// Family is a pair of kernels giving the horizontal (X) and
// vertical (Y) gradient of an image
type Family struct {
	Name string
	X, Y Kernel
}

// Sobel weights the centre row and column twice as heavily as the
// others
var Sobel = Family{
	Name: "sobel",
	X: Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	},
	Y: Kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	},
}

// Prewitt weights the whole neighbourhood evenly
var Prewitt = Family{
	Name: "prewitt",
	X: Kernel{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	},
	Y: Kernel{
		{-1, -1, -1},
		{0, 0, 0},
		{1, 1, 1},
	},
}

// convolve returns the horizontal and vertical responses of the
// kernel family f at the point x, y of gray, which must have at least
// one pixel on every side of it
func convolve(gray *image.Gray, f Family, x, y int) (gx, gy int) {
	for j := -1; j <= 1; j++ {
		off := gray.PixOffset(x-1, y+j)
		for i := -1; i <= 1; i++ {
			v := int(gray.Pix[off+i+1])
			gx += v * f.X[j+1][i+1]
			gy += v * f.Y[j+1][i+1]
		}
	}
	return gx, gy
}

// magnitude combines a gradient pair into a rounded value clamped
// to the 0-255 range
func magnitude(gx, gy int) uint8 {
	m := math.Round(math.Sqrt(float64(gx*gx + gy*gy)))
	if m > 255 {
		return 255
	}
	return uint8(m)
}

// Gradient creates an image of the gradient magnitude of img using
// the kernel family f. Border pixels are not processed and stay 0.
func Gradient(img image.Image, f Family) *image.Gray {
	gray := Grayscale(img)
	b := gray.Bounds()
	new := image.NewGray(b)

	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			gx, gy := convolve(gray, f, x, y)
			new.Pix[new.PixOffset(x, y)] = magnitude(gx, gy)
		}
	}

	return new
}
