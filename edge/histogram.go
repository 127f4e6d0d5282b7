// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edge

import (
	"image"
)

// Histogram counts how many pixels of img have each gray value
func Histogram(img *image.Gray) [256]int {
	var h [256]int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			h[img.GrayAt(x, y).Y]++
		}
	}
	return h
}

// Proportion returns the fraction of pixels in img with a value at
// or above cutoff
func Proportion(img *image.Gray, cutoff uint8) float64 {
	h := Histogram(img)
	var above, total int
	for v, n := range h {
		total += n
		if v >= int(cutoff) {
			above += n
		}
	}
	if total == 0 {
		return 0
	}
	return float64(above) / float64(total)
}
