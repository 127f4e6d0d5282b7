// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edge

import (
	"image"
)

// Cutoff is the Sobel magnitude at or above which Threshold marks a
// pixel as an edge
const Cutoff = 128

// Threshold binarizes the Sobel gradient of img at Cutoff, giving
// 255 for edges and 0 for everything else. This is a plain fixed
// threshold, with no smoothing, thinning or hysteresis.
func Threshold(img image.Image) *image.Gray {
	return ThresholdAt(img, Cutoff)
}

// ThresholdAt binarizes the Sobel gradient of img at the given
// cutoff. The border stays 0 whatever the cutoff.
func ThresholdAt(img image.Image, cutoff uint8) *image.Gray {
	new := Gradient(img, Sobel)
	b := new.Bounds()
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			i := new.PixOffset(x, y)
			if new.Pix[i] < cutoff {
				new.Pix[i] = 0
			} else {
				new.Pix[i] = 255
			}
		}
	}
	return new
}
