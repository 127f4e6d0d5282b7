// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edge

import (
	"image"
	"image/color"
	"math/rand"
)

// step creates a gray image which is lo to the left of column k and
// hi from it onwards
func step(w, h, k int, lo, hi uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < k {
				img.SetGray(x, y, color.Gray{lo})
			} else {
				img.SetGray(x, y, color.Gray{hi})
			}
		}
	}
	return img
}

// noise creates a colour image with repeatable random content
func noise(w, h int, seed int64) *image.NRGBA {
	r := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	r.Read(img.Pix)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

func imgsequal(img1 *image.Gray, img2 *image.Gray) bool {
	b := img1.Bounds()
	if !b.Eq(img2.Bounds()) {
		return false
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img1.GrayAt(x, y) != img2.GrayAt(x, y) {
				return false
			}
		}
	}
	return true
}

// borderzero checks that every pixel on the outer ring of img is 0
func borderzero(img *image.Gray) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x != b.Min.X && x != b.Max.X-1 && y != b.Min.Y && y != b.Max.Y-1 {
				continue
			}
			if img.GrayAt(x, y).Y != 0 {
				return false
			}
		}
	}
	return true
}
