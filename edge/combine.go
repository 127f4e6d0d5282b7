// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edge

import (
	"image"
	"math"
)

// Weights given to each detector by Combine
const (
	SobelWeight     = 0.25
	PrewittWeight   = 0.25
	ThresholdWeight = 0.5
)

// blend mixes one pixel from each detector
func blend(sobel, prewitt, thresh uint8) uint8 {
	v := math.Round(SobelWeight*float64(sobel) + PrewittWeight*float64(prewitt) + ThresholdWeight*float64(thresh))
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// Combine runs the Sobel, Prewitt and Threshold detectors separately
// on img, and blends their results together, with most weight given
// to the thresholded result
func Combine(img image.Image) *image.Gray {
	sobel := Gradient(img, Sobel)
	prewitt := Gradient(img, Prewitt)
	thresh := Threshold(img)

	new := image.NewGray(sobel.Bounds())
	for i := range new.Pix {
		new.Pix[i] = blend(sobel.Pix[i], prewitt.Pix[i], thresh.Pix[i])
	}

	return new
}
