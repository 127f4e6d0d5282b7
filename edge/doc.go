// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package edge contains the pixel operations used by the edges tools:
// grayscale conversion, gradient filters with the Sobel and Prewitt
// kernels, a fixed threshold detector, and a weighted combination of
// the three.
//
// Every operation reads its source and returns a freshly allocated
// *image.Gray of the same bounds; sources are never modified. The
// outermost one pixel ring of any gradient based output is left at 0,
// as no padding is done at the image border.
//
// Intensity is read from the red channel of each pixel. For an
// *image.Gray this is simply the gray value, so grayscale conversion
// of an already gray image returns an identical image.
package edge
