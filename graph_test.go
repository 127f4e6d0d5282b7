// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edges

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"rescribe.xyz/edges/edge"
)

func TestGraph(t *testing.T) {
	var buf bytes.Buffer
	err := Graph(edge.Combine(testimg(40, 30)), "combined", &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Graph is not a valid png: %v", err)
	}
	if g.Bounds().Dx() != 1920 || g.Bounds().Dy() != 1080 {
		t.Errorf("Graph has unexpected size %v", g.Bounds())
	}
}

func TestGraphBlack(t *testing.T) {
	var buf bytes.Buffer
	black := image.NewGray(image.Rect(0, 0, 10, 10))
	err := Graph(black, "black", &buf)
	if !errors.Is(err, ErrNoPixels) {
		t.Errorf("Expected ErrNoPixels graphing an all black image, got %v", err)
	}
	err = GraphOpts(black, "black", edge.Cutoff, false, &buf)
	if err != nil {
		t.Errorf("Unexpected error graphing with black included: %v", err)
	}
}

func TestCutoffAnnotation(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	copy(img.Pix, []uint8{50, 100, 150, 200})

	cases := []struct {
		cutoff uint8
		label  string
	}{
		{128, "50.0% >= 128"},
		{100, "75.0% >= 100"},
		{0, "100.0% >= 0"},
		{255, "0.0% >= 255"},
	}

	for _, c := range cases {
		t.Run(c.label, func(t *testing.T) {
			a := cutoffAnnotation(img, c.cutoff, 10)
			if a.Label != c.label {
				t.Errorf("Expected label %q, got %q", c.label, a.Label)
			}
			if a.XValue != float64(c.cutoff) {
				t.Errorf("Expected the annotation at %d, got %f", c.cutoff, a.XValue)
			}
		})
	}
}
