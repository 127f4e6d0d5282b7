// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"rescribe.xyz/edges/edge"
)

func testpng(t *testing.T) *bytes.Buffer {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 20; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 12), 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		t.Fatalf("Error encoding test image: %v", err)
	}
	return &buf
}

func TestOpButtons(t *testing.T) {
	for _, b := range opButtons {
		t.Run(b.label, func(t *testing.T) {
			if _, err := edge.Lookup(b.op); err != nil {
				t.Errorf("Button %s has an invalid operation: %v", b.label, err)
			}
		})
	}
}

func TestViewer(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	v := newViewer(a, log.New(io.Discard, "", 0))

	// nothing loaded, so nothing should happen
	v.apply("sobel")
	if v.img.Image != nil {
		t.Fatalf("Expected no image to be shown")
	}

	err := v.load(strings.NewReader("not an image"), "bad.png")
	if err == nil {
		t.Fatalf("Expected an error loading a bad image")
	}

	err = v.load(testpng(t), "test.png")
	if err != nil {
		t.Fatalf("Unexpected error loading image: %v", err)
	}
	if v.img.Image == nil {
		t.Fatalf("Expected the image to be shown")
	}

	v.apply("sobel")
	if _, ok := v.img.Image.(*image.Gray); !ok {
		t.Errorf("Expected a gray image after sobel, got %T", v.img.Image)
	}
	if !strings.Contains(v.status.Text, "sobel") {
		t.Errorf("Status does not mention the operation: %q", v.status.Text)
	}
	if v.saveName() != "test_sobel.png" {
		t.Errorf("Unexpected save name %s", v.saveName())
	}

	v.reset()
	if _, ok := v.img.Image.(*image.Gray); ok {
		t.Errorf("Expected the original image after reset")
	}
	if v.saveName() != "test.png" {
		t.Errorf("Unexpected save name %s", v.saveName())
	}
}
