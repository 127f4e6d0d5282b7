// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edges

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"rescribe.xyz/edges/edge"
)

func TestPdf(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, op := range []string{"sobel", "combined"} {
		img, err := edge.Chain(testimg(50, 40), op)
		if err != nil {
			t.Fatalf("Error running %s: %v", op, err)
		}
		p := filepath.Join(dir, op+".png")
		err = EncodeFile(p, img)
		if err != nil {
			t.Fatalf("Error saving %s: %v", p, err)
		}
		paths = append(paths, p)
	}

	var pdf Fpdf
	err := pdf.Setup()
	if err != nil {
		t.Fatalf("Error setting up pdf: %v", err)
	}
	for _, p := range paths {
		err = pdf.AddPage(p, filepath.Base(p))
		if err != nil {
			t.Fatalf("Error adding %s: %v", p, err)
		}
	}
	if pdf.Pages() != 2 {
		t.Errorf("Expected 2 pages, got %d", pdf.Pages())
	}

	out := filepath.Join(dir, "sheet.pdf")
	err = pdf.Save(out)
	if err != nil {
		t.Fatalf("Error saving pdf: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Error reading pdf: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Errorf("Saved file does not look like a pdf")
	}

	err = pdf.AddPage(filepath.Join(dir, "missing.png"), "missing")
	if err == nil {
		t.Errorf("Expected an error adding a missing image")
	}
}
