// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edges

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/nfnt/resize"
	"github.com/nickjwhite/gofpdf"
)

const pageWidth = 5      // pageWidth in inches
const maxThumb = 1200    // longest side of images in the pdf, in pixels
const captionHeight = 60 // height of the caption area, in pixels

// pxToPt converts a pixel value into a pt value (72 pts per inch)
// This uses pageWidth to determine the appropriate value
func pxToPt(i int) float64 {
	return float64(i) / pageWidth
}

// Fpdf is a contact sheet of images, one per page, each with a
// caption underneath
type Fpdf struct {
	fpdf  *gofpdf.Fpdf
	pages int
}

// Setup creates a new PDF with appropriate settings and fonts
func (p *Fpdf) Setup() error {
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	p.fpdf.SetFont("Helvetica", "", 10)
	p.fpdf.SetAutoPageBreak(false, float64(0))
	return p.fpdf.Error()
}

// AddPage adds a page to the pdf with the image at imgpath, scaled
// down if it is large, and a caption below it
func (p *Fpdf) AddPage(imgpath, caption string) error {
	img, err := DecodeFile(imgpath)
	if err != nil {
		return err
	}
	thumb := resize.Thumbnail(maxThumb, maxThumb, img, resize.Bilinear)
	b := thumb.Bounds()

	var buf bytes.Buffer
	err = png.Encode(&buf, thumb)
	if err != nil {
		return fmt.Errorf("Could not encode thumbnail of %s: %v", imgpath, err)
	}

	p.pages++
	name := fmt.Sprintf("page%d", p.pages)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.fpdf.AddPageFormat("P", gofpdf.SizeType{Wd: pxToPt(b.Dx()), Ht: pxToPt(b.Dy() + captionHeight)})
	p.fpdf.RegisterImageOptionsReader(name, opts, &buf)
	p.fpdf.ImageOptions(name, 0, 0, pxToPt(b.Dx()), pxToPt(b.Dy()), false, opts, 0, "")

	p.fpdf.SetXY(0, pxToPt(b.Dy()))
	p.fpdf.CellFormat(pxToPt(b.Dx()), pxToPt(captionHeight), caption, "", 0, "CM", false, 0, "")

	return p.fpdf.Error()
}

// Pages returns the number of pages added so far
func (p *Fpdf) Pages() int {
	return p.pages
}

// Save saves the PDF to the file at path
func (p *Fpdf) Save(path string) error {
	return p.fpdf.OutputFileAndClose(path)
}
