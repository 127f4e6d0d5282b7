// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"rescribe.xyz/edges"
)

// opButtons are the operations offered, in the order shown
var opButtons = []struct {
	label, op string
}{
	{"Grayscale", "grayscale"},
	{"Sobel", "sobel"},
	{"Prewitt", "prewitt"},
	{"Threshold", "threshold"},
	{"Combined", "combined"},
}

type viewer struct {
	win    fyne.Window
	sess   *edges.Session
	img    *canvas.Image
	status *widget.Label
	name   string
}

// newViewer creates the main window, with the image on the left and
// a column of buttons on the right
func newViewer(a fyne.App, logger *log.Logger) *viewer {
	v := &viewer{
		win:    a.NewWindow("Edge Detection"),
		sess:   &edges.Session{Logger: logger},
		img:    &canvas.Image{FillMode: canvas.ImageFillContain, ScaleMode: canvas.ImageScalePixels},
		status: widget.NewLabel("Open an image to begin"),
	}

	openbtn := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), func() {
		dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, v.win)
				return
			}
			if r == nil {
				return
			}
			defer r.Close()
			err = v.load(r, r.URI().Name())
			if err != nil {
				dialog.ShowError(err, v.win)
			}
		}, v.win)
	})

	buttons := container.NewVBox(openbtn, widget.NewSeparator())
	for _, b := range opButtons {
		op := b.op
		buttons.Add(widget.NewButton(b.label, func() {
			v.apply(op)
		}))
	}

	resetbtn := widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() {
		v.reset()
	})
	savebtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		if v.sess.Current() == nil {
			return
		}
		d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, v.win)
				return
			}
			if w == nil {
				return
			}
			path := w.URI().Path()
			w.Close()
			err = v.save(path)
			if err != nil {
				dialog.ShowError(err, v.win)
			}
		}, v.win)
		d.SetFileName(v.saveName())
		d.Show()
	})
	buttons.Add(widget.NewSeparator())
	buttons.Add(resetbtn)
	buttons.Add(savebtn)

	content := container.NewBorder(nil, v.status, nil, buttons, v.img)
	v.win.SetContent(content)
	v.win.Resize(fyne.NewSize(1000, 700))

	return v
}

// open loads the image at path
func (v *viewer) open(path string) error {
	err := v.sess.Load(path)
	if err != nil {
		return err
	}
	v.name = filepath.Base(path)
	v.show()
	return nil
}

// load decodes an image from r, which is called name
func (v *viewer) load(r io.Reader, name string) error {
	img, err := edges.Decode(r)
	if err != nil {
		return fmt.Errorf("Error loading image %s: %v", name, err)
	}
	err = v.sess.LoadImage(img)
	if err != nil {
		return err
	}
	v.name = name
	v.show()
	return nil
}

// apply runs an operation on the current image. Nothing happens if
// no image has been opened yet.
func (v *viewer) apply(op string) {
	err := v.sess.Apply(op)
	if errors.Is(err, edges.ErrNoImage) {
		return
	}
	if err != nil {
		dialog.ShowError(err, v.win)
		return
	}
	v.show()
}

func (v *viewer) reset() {
	if v.sess.Reset() == nil {
		v.show()
	}
}

func (v *viewer) save(path string) error {
	return v.sess.Save(path)
}

// saveName suggests a file name for the current image
func (v *viewer) saveName() string {
	base := v.name[:len(v.name)-len(filepath.Ext(v.name))]
	if base == "" {
		base = "image"
	}
	if op := v.sess.LastOp(); op != "" {
		base += "_" + op
	}
	return base + ".png"
}

// show displays the current image and updates the status line
func (v *viewer) show() {
	cur := v.sess.Current()
	v.img.Image = cur
	v.img.Refresh()

	b := cur.Bounds()
	s := fmt.Sprintf("%s  %dx%d", v.name, b.Dx(), b.Dy())
	if op := v.sess.LastOp(); op != "" {
		s += "  " + op
	}
	v.status.SetText(s)
}
