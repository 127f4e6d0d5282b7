// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edges

import (
	"errors"
	"image"
	"log"
	"os"
	"sync"

	"rescribe.xyz/edges/edge"
)

// ErrNoImage is returned when an operation is requested before an
// image has been loaded
var ErrNoImage = errors.New("No image loaded")

// Session holds the image currently being worked on, and applies
// operations to it one at a time. Each operation replaces the current
// image with a new one; images are never changed once created. It is
// safe to use a Session from several goroutines, though operations are
// run one after the other.
type Session struct {
	// this should be set before use, or left to default
	Logger *log.Logger

	mu      sync.Mutex
	orig    image.Image
	current image.Image
	lastop  string
}

var stdoutLogger = log.New(os.Stdout, "", 0)

func (s *Session) logger() *log.Logger {
	if s.Logger == nil {
		return stdoutLogger
	}
	return s.Logger
}

// Load decodes the image at path and makes it the current image. If
// decoding fails the current image is left as it was.
func (s *Session) Load(path string) error {
	img, err := DecodeFile(path)
	if err != nil {
		return err
	}
	s.logger().Println("Loaded", path)
	return s.LoadImage(img)
}

// LoadImage makes img the current image
func (s *Session) LoadImage(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return errors.New("Image has no pixels")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orig = img
	s.current = img
	s.lastop = ""
	return nil
}

// Apply runs the named operation on the current image, replacing it
// with the result. If no image has been loaded nothing is done, and
// ErrNoImage is returned.
func (s *Session) Apply(name string) error {
	f, err := edge.Lookup(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		s.logger().Println("Ignoring", name, "as no image is loaded")
		return ErrNoImage
	}
	s.logger().Println("Applying", name)
	s.current = f(s.current)
	s.lastop = name
	return nil
}

// Current returns the current image, or nil if none is loaded
func (s *Session) Current() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// LastOp returns the name of the operation which produced the current
// image, or "" if it is the image as loaded
func (s *Session) LastOp() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastop
}

// Reset goes back to the image as it was loaded
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orig == nil {
		return ErrNoImage
	}
	s.current = s.orig
	s.lastop = ""
	return nil
}

// Save writes the current image to path as a PNG
func (s *Session) Save(path string) error {
	img := s.Current()
	if img == nil {
		return ErrNoImage
	}
	err := EncodeFile(path, img)
	if err != nil {
		return err
	}
	s.logger().Println("Saved", path)
	return nil
}
