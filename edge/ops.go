// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edge

import (
	"fmt"
	"image"
	"sort"
	"strings"
)

// Func is an operation which creates a new image from img
type Func func(img image.Image) image.Image

var ops = map[string]Func{
	"grayscale": func(img image.Image) image.Image { return Grayscale(img) },
	"sobel":     func(img image.Image) image.Image { return Gradient(img, Sobel) },
	"prewitt":   func(img image.Image) image.Image { return Gradient(img, Prewitt) },
	"threshold": func(img image.Image) image.Image { return Threshold(img) },
	"combined":  func(img image.Image) image.Image { return Combine(img) },
}

// aliases for operation names
var aliases = map[string]string{
	"gray":    "grayscale",
	"grey":    "grayscale",
	"canny":   "threshold",
	"combine": "combined",
}

// Lookup finds the operation with the given name
func Lookup(name string) (Func, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[n]; ok {
		n = a
	}
	f, ok := ops[n]
	if !ok {
		return nil, fmt.Errorf("Unknown operation %q, must be one of %s", name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names lists the available operations, sorted alphabetically
func Names() []string {
	var names []string
	for n := range ops {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Chain runs each named operation in turn, with each one reading the
// result of the one before. All names are checked before anything is
// run.
func Chain(img image.Image, names ...string) (image.Image, error) {
	var fns []Func
	for _, n := range names {
		f, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		fns = append(fns, f)
	}
	for _, f := range fns {
		img = f(img)
	}
	return img, nil
}

// ParseList splits a comma separated list of operation names,
// checking that each is valid
func ParseList(s string) ([]string, error) {
	var names []string
	for _, n := range strings.Split(s, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, err := Lookup(n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("No operations given")
	}
	return names, nil
}
