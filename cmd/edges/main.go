// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// edges runs a list of edge detection operations on an image.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	"rescribe.xyz/edges"
	"rescribe.xyz/edges/edge"
	"rescribe.xyz/edges/internal/pipeline"
)

const usage = `Usage: edges [-v] [-t cutoff] [-graph graph.png] op[,op...] inimg outimg

Runs each of a comma separated list of operations on inimg in turn,
with each operation working on the result of the one before, and
saves the final result to outimg as a PNG.

The operations are:
  grayscale   the red channel of each pixel, as a gray image
  sobel       gradient magnitude with the Sobel kernels
  prewitt     gradient magnitude with the Prewitt kernels
  threshold   sobel, set to white at the cutoff or above (also 'canny')
  combined    a blend of sobel, prewitt and threshold

`

func main() {
	verbose := flag.Bool("v", false, "verbose")
	cutoff := flag.Int("t", edge.Cutoff, "cutoff for the threshold operation (0-255)")
	graph := flag.String("graph", "", "also save a graph of the result's intensities to this file")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}

	if *cutoff < 0 || *cutoff > 255 {
		log.Fatalf("Cutoff %d is out of range, must be 0-255\n", *cutoff)
	}

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", 0)
	} else {
		var n pipeline.NullWriter
		verboselog = log.New(n, "", 0)
	}

	ops, err := edge.ParseList(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}

	img, err := edges.DecodeFile(flag.Arg(1))
	if err != nil {
		log.Fatalln(err)
	}

	for _, op := range ops {
		verboselog.Println("Running", op)
		img, err = run(img, op, uint8(*cutoff))
		if err != nil {
			log.Fatalln(err)
		}
	}

	err = edges.EncodeFile(flag.Arg(2), img)
	if err != nil {
		log.Fatalln(err)
	}
	verboselog.Println("Saved", flag.Arg(2))

	if *graph != "" {
		err = saveGraph(*graph, img, strings.Join(ops, ", "), uint8(*cutoff), verboselog)
		if err != nil {
			log.Fatalln(err)
		}
		verboselog.Println("Saved graph", *graph)
	}
}

// saveGraph writes a histogram of img to path, marking cutoff. Black
// pixels are left out unless there is nothing else to show.
func saveGraph(path string, img image.Image, title string, cutoff uint8, logger *log.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Could not create file %s: %v", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	err = edges.GraphOpts(img, title, cutoff, true, &buf)
	if errors.Is(err, edges.ErrNoPixels) {
		logger.Println("No pixels above black, so including black in the graph")
		buf.Reset()
		err = edges.GraphOpts(img, title, cutoff, false, &buf)
	}
	if err != nil {
		return fmt.Errorf("Could not create graph: %v", err)
	}

	_, err = buf.WriteTo(f)
	if err != nil {
		return fmt.Errorf("Could not write graph %s: %v", path, err)
	}
	return nil
}

// run runs a single operation, using the custom cutoff for
// thresholding
func run(img image.Image, op string, cutoff uint8) (image.Image, error) {
	switch strings.ToLower(strings.TrimSpace(op)) {
	case "threshold", "canny":
		return edge.ThresholdAt(img, cutoff), nil
	}
	return edge.Chain(img, op)
}
