// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// edgeview is a graphical tool to open an image and try the edge
// detection operations on it interactively.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"rescribe.xyz/edges/internal/pipeline"
)

const usage = `Usage: edgeview [-v] [image]

Opens a window to view an image and run edge detection operations
on it. Each operation works on whatever image is currently shown,
so they can be combined by pressing several buttons in turn.
`

func main() {
	verbose := flag.Bool("v", false, "verbose")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", 0)
	} else {
		var n pipeline.NullWriter
		verboselog = log.New(n, "", 0)
	}

	myApp := app.New()
	v := newViewer(myApp, verboselog)

	if flag.NArg() == 1 {
		err := v.open(flag.Arg(0))
		if err != nil {
			log.Printf("Error opening %s: %v\n", flag.Arg(0), err)
		}
	}

	v.win.ShowAndRun()
}
