// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// rmset removes a set of images, and its results, from storage.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rescribe.xyz/edges"
	"rescribe.xyz/edges/internal/pipeline"
)

const usage = `Usage: rmset [-c conn] [-v] setname...

Removes sets of images, along with their results, from storage.
`

type RmPipeliner interface {
	pipeline.Deleter
	MinimalInit() error
}

func main() {
	verbose := flag.Bool("v", false, "verbose")
	conntype := flag.String("c", "local", "connection type ('aws' or 'local')")
	region := flag.String("region", "", "aws region, if using aws storage")
	bucket := flag.String("bucket", "", "aws bucket, if using aws storage")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", log.LstdFlags)
	} else {
		var n pipeline.NullWriter
		verboselog = log.New(n, "", log.LstdFlags)
	}

	var conn RmPipeliner
	switch *conntype {
	case "aws":
		conn = &edges.AwsConn{Region: *region, Bucket: *bucket, Logger: verboselog}
	case "local":
		conn = &edges.LocalConn{Logger: verboselog}
	default:
		log.Fatalln("Unknown connection type")
	}

	err := conn.MinimalInit()
	if err != nil {
		log.Fatalln("Error setting up connection:", err)
	}

	for _, name := range flag.Args() {
		err = pipeline.DeleteSet(conn, name)
		if err != nil {
			log.Fatalln(err)
		}
		fmt.Println("Removed", name)
	}
}
