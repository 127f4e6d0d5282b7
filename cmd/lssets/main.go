// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// lssets lists the sets of images in storage.
package main

import (
	"flag"
	"fmt"
	"log"

	"rescribe.xyz/edges"
	"rescribe.xyz/edges/internal/pipeline"
)

const usage = `Usage: lssets [-c conn]

Lists the sets of images in storage, oldest first, with the number of
images and results in each and when it was last changed.
`

type LsPipeliner interface {
	pipeline.MetaLister
	MinimalInit() error
}

func main() {
	conntype := flag.String("c", "local", "connection type ('aws' or 'local')")
	region := flag.String("region", "", "aws region, if using aws storage")
	bucket := flag.String("bucket", "", "aws bucket, if using aws storage")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	var n pipeline.NullWriter
	quietlog := log.New(n, "", 0)

	var conn LsPipeliner
	switch *conntype {
	case "aws":
		conn = &edges.AwsConn{Region: *region, Bucket: *bucket, Logger: quietlog}
	case "local":
		conn = &edges.LocalConn{Logger: quietlog}
	default:
		log.Fatalln("Unknown connection type")
	}

	err := conn.MinimalInit()
	if err != nil {
		log.Fatalln("Error setting up connection:", err)
	}

	sets, err := pipeline.ListSets(conn)
	if err != nil {
		log.Fatalln(err)
	}
	if len(sets) == 0 {
		fmt.Println("No sets in storage")
		return
	}
	for _, s := range sets {
		fmt.Printf("%-30s %4d images %4d results  %s\n", s.Name, s.Images, s.Results, s.Date.Format("2006-01-02 15:04"))
	}
}
