// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// edgepipeline runs edge detection on a whole directory of images,
// using local or S3 storage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"rescribe.xyz/edges"
	"rescribe.xyz/edges/edge"
	"rescribe.xyz/edges/internal/pipeline"
)

const usage = `Usage: edgepipeline [-c conn] [-v] [-ops op,...] [-pdf sheet.pdf] [-name setname] [-keep] imgdir outdir

Uploads the images in imgdir to storage, runs the operations given by
-ops on each of them, and downloads the results into outdir. If -pdf is
set a contact sheet is also made, with a page for each result.

Once the results are downloaded the set is removed from storage, unless
-keep is given. A kept set can be removed later with rmset.

If -name is omitted the last part of imgdir is used.
`

type EdgePipeliner interface {
	pipeline.Pipeliner
	DeleteObjects(bucket string, keys []string) error
}

// setOpts describes a single run of a set through the pipeline
type setOpts struct {
	imgdir  string
	outdir  string
	name    string
	ops     []string
	pdfpath string
	keep    bool
}

func main() {
	verbose := flag.Bool("v", false, "verbose")
	conntype := flag.String("c", "local", "connection type ('aws' or 'local')")
	region := flag.String("region", "", "aws region, if using aws storage")
	bucket := flag.String("bucket", "", "aws bucket, if using aws storage")
	opslist := flag.String("ops", "combined", "comma separated list of operations to run")
	pdfpath := flag.String("pdf", "", "save a contact sheet of the results to this file")
	setname := flag.String("name", "", "name to store the images under")
	keep := flag.Bool("keep", false, "keep the set in storage once finished")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	o := setOpts{
		imgdir:  flag.Arg(0),
		outdir:  flag.Arg(1),
		name:    *setname,
		pdfpath: *pdfpath,
		keep:    *keep,
	}
	if o.name == "" {
		o.name = filepath.Base(filepath.Clean(o.imgdir))
	}

	var err error
	o.ops, err = edge.ParseList(*opslist)
	if err != nil {
		log.Fatalln(err)
	}

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", log.LstdFlags)
	} else {
		var n pipeline.NullWriter
		verboselog = log.New(n, "", log.LstdFlags)
	}

	var conn EdgePipeliner
	switch *conntype {
	case "aws":
		conn = &edges.AwsConn{Region: *region, Bucket: *bucket, Logger: verboselog}
	case "local":
		conn = &edges.LocalConn{Logger: verboselog}
	default:
		log.Fatalln("Unknown connection type")
	}
	err = conn.Init()
	if err != nil {
		log.Fatalln("Failed to set up connection:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	paths, err := runSet(ctx, conn, o, verboselog)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println("Saved", len(paths), "results to", o.outdir)
	if o.pdfpath != "" {
		fmt.Println("Saved contact sheet", o.pdfpath)
	}
}

// runSet uploads, filters and downloads a set, returning the paths
// of the downloaded results
func runSet(ctx context.Context, conn EdgePipeliner, o setOpts, logger *log.Logger) ([]string, error) {
	logger.Println("Checking that all images are valid in", o.imgdir)
	err := pipeline.CheckImages(ctx, o.imgdir)
	if err != nil {
		return nil, err
	}

	logger.Println("Checking that a set hasn't already been uploaded with that name")
	list, err := conn.ListObjects(conn.WIPStorageId(), o.name+"/")
	if err != nil {
		return nil, err
	}
	if len(list) > 0 {
		return nil, fmt.Errorf("Error: There is already a set in storage named %s, remove it with rmset or use -name", o.name)
	}

	logger.Println("Uploading images in", o.imgdir)
	err = pipeline.UploadImages(ctx, o.imgdir, o.name, conn)
	if err != nil {
		return nil, err
	}

	logger.Println("Filtering", o.name)
	err = pipeline.ProcessSet(ctx, conn, o.name, pipeline.Filter(o.ops), pipeline.ImageMatch)
	if err != nil {
		return nil, fmt.Errorf("Error filtering images: %v", err)
	}

	paths, err := pipeline.DownloadResults(ctx, o.outdir, o.name, o.ops, conn)
	if err != nil {
		return nil, err
	}

	if o.pdfpath != "" {
		err = pipeline.Report(paths, o.pdfpath)
		if err != nil {
			return paths, err
		}
	}

	if !o.keep {
		err = pipeline.DeleteSet(conn, o.name)
		if err != nil {
			return paths, err
		}
	}

	return paths, nil
}
