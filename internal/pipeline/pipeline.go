// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// pipeline is a package used by the edgepipeline command, which
// handles filtering a set of stored images, using channels to
// coordinate downloading, filtering and uploading. Note that it is
// considered an "internal" package, not intended for external use,
// and no guarantee is made of the stability of any interfaces
// provided.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"rescribe.xyz/edges"
	"rescribe.xyz/edges/edge"
)

type Lister interface {
	ListObjects(bucket string, prefix string) ([]string, error)
	Log(v ...interface{})
	WIPStorageId() string
}

type Downloader interface {
	Download(bucket string, key string, fn string) error
	Log(v ...interface{})
	WIPStorageId() string
}

type DownloadLister interface {
	Download(bucket string, key string, fn string) error
	ListObjects(bucket string, prefix string) ([]string, error)
	Log(v ...interface{})
	WIPStorageId() string
}

type Uploader interface {
	Log(v ...interface{})
	Upload(bucket string, key string, path string) error
	WIPStorageId() string
}

type Pipeliner interface {
	Download(bucket string, key string, fn string) error
	GetLogger() *log.Logger
	Init() error
	ListObjects(bucket string, prefix string) ([]string, error)
	Log(v ...interface{})
	Upload(bucket string, key string, path string) error
	WIPStorageId() string
}

// ImageMatch matches the keys of images stored directly under a set
// name, but not the results stored under ResultsPrefix
var ImageMatch = regexp.MustCompile(`^[^/]+/[^/]+\.(?i:bmp|gif|jpe?g|png|tiff?|webp)$`)

// ResultsPrefix is where the results of filtering the set called
// name are stored
func ResultsPrefix(name string) string {
	return name + "/results"
}

// Process is a stage of the pipeline, which reads file names from
// one channel and sends the names of files it creates to another
type Process func(context.Context, chan string, chan string, chan error, *log.Logger)

// download reads keys from a channel, downloads each to dir, and
// sends the local path on to the process channel. If an error occurs
// it is sent to the errc channel, and the process channel is closed
// so later stages can finish.
func download(ctx context.Context, dl chan string, process chan string, conn Downloader, dir string, errc chan error, logger *log.Logger) {
	for key := range dl {
		select {
		case <-ctx.Done():
			for range dl {
			} // consume the rest of the receiving channel so it isn't blocked
			errc <- ctx.Err()
			close(process)
			return
		default:
		}
		fn := filepath.Join(dir, filepath.Base(key))
		logger.Println("Downloading", key)
		err := conn.Download(conn.WIPStorageId(), key, fn)
		if err != nil {
			for range dl {
			} // consume the rest of the receiving channel so it isn't blocked
			errc <- err
			close(process)
			return
		}
		process <- fn
	}
	close(process)
}

// up reads file names from a channel and uploads them with
// the prefix/ prefix, removing the local copy of each file
// once it has been successfully uploaded. The done channel is
// then written to to signal completion. If an error occurs it
// is sent to the errc channel and the function returns early.
func up(ctx context.Context, c chan string, done chan bool, conn Uploader, prefix string, errc chan error, logger *log.Logger) {
	for path := range c {
		select {
		case <-ctx.Done():
			for range c {
			} // consume the rest of the receiving channel so it isn't blocked
			errc <- ctx.Err()
			return
		default:
		}
		key := prefix + "/" + filepath.Base(path)
		logger.Println("Uploading", key)
		err := conn.Upload(conn.WIPStorageId(), key, path)
		if err != nil {
			for range c {
			} // consume the rest of the receiving channel so it isn't blocked
			errc <- err
			return
		}
		err = os.Remove(path)
		if err != nil {
			for range c {
			} // consume the rest of the receiving channel so it isn't blocked
			errc <- err
			return
		}
	}

	done <- true
}

// ResultSuffix is the suffix added to the base name of an image
// filtered with ops
func ResultSuffix(ops []string) string {
	return "_" + strings.Join(ops, "-") + ".png"
}

// ResultName is the name given to the result of filtering the image
// at path with ops
func ResultName(path string, ops []string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ResultSuffix(ops)
}

// FilterFile runs each of ops in turn on the image at path, saving
// the result as a png named by ResultName
func FilterFile(path string, ops []string) (string, error) {
	img, err := edges.DecodeFile(path)
	if err != nil {
		return "", err
	}
	res, err := edge.Chain(img, ops...)
	if err != nil {
		return "", err
	}
	out := ResultName(path, ops)
	err = edges.EncodeFile(out, res)
	if err != nil {
		return "", err
	}
	return out, nil
}

// Filter returns a Process which runs ops on each image it receives
func Filter(ops []string) Process {
	return func(ctx context.Context, pre chan string, up chan string, errc chan error, logger *log.Logger) {
		for path := range pre {
			select {
			case <-ctx.Done():
				for range pre {
				} // consume the rest of the receiving channel so it isn't blocked
				errc <- ctx.Err()
				close(up)
				return
			default:
			}
			logger.Println("Filtering", path, "with", strings.Join(ops, ", "))
			done, err := FilterFile(path, ops)
			if err != nil {
				for range pre {
				} // consume the rest of the receiving channel so it isn't blocked
				errc <- fmt.Errorf("Error filtering %s: %w", path, err)
				close(up)
				return
			}
			_ = os.Remove(path)
			up <- done
		}
		close(up)
	}
}

// ProcessSet downloads each stored image under name/ which matches
// match, runs process on it, and uploads the results under
// ResultsPrefix(name). The first error stops the whole set.
func ProcessSet(ctx context.Context, conn Pipeliner, name string, process Process, match *regexp.Regexp) error {
	dl := make(chan string)
	processc := make(chan string)
	upc := make(chan string)
	// each stage sends at most one error, and these are buffered so
	// that no stage is left blocked once we have returned
	done := make(chan bool, 1)
	errc := make(chan error, 3)

	d, err := os.MkdirTemp("", "edges")
	if err != nil {
		return fmt.Errorf("Failed to create temporary directory: %s", err)
	}
	defer os.RemoveAll(d)

	conn.Log("Getting list of objects to download")
	objs, err := conn.ListObjects(conn.WIPStorageId(), name+"/")
	if err != nil {
		return fmt.Errorf("Failed to get list of files for %s: %s", name, err)
	}
	var todl []string
	for _, n := range objs {
		if !match.MatchString(n) {
			conn.Log("Skipping item that doesn't match target", n)
			continue
		}
		todl = append(todl, n)
	}
	if len(todl) == 0 {
		return fmt.Errorf("No images found for %s", name)
	}

	// these functions will do their jobs when their channels have data
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		download(ctx, dl, processc, conn, d, errc, conn.GetLogger())
	}()
	go func() {
		defer wg.Done()
		process(ctx, processc, upc, errc, conn.GetLogger())
	}()
	go func() {
		defer wg.Done()
		up(ctx, upc, done, conn, ResultsPrefix(name), errc, conn.GetLogger())
	}()
	// the stages must finish with the temporary directory before it
	// is removed
	defer wg.Wait()

	for _, a := range todl {
		dl <- a
	}
	close(dl)

	// wait for either the done or errc channel to be sent to
	select {
	case err = <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
	}

	// an earlier stage may have failed and closed its output early
	select {
	case err = <-errc:
		return err
	default:
	}

	conn.Log("Finished processing", len(todl), "images for", name)
	return nil
}
