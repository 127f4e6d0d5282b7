// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"rescribe.xyz/edges"
)

// DownloadResults downloads all results of filtering the set called
// name with ops into dir, returning the local paths
func DownloadResults(ctx context.Context, dir string, name string, ops []string, conn DownloadLister) ([]string, error) {
	var paths []string

	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return paths, fmt.Errorf("Failed to create directory %s: %v", dir, err)
	}

	objs, err := conn.ListObjects(conn.WIPStorageId(), ResultsPrefix(name)+"/")
	if err != nil {
		return paths, fmt.Errorf("Failed to list results for %s: %v", name, err)
	}

	suffix := ResultSuffix(ops)
	for _, key := range objs {
		select {
		case <-ctx.Done():
			return paths, ctx.Err()
		default:
		}
		if !strings.HasSuffix(key, suffix) {
			continue
		}
		fn := filepath.Join(dir, path.Base(key))
		conn.Log("Downloading file", key)
		err = conn.Download(conn.WIPStorageId(), key, fn)
		if err != nil {
			return paths, fmt.Errorf("Failed to download file %s: %v", key, err)
		}
		paths = append(paths, fn)
	}

	if len(paths) == 0 {
		return paths, fmt.Errorf("No results found for %s", name)
	}

	return paths, nil
}

// Report creates a pdf at pdfpath with a page for each image in
// paths, captioned with its file name
func Report(paths []string, pdfpath string) error {
	if len(paths) == 0 {
		return fmt.Errorf("No images to add to PDF")
	}
	var pdf edges.Fpdf
	err := pdf.Setup()
	if err != nil {
		return fmt.Errorf("Error setting up PDF: %v", err)
	}
	for _, p := range paths {
		err = pdf.AddPage(p, filepath.Base(p))
		if err != nil {
			return fmt.Errorf("Error adding page %s to PDF: %v", p, err)
		}
	}
	err = pdf.Save(pdfpath)
	if err != nil {
		return fmt.Errorf("Error saving PDF %s: %v", pdfpath, err)
	}
	return nil
}
