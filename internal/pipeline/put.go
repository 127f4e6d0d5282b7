// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rescribe.xyz/edges"
)

type fileWalk chan string

// Walk sends the path of all files to the channel, with the exception of
// any file which starts with "."
func (f fileWalk) Walk(path string, info os.FileInfo, err error) error {
	if err != nil {
		return err
	}
	// skip files starting with . to prevent automatically generated
	// files like .DS_Store getting in the way
	if strings.HasPrefix(filepath.Base(path), ".") {
		return nil
	}
	if !info.IsDir() {
		f <- path
	}
	return nil
}

// CheckImages checks that all files with an image suffix in a
// directory are images that can be decoded (skipping dotfiles)
func CheckImages(ctx context.Context, dir string) error {
	checker := make(fileWalk)
	go func() {
		_ = filepath.Walk(dir, checker.Walk)
		close(checker)
	}()

	n := 0
	for path := range checker {
		select {
		case <-ctx.Done():
			for range checker {
			} // let the walk finish so it isn't blocked
			return ctx.Err()
		default:
		}
		if !edges.IsImage(path) {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			for range checker {
			}
			return fmt.Errorf("Opening image %s failed: %v", path, err)
		}
		_, err = edges.Decode(f)
		f.Close()
		if err != nil {
			for range checker {
			}
			return fmt.Errorf("Decoding image %s failed: %v", path, err)
		}
		n++
	}

	if n == 0 {
		return fmt.Errorf("No images found")
	}

	return nil
}

// UploadImages uploads all files with an image suffix (except
// those which start with a ".") from a directory into
// conn.WIPStorageId(), prefixed with the given name and a slash.
func UploadImages(ctx context.Context, dir string, name string, conn Uploader) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("Failed to read directory %s: %v", dir, err)
	}

	for _, file := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if file.IsDir() || strings.HasPrefix(file.Name(), ".") {
			continue
		}
		if !edges.IsImage(file.Name()) {
			continue
		}
		origpath := filepath.Join(dir, file.Name())
		key := name + "/" + file.Name()
		conn.Log("Uploading", key)
		err = conn.Upload(conn.WIPStorageId(), key, origpath)
		if err != nil {
			return fmt.Errorf("Failed to upload %s: %v", origpath, err)
		}
	}

	return nil
}
