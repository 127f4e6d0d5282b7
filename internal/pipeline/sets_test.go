// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rescribe.xyz/edges"
)

func TestDeleteSet(t *testing.T) {
	for _, conn := range conns(t) {
		t.Run(conn.name, func(t *testing.T) {
			err := conn.c.Init()
			if err != nil {
				t.Fatalf("Could not initialise %s connection: %v", conn.name, err)
			}
			c, ok := conn.c.(Deleter)
			if !ok {
				t.Fatalf("%s connection can't delete", conn.name)
			}

			src := t.TempDir()
			mkimages(t, src, "p1.png", "p2.png")
			name := "edgesdeltest"

			// a set can be run, removed, and then run again under
			// the same name
			for _, ops := range [][]string{{"sobel"}, {"prewitt"}} {
				err = UploadImages(context.Background(), src, name, conn.c)
				if err != nil {
					t.Fatalf("Error uploading: %v", err)
				}
				err = ProcessSet(context.Background(), conn.c, name, Filter(ops), ImageMatch)
				if err != nil {
					t.Fatalf("Error processing %v: %v", ops, err)
				}
				paths, err := DownloadResults(context.Background(), t.TempDir(), name, ops, conn.c)
				if err != nil {
					t.Fatalf("Error downloading results: %v", err)
				}
				if len(paths) != 2 {
					t.Errorf("Expected 2 results for %v, got %v", ops, paths)
				}

				err = DeleteSet(c, name)
				if err != nil {
					t.Fatalf("Error deleting set: %v", err)
				}
				left, err := conn.c.ListObjects(conn.c.WIPStorageId(), name+"/")
				if err != nil {
					t.Fatalf("Error listing: %v", err)
				}
				if len(left) != 0 {
					t.Fatalf("Expected nothing left after deleting, got %v", left)
				}
			}

			err = DeleteSet(c, name)
			if err == nil {
				t.Errorf("Expected an error deleting a set which doesn't exist")
			}
		})
	}
}

func TestListSets(t *testing.T) {
	conn := &edges.LocalConn{TempDir: t.TempDir(), Logger: quiet}
	err := conn.Init()
	if err != nil {
		t.Fatalf("Error initialising: %v", err)
	}

	src := t.TempDir()
	mkimages(t, src, "a.png", "b.png")
	for _, name := range []string{"newer", "older"} {
		err = UploadImages(context.Background(), src, name, conn)
		if err != nil {
			t.Fatalf("Error uploading: %v", err)
		}
	}
	err = ProcessSet(context.Background(), conn, "older", Filter([]string{"sobel"}), ImageMatch)
	if err != nil {
		t.Fatalf("Error processing: %v", err)
	}

	old := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	keys, err := conn.ListObjects(conn.WIPStorageId(), "older/")
	if err != nil {
		t.Fatalf("Error listing: %v", err)
	}
	for _, k := range keys {
		err = os.Chtimes(filepath.Join(conn.TempDir, conn.WIPStorageId(), filepath.FromSlash(k)), old, old)
		if err != nil {
			t.Fatalf("Error setting time of %s: %v", k, err)
		}
	}

	sets, err := ListSets(conn)
	if err != nil {
		t.Fatalf("Error listing sets: %v", err)
	}

	want := []SetInfo{
		{Name: "older", Images: 2, Results: 2, Date: old},
		{Name: "newer", Images: 2, Results: 0},
	}
	if len(sets) != len(want) {
		t.Fatalf("Expected %d sets, got %v", len(want), sets)
	}
	for i, w := range want {
		got := sets[i]
		if got.Name != w.Name || got.Images != w.Images || got.Results != w.Results {
			t.Errorf("Set %d: expected %+v, got %+v", i, w, got)
		}
	}
	if !sets[0].Date.Equal(old) {
		t.Errorf("Expected older to be dated %v, got %v", old, sets[0].Date)
	}
	if !sets[1].Date.After(old) {
		t.Errorf("Expected newer to be dated after %v, got %v", old, sets[1].Date)
	}
}
