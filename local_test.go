// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edges

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalConn(t *testing.T) {
	conn := LocalConn{TempDir: filepath.Join(t.TempDir(), "store"), Logger: quiet}
	err := conn.Init()
	if err != nil {
		t.Fatalf("Error initialising: %v", err)
	}

	src := filepath.Join(t.TempDir(), "src.txt")
	err = os.WriteFile(src, []byte("hello"), 0644)
	if err != nil {
		t.Fatalf("Error preparing test file: %v", err)
	}

	keys := []string{"book/b.png", "book/a.png", "other/c.png"}
	for _, k := range keys {
		err = conn.Upload(conn.WIPStorageId(), k, src)
		if err != nil {
			t.Fatalf("Error uploading %s: %v", k, err)
		}
	}

	cases := []struct {
		prefix string
		want   string
	}{
		{"book/", "book/a.png,book/b.png"},
		{"other", "other/c.png"},
		{"", "book/a.png,book/b.png,other/c.png"},
		{"none", ""},
	}
	for _, c := range cases {
		t.Run(c.prefix, func(t *testing.T) {
			got, err := conn.ListObjects(conn.WIPStorageId(), c.prefix)
			if err != nil {
				t.Fatalf("Error listing: %v", err)
			}
			if strings.Join(got, ",") != c.want {
				t.Errorf("Expected %s, got %v", c.want, got)
			}
		})
	}

	dl := filepath.Join(t.TempDir(), "dl.txt")
	err = conn.Download(conn.WIPStorageId(), "book/a.png", dl)
	if err != nil {
		t.Fatalf("Error downloading: %v", err)
	}
	b, err := os.ReadFile(dl)
	if err != nil || string(b) != "hello" {
		t.Errorf("Downloaded file has wrong contents %q (%v)", b, err)
	}

	err = conn.Download(conn.WIPStorageId(), "book/missing.png", dl)
	if err == nil {
		t.Errorf("Expected an error downloading a missing object")
	}

	err = conn.DeleteObjects(conn.WIPStorageId(), []string{"book/a.png", "book/b.png"})
	if err != nil {
		t.Fatalf("Error deleting: %v", err)
	}
	got, _ := conn.ListObjects(conn.WIPStorageId(), "book")
	if len(got) != 0 {
		t.Errorf("Expected no objects after deleting, got %v", got)
	}
}
