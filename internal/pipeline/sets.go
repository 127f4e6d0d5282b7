// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"rescribe.xyz/edges"
)

type Deleter interface {
	DeleteObjects(bucket string, keys []string) error
	ListObjects(bucket string, prefix string) ([]string, error)
	Log(v ...interface{})
	WIPStorageId() string
}

type MetaLister interface {
	ListObjectsWithMeta(bucket string, prefix string) ([]edges.ObjMeta, error)
	WIPStorageId() string
}

// SetInfo summarises a set of images in storage
type SetInfo struct {
	Name    string
	Images  int       // original images
	Results int       // filtered results
	Date    time.Time // most recent change to anything in the set
}

// DeleteSet removes everything stored for the set called name,
// including its results
func DeleteSet(conn Deleter, name string) error {
	objs, err := conn.ListObjects(conn.WIPStorageId(), name+"/")
	if err != nil {
		return fmt.Errorf("Error listing files for %s: %v", name, err)
	}
	if len(objs) == 0 {
		return fmt.Errorf("No files found for %s", name)
	}

	conn.Log("Deleting", len(objs), "files for", name)
	err = conn.DeleteObjects(conn.WIPStorageId(), objs)
	if err != nil {
		return fmt.Errorf("Error deleting files for %s: %v", name, err)
	}
	return nil
}

// ListSets lists every set in storage, oldest first
func ListSets(conn MetaLister) ([]SetInfo, error) {
	objs, err := conn.ListObjectsWithMeta(conn.WIPStorageId(), "")
	if err != nil {
		return nil, fmt.Errorf("Error listing storage: %v", err)
	}

	sets := make(map[string]*SetInfo)
	for _, o := range objs {
		name, _, found := strings.Cut(o.Name, "/")
		if !found {
			continue
		}
		s, ok := sets[name]
		if !ok {
			s = &SetInfo{Name: name}
			sets[name] = s
		}
		switch {
		case ImageMatch.MatchString(o.Name):
			s.Images++
		case strings.HasPrefix(o.Name, ResultsPrefix(name)+"/"):
			s.Results++
		}
		if o.Date.After(s.Date) {
			s.Date = o.Date
		}
	}

	var list []SetInfo
	for _, s := range sets {
		list = append(list, *s)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date.Equal(list[j].Date) {
			return list[i].Name < list[j].Name
		}
		return list[i].Date.Before(list[j].Date)
	})
	return list, nil
}
