// Package archive builds Walk abstraction on top of "archive/zip" for
// fragment template bundles.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. The file argument is the zip.File structure for file in archive which
// satisfies match condition. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// MatchFunc selects archive entries by their slash separated name.
type MatchFunc func(name string) bool

// Prefix matches entries with names starting with p. Empty p matches
// everything.
func Prefix(p string) MatchFunc {
	return func(name string) bool {
		return strings.HasPrefix(name, p)
	}
}

// Base matches entries whose last path element is exactly base, that is
// "<dir>/<base>" at any depth as well as "<base>" in archive root.
func Base(base string) MatchFunc {
	return func(name string) bool {
		return path.Base(name) == base
	}
}

// Walk walks the all files in the archive which satisfy match condition,
// calling walkFn for each item. Archives with entries having path traversal
// components ("..") or absolute paths are rejected as a whole.
func Walk(archive string, match MatchFunc, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if r != nil {
		defer r.Close()
	}
	if err != nil {
		return err
	}

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !IsSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		if match == nil || match(name) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsSafePath returns false for paths that could escape their root: absolute
// paths and those containing ".." components. Both zip entries and fragment
// identifiers are checked with it.
func IsSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
