package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"fragd/fragment"
)

// Dir serves templates from a directory tree.
type Dir struct {
	base string
	file string
	fsys fs.FS
}

// NewDir returns store rooted at base, fragment templates are named
// index.ext. Nothing is checked until templates are requested.
func NewDir(base, index, ext string) *Dir {
	return &Dir{
		base: base,
		file: index + "." + ext,
		fsys: os.DirFS(base),
	}
}

// Base returns templates root directory.
func (d *Dir) Base() string {
	return d.base
}

// Load reads template of fragment id.
func (d *Dir) Load(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean, ok := cleanID(id)
	if !ok {
		return nil, &fragment.NotFoundError{ID: id}
	}
	name := templatePath(clean, d.file)
	full := filepath.Join(d.base, filepath.FromSlash(name))

	data, err := fs.ReadFile(d.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &fragment.NotFoundError{ID: id, Path: full}
		}
		return nil, &fragment.ReadError{ID: id, Path: full, Err: err}
	}
	return data, nil
}

// List walks the tree collecting identifiers of directories holding a
// template.
func (d *Dir) List(ctx context.Context) ([]string, error) {
	var ids []string
	err := fs.WalkDir(d.fsys, ".", func(name string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if de.Type().IsRegular() && de.Name() == d.file {
			ids = append(ids, idFromTemplate(name))
		}
		return nil
	})
	if err != nil {
		return nil, &fragment.ReadError{Path: d.base, Err: err}
	}
	return sortIDs(ids), nil
}
