package store

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"path"

	"fragd/archive"
	"fragd/fragment"
)

// Archive serves templates from a zip bundle with the same layout as the
// directory tree. All templates are read when bundle is opened, so later
// requests never touch the file.
type Archive struct {
	path      string
	file      string
	templates map[string][]byte
}

// OpenArchive indexes zip bundle at path.
func OpenArchive(name, index, ext string) (*Archive, error) {
	a := &Archive{
		path:      name,
		file:      index + "." + ext,
		templates: make(map[string][]byte),
	}
	err := archive.Walk(name, archive.Base(a.file), func(_ string, f *zip.File) error {
		r, err := f.Open()
		if err != nil {
			return err
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("unable to read '%s': %w", f.Name, err)
		}
		a.templates[idFromTemplate(path.Clean(f.Name))] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open template bundle '%s': %w", name, err)
	}
	return a, nil
}

// Load returns template of fragment id.
func (a *Archive) Load(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean, ok := cleanID(id)
	if !ok {
		return nil, &fragment.NotFoundError{ID: id}
	}
	data, ok := a.templates[clean]
	if !ok {
		return nil, &fragment.NotFoundError{ID: id, Path: a.path + ":" + templatePath(clean, a.file)}
	}
	return data, nil
}

// List returns identifiers of all templates in the bundle.
func (a *Archive) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(a.templates))
	for id := range a.templates {
		ids = append(ids, id)
	}
	return sortIDs(ids), nil
}
