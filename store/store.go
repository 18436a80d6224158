// Package store locates fragment templates. A fragment identifier is a slash
// separated path relative to the templates root, its template is the index
// file of that directory, e.g. "news/list" -> "news/list/index.html".
package store

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"fragd/archive"
	"fragd/config"
	"fragd/fragment"
)

// Store is a fragment.Source which can also enumerate its templates.
type Store interface {
	fragment.Source
	// List returns identifiers of all available fragments in natural order.
	List(ctx context.Context) ([]string, error)
}

// Open returns template store described by configuration: zip bundle when
// archive is set, directory tree otherwise.
func Open(cfg *config.FragmentsConfig, log *zap.Logger) (Store, error) {
	if len(cfg.Archive) > 0 {
		a, err := OpenArchive(cfg.Archive, cfg.IndexName, cfg.Extension)
		if err != nil {
			return nil, err
		}
		log.Debug("Using template bundle", zap.String("archive", cfg.Archive), zap.Int("templates", len(a.templates)))
		return a, nil
	}
	log.Debug("Using template directory", zap.String("dir", cfg.BaseDir), zap.String("template", cfg.TemplateName()))
	return NewDir(cfg.BaseDir, cfg.IndexName, cfg.Extension), nil
}

// cleanID normalizes fragment identifier into a slash separated relative
// path, "" being the templates root. Second value is false for identifiers
// which would escape the root.
func cleanID(id string) (string, bool) {
	id = strings.ReplaceAll(id, `\`, "/")
	if !archive.IsSafePath(strings.TrimLeft(id, "/")) {
		return "", false
	}
	id = path.Clean("/" + id)
	return strings.TrimPrefix(id, "/"), true
}

// templatePath returns slash separated template location for clean id.
func templatePath(id, file string) string {
	if len(id) == 0 {
		return file
	}
	return id + "/" + file
}

// idFromTemplate is the inverse of templatePath.
func idFromTemplate(name string) string {
	dir := path.Dir(name)
	if dir == "." {
		return ""
	}
	return dir
}

func sortIDs(ids []string) []string {
	sort.Sort(natural.StringSlice(ids))
	return ids
}
