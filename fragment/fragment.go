package fragment

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Source resolves fragment identifiers to template markup. Absent templates
// must be reported with *NotFoundError, other failures with *ReadError.
type Source interface {
	Load(ctx context.Context, id string) ([]byte, error)
}

// New parses template markup into a fragment with the given name.
func New(name string, src io.Reader, log *zap.Logger) (*Fragment, error) {
	core, err := Parse(src, log.With(zap.String("fragment", name)))
	if err != nil {
		return nil, &ParseError{Name: name, Err: err}
	}
	f := &Fragment{Name: name, Core: core}
	log.Debug("New fragment", zap.String("name", name), zap.Strings("regions", core.Regions()))
	return f, nil
}

// Load reads template for fragment id from source and parses it, fragment is
// named after its id.
func Load(ctx context.Context, source Source, id string, log *zap.Logger) (*Fragment, error) {
	data, err := source.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("unable to load fragment '%s': %w", id, err)
	}
	return New(id, bytes.NewReader(data), log)
}
