package compose

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fragd/config"
	"fragd/fragment"
)

// Composer assembles fragments from templates provided by source.
type Composer struct {
	src     fragment.Source
	missing config.MissingFragmentBehavior
	log     *zap.Logger
}

// New returns composer. Missing decides what happens when a secondary
// fragment does not exist: stop fails the request, continue skips the
// fragment.
func New(src fragment.Source, missing config.MissingFragmentBehavior, log *zap.Logger) *Composer {
	return &Composer{src: src, missing: missing, log: log}
}

func requestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Compose builds the fragment for request. A missing primary fragment always
// fails the request, other failures loading templates always do as well.
func (c *Composer) Compose(ctx context.Context, req Request) (*fragment.Fragment, error) {
	log := c.log.With(zap.String("request", requestID()), zap.Stringer("fragments", req))

	f, err := fragment.Load(ctx, c.src, req.Primary, log)
	if err != nil {
		return nil, fmt.Errorf("unable to build primary fragment: %w", err)
	}

	for _, id := range req.Secondaries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		other, err := fragment.Load(ctx, c.src, id, log)
		if err != nil {
			if errors.Is(err, fragment.ErrNotFound) && c.missing == config.MissingFragmentBehaviorContinue {
				log.Warn("Secondary fragment is missing, skipping", zap.String("fragment", id), zap.Error(err))
				continue
			}
			return nil, fmt.Errorf("unable to build secondary fragment: %w", err)
		}
		f.Merge(other)
	}

	if err := f.Curry(req.Params); err != nil {
		return nil, fmt.Errorf("unable to apply request parameters: %w", err)
	}
	log.Debug("Fragment composed", zap.String("name", f.Name), zap.Strings("regions", f.Core.Regions()))
	return f, nil
}

// Render composes fragment for request and returns its JSON response body.
func (c *Composer) Render(ctx context.Context, req Request) ([]byte, error) {
	f, err := c.Compose(ctx, req)
	if err != nil {
		return nil, err
	}
	return f.JSON()
}
