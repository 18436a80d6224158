package compose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"fragd/state"
	"fragd/store"
)

// output returns destination writer for command results: named file or
// command's writer (STDOUT unless redirected).
func output(cmd *cli.Command, fname string) (io.Writer, func() error, error) {
	if len(fname) == 0 {
		if w := cmd.Root().Writer; w != nil {
			return w, func() error { return nil }, nil
		}
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(fname)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create destination file '%s': %w", fname, err)
	}
	return f, f.Close, nil
}

func openStore(env *state.LocalEnv, log *zap.Logger) (store.Store, error) {
	s, err := store.Open(&env.Cfg.Fragments, log)
	if err != nil {
		return nil, err
	}
	if d, ok := s.(*store.Dir); ok {
		// templates are small, having them in the report saves a lot of guessing
		env.Rpt.Store("templates", d.Base())
	} else {
		env.Rpt.Store("templates.zip", env.Cfg.Fragments.Archive)
	}
	return s, nil
}

// requestFromArgs parses REQUEST argument. Unless "any" flag is set request
// must be a fragment request, just like a server would demand.
func requestFromArgs(cmd *cli.Command, log *zap.Logger) (Request, error) {
	raw := cmd.Args().Get(0)
	if len(raw) == 0 {
		return Request{}, errors.New("no request has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many requests", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	req, err := ParseRequest(raw)
	if err != nil {
		return Request{}, err
	}
	if !cmd.Bool("any") {
		switch req.Navigation {
		case NavigateRequest, LoadRequest:
		default:
			return Request{}, fmt.Errorf("request '%s': %w (use spf=navigate or spf=load)", raw, ErrNotFragmentRequest)
		}
	}
	return req, nil
}

// Run renders fragment response for request given on command line.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	req, err := requestFromArgs(cmd, log)
	if err != nil {
		return err
	}
	src, err := openStore(env, log)
	if err != nil {
		return err
	}

	log.Info("Rendering starting", zap.Stringer("request", req), zap.Stringer("missing", env.Cfg.Fragments.Missing))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)), zap.Int("status", StatusCode(err)))
	}(time.Now())

	f, err := New(src, env.Cfg.Fragments.Missing, log).Compose(ctx, req)
	if err != nil {
		return err
	}
	data, err := f.JSON()
	if err != nil {
		return fmt.Errorf("unable to serialize fragment '%s': %w", f.Name, err)
	}

	name := slug.Make(req.String())
	env.Rpt.StoreData("responses/"+name+".json", data)
	env.Rpt.StoreData("fragments/"+name+".txt", []byte(f.String()))

	out, closer, err := output(cmd, cmd.String("output"))
	if err != nil {
		return err
	}
	defer func() {
		if er := closer(); er != nil && err == nil {
			err = er
		}
	}()
	if _, err = out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("unable to write response: %w", err)
	}
	return nil
}

// Inspect composes fragment for request and outputs readable dump of it
// instead of the response.
func Inspect(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	req, err := requestFromArgs(cmd, log)
	if err != nil {
		return err
	}
	src, err := openStore(env, log)
	if err != nil {
		return err
	}
	f, err := New(src, env.Cfg.Fragments.Missing, log).Compose(ctx, req)
	if err != nil {
		return err
	}

	out, closer, err := output(cmd, "")
	if err != nil {
		return err
	}
	defer closer()
	_, err = io.WriteString(out, f.String())
	return err
}

// List outputs identifiers of all available fragments, one per line.
func List(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("list")

	src, err := openStore(env, log)
	if err != nil {
		return err
	}
	ids, err := src.List(ctx)
	if err != nil {
		return fmt.Errorf("unable to list fragments: %w", err)
	}
	log.Debug("Fragments found", zap.Int("count", len(ids)))

	out, closer, err := output(cmd, "")
	if err != nil {
		return err
	}
	defer closer()
	for _, id := range ids {
		if len(id) == 0 {
			id = "/"
		}
		if _, err := fmt.Fprintln(out, id); err != nil {
			return err
		}
	}
	return nil
}
