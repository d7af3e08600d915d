// Package dispatch is the single entry point for cached file reads.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/krisalay/mind-reader/logging"
	"github.com/krisalay/mind-reader/policy"
	"github.com/krisalay/mind-reader/registry"
	"github.com/rs/zerolog"
)

// ReadError names the path, content kind and policy of a failed read.
// Kind and Policy hold the strings as the caller declared them.
type ReadError struct {
	Path   string
	Kind   string
	Policy string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %q as %s (%s): %v", e.Path, e.Kind, e.Policy, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Dispatcher resolves declared names and forwards reads to a registry.
type Dispatcher struct {
	registry *registry.Registry
	logger   zerolog.Logger
}

func New(r *registry.Registry, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: r,
		logger:   logging.WithScope(logger, "dispatch"),
	}
}

/*
Read returns the content of path decoded as kind, cached under pol.

Unknown kind or policy values fail with an error matching
types.ErrInvalidArgument before any cache is consulted. When both are wrong
both are reported. Producer failures come back unchanged inside a ReadError.
*/
func (d *Dispatcher) Read(ctx context.Context, path, kind, pol string) (registry.Result, error) {
	ck, kindErr := registry.ParseContentKind(kind)
	pk, polErr := policy.ParseKind(pol)
	if err := errors.Join(kindErr, polErr); err != nil {
		return registry.Result{}, d.fail(path, kind, pol, err)
	}

	res, err := d.registry.Read(ctx, path, ck, pk)
	if err != nil {
		return registry.Result{}, d.fail(path, kind, pol, err)
	}

	d.logger.Trace().Str("path", path).Str("kind", kind).Str("policy", pol).Int("items", res.Len()).Msg("read")
	return res, nil
}

func (d *Dispatcher) fail(path, kind, pol string, err error) error {
	l := d.logger.With().Str("path", path).Str("kind", kind).Str("policy", pol).Logger()
	logging.WarnUnwrapped(&l, "read failed", err)
	return &ReadError{Path: path, Kind: kind, Policy: pol, Err: err}
}
