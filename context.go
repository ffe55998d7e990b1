package vault

import (
	"context"
	"time"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/open-custody/vault/errors"
)

// Context is just a renaming of the standard context, used to pass ambient
// information (trusted time, logger) into an operation.
//
// There should exist two functions for every value of type T that we want
// to support in Context:
//
//	WithXYZ(Context, T) Context
//	XYZ(Context) (val T, err error)
type Context = context.Context

// DefaultLogger is used for all contexts that have not set anything
// themselves.
var DefaultLogger = log.NewNopLogger()

type contextKey int

const (
	contextKeyBlockTime contextKey = iota
	contextKeyLogger
)

// WithBlockTime sets the trusted ambient time of the operation. The host
// environment is responsible for supplying a faithful value; the engine
// never reads the wall clock itself.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyBlockTime, t)
}

// BlockTime returns the trusted time the operation runs at. It fails if the
// context was built without one, as a deadline comparison against a missing
// clock must not silently pass.
func BlockTime(ctx Context) (time.Time, error) {
	t, ok := ctx.Value(contextKeyBlockTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in context")
	}
	return t, nil
}

// WithLogger sets a logger for this operation context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger set on the context, or DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}
