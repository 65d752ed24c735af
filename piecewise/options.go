package piecewise

import (
	"github.com/katalvlaran/pwline/store"
	"github.com/sgostarter/i/l"
)

// Option configures a Function at construction time.
type Option func(*options)

type options struct {
	storeOpts []store.Option
	logger    l.Wrapper
}

// WithDegree sets the degree of the underlying B-tree.
// Panics if degree < 2.
func WithDegree(degree int) Option {
	so := store.WithDegree(degree)

	return func(o *options) { o.storeOpts = append(o.storeOpts, so) }
}

// WithLogger attaches a structured logger. A nil logger keeps the default
// no-op logger.
func WithLogger(logger l.Wrapper) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func gatherOptions(opts ...Option) options {
	o := options{logger: l.NewNopLoggerWrapper()}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.WithFields(l.StringField(l.ClsKey, "piecewise"))

	return o
}
