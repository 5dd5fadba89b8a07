package platform

import (
	"log/slog"

	"github.com/aretw0/provload/pkg/adapters/dl"
	"github.com/aretw0/provload/pkg/adapters/dummy"
	"github.com/aretw0/provload/pkg/core"
	"github.com/aretw0/provload/pkg/logging"
)

// options holds the internal configuration for a Loader.
type options struct {
	logger     core.LogFunc
	opener     core.Opener
	fallback   core.Bootstrap
	version    string
	symbol     string
	maxHandles int
	events     chan<- core.Event
}

// Option defines a functional option for configuring a Loader.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:   logging.Default(),
		opener:   dl.New(),
		fallback: dummy.Bootstrap,
		version:  core.InterfaceVersion,
		symbol:   core.BootstrapSymbol,
	}
}

// WithLogger replaces the log sink. A nil sink keeps the current one.
func WithLogger(log core.LogFunc) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithSlog routes loader lines to a slog.Logger.
func WithSlog(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logging.FromSlog(logger)
	}
}

// WithOpener replaces the platform library opener (e.g. with a test double).
func WithOpener(op core.Opener) Option {
	return func(o *options) {
		if op != nil {
			o.opener = op
		}
	}
}

// WithFallback replaces the bootstrap used for the sentinel spec.
// Defaults to the built-in dummy provider.
func WithFallback(b core.Bootstrap) Option {
	return func(o *options) {
		if b != nil {
			o.fallback = b
		}
	}
}

// WithInterfaceVersion overrides the version token providers must report.
// Defaults to core.InterfaceVersion.
func WithInterfaceVersion(v string) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithBootstrapSymbol overrides the symbol resolved from a library.
// Defaults to core.BootstrapSymbol.
func WithBootstrapSymbol(name string) Option {
	return func(o *options) {
		o.symbol = name
	}
}

// WithMaxHandles caps the number of handles alive at once. Zero means no limit.
func WithMaxHandles(n int) Option {
	return func(o *options) {
		o.maxHandles = n
	}
}

// WithEvents publishes load, unload and reject events to ch. Sends never
// block: an event is dropped when ch is full.
func WithEvents(ch chan<- core.Event) Option {
	return func(o *options) {
		o.events = ch
	}
}
