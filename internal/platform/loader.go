package platform

import (
	"sync/atomic"

	"github.com/aretw0/introspection"

	"github.com/aretw0/provload/pkg/core"
)

// Loader loads and unloads providers. Its log sink is set before the first
// line of every call and stays in effect for later calls, Unload included,
// until Configure replaces it.
//
// Load and Unload are meant to run during process start-up and shutdown; the
// loader keeps no per-provider state besides the live handle count.
type Loader struct {
	opts atomic.Pointer[options]
	live atomic.Int64
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	l := &Loader{}
	l.opts.Store(o)
	return l
}

// Configure applies opts on top of the current configuration. Handles already
// loaded stay valid and count against a new handle limit.
func (l *Loader) Configure(opts ...Option) {
	if len(opts) == 0 {
		return
	}
	o := *l.config()
	for _, opt := range opts {
		opt(&o)
	}
	l.opts.Store(&o)
}

func (l *Loader) config() *options {
	return l.opts.Load()
}

// Live returns the number of handles loaded and not yet unloaded.
func (l *Loader) Live() int {
	return int(l.live.Load())
}

func (l *Loader) log(level core.Level, msg string) {
	l.config().logger(level, msg)
}

func (l *Loader) publish(e core.Event) {
	events := l.config().events
	if events == nil {
		return
	}
	select {
	case events <- e:
	default:
	}
}

// reserve claims storage for one handle. The returned release is idempotent.
func (l *Loader) reserve() (release func(), ok bool) {
	limit := int64(l.config().maxHandles)
	for {
		n := l.live.Load()
		if limit > 0 && n >= limit {
			return nil, false
		}
		if l.live.CompareAndSwap(n, n+1) {
			break
		}
	}
	var done atomic.Bool
	return func() {
		if done.CompareAndSwap(false, true) {
			l.live.Add(-1)
		}
	}, true
}

// LoaderState exposes the loader's state for observability.
type LoaderState struct {
	LiveHandles      int    `json:"live_handles"`
	MaxHandles       int    `json:"max_handles"`
	InterfaceVersion string `json:"interface_version"`
	BootstrapSymbol  string `json:"bootstrap_symbol"`
}

// State implements introspection.Introspectable.
func (l *Loader) State() any {
	o := l.config()
	return LoaderState{
		LiveHandles:      l.Live(),
		MaxHandles:       o.maxHandles,
		InterfaceVersion: o.version,
		BootstrapSymbol:  o.symbol,
	}
}

// ComponentType implements introspection.Component.
func (l *Loader) ComponentType() string {
	return "loader"
}

var _ introspection.Introspectable = (*Loader)(nil)
var _ introspection.Component = (*Loader)(nil)
