// Package dl opens provider libraries built as Go plugins
// (go build -buildmode=plugin) and resolves their exported symbols.
package dl

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/provload/pkg/core"
)

// ErrLibraryClosed is returned by Lookup after Close.
var ErrLibraryClosed = errors.New("library is closed")

// Opener opens libraries with the platform loader.
type Opener struct{}

// New returns the platform opener.
func New() Opener { return Opener{} }

// Open implements core.Opener. Binding is immediate: the platform loader
// resolves and initializes the library before Open returns.
func (Opener) Open(path string) (core.Library, error) {
	lib, err := open(path)
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// Lib represents an open handle to a provider library.
type Lib struct {
	name   string
	lookup func(string) (any, error)

	mu     sync.Mutex
	closed bool
}

// Name returns the path the library was opened from.
func (l *Lib) Name() string { return l.name }

// Lookup resolves an exported symbol.
func (l *Lib) Lookup(symbol string) (any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, ErrLibraryClosed
	}
	sym, err := l.lookup(symbol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.name, err)
	}
	return sym, nil
}

// Close drops the reference to the library. The Go runtime never unmaps a
// plugin, so the code stays resident; the Lib itself becomes unusable.
func (l *Lib) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrLibraryClosed
	}
	l.closed = true
	l.lookup = nil
	return nil
}

// AsBootstrap converts a looked-up symbol into a core.Bootstrap. Both an
// exported function and an exported variable holding one are accepted.
func AsBootstrap(sym any) (core.Bootstrap, bool) {
	switch fn := sym.(type) {
	case func(*core.Table) error:
		return fn, fn != nil
	case core.Bootstrap:
		return fn, fn != nil
	case *func(*core.Table) error:
		if fn == nil || *fn == nil {
			return nil, false
		}
		return *fn, true
	case *core.Bootstrap:
		if fn == nil || *fn == nil {
			return nil, false
		}
		return *fn, true
	default:
		return nil, false
	}
}

var _ core.Opener = Opener{}
var _ core.Library = (*Lib)(nil)
