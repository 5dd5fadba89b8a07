package platform

import (
	"fmt"
	"strings"

	"github.com/aretw0/provload/pkg/adapters/dl"
	"github.com/aretw0/provload/pkg/core"
)

// IsFallback reports whether spec selects the built-in provider instead of a library.
func IsFallback(spec string) bool {
	return spec == "" || spec == core.None
}

// Load resolves spec into a verified provider handle.
//
// An empty spec or core.None selects the fallback provider; anything else is
// the path of a provider library. On failure every resource acquired during
// the call has been released and the handle is nil. Contract failures wrap
// core.ErrInvalidArgument, an exhausted handle limit is core.ErrOutOfMemory,
// and an error reported by the provider's bootstrap is returned unchanged.
func (l *Loader) Load(spec string) (*core.Handle, error) {
	if strings.ContainsRune(spec, 0) {
		return nil, fmt.Errorf("%w: spec contains a NUL byte", core.ErrInvalidArgument)
	}

	l.log(core.LevelInfo, fmt.Sprintf("load(): loading provider library '%s'", spec))

	h, err := l.load(spec)
	if err != nil {
		l.publish(core.NewRejectEvent(spec, err))
		return nil, err
	}

	l.log(core.LevelInfo, "load(): provider loaded successfully")
	l.publish(core.NewLoadEvent(h))
	return h, nil
}

func (l *Loader) load(spec string) (*core.Handle, error) {
	release, ok := l.reserve()
	if !ok {
		l.log(core.LevelFatal, "load(): out of memory")
		return nil, core.ErrOutOfMemory
	}
	table := &core.Table{}

	if IsFallback(spec) {
		if err := l.bootstrap(l.config().fallback, table); err != nil {
			release()
			return nil, err
		}
		if err := l.verify(table); err != nil {
			release()
			return nil, err
		}
		return core.NewHandle(spec, table, nil, release), nil
	}

	lib, err := l.config().opener.Open(spec)
	if err != nil {
		l.log(core.LevelError, fmt.Sprintf("load(): dlopen(): %v", err))
		release()
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidArgument, err)
	}

	fail := func(err error) (*core.Handle, error) {
		if cerr := lib.Close(); cerr != nil {
			l.log(core.LevelWarn, fmt.Sprintf("load(): dlclose(): %v", cerr))
		}
		release()
		return nil, err
	}

	boot, err := l.resolve(lib)
	if err != nil {
		return fail(err)
	}
	if err := l.bootstrap(boot, table); err != nil {
		return fail(err)
	}
	if err := l.verify(table); err != nil {
		return fail(err)
	}

	return core.NewHandle(spec, table, lib, release), nil
}

// resolve looks up the bootstrap routine exported by lib.
func (l *Loader) resolve(lib core.Library) (core.Bootstrap, error) {
	symbol := l.config().symbol
	sym, err := lib.Lookup(symbol)
	if err != nil {
		l.log(core.LevelError, fmt.Sprintf("load(): dlsym(%s): %v", symbol, err))
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidArgument, err)
	}
	boot, ok := dl.AsBootstrap(sym)
	if !ok {
		msg := fmt.Sprintf("load(): symbol %s has type %T, want %T", symbol, sym, core.Bootstrap(nil))
		l.log(core.LevelError, msg)
		return nil, fmt.Errorf("%w: %s", core.ErrInvalidArgument, msg)
	}
	return boot, nil
}

// bootstrap runs boot; its error is the provider's own and is passed through.
func (l *Loader) bootstrap(boot core.Bootstrap, t *core.Table) error {
	if err := boot(t); err != nil {
		l.log(core.LevelError, fmt.Sprintf("load(): loader failed: %v", err))
		return err
	}
	return nil
}

// verify checks t and, on failure, lets the provider release what it
// allocated while populating the table.
func (l *Loader) verify(t *core.Table) error {
	o := l.config()
	err := core.Verify(t, o.version, o.logger)
	if err == nil {
		return nil
	}
	l.log(core.LevelError, "load(): interface verification failed")
	if t.Free != nil {
		t.Free(t)
	}
	return err
}

// Unload releases a handle returned by Load: the provider's own cleanup, then
// the library, then the handle storage. A nil handle is logged and ignored.
// Unloading the same handle again does nothing.
func (l *Loader) Unload(h *core.Handle) error {
	if h == nil {
		l.log(core.LevelWarn, "unload(): null handle")
		return nil
	}
	if h.Closed() {
		return nil
	}

	err := h.Close()
	if err != nil {
		l.log(core.LevelError, fmt.Sprintf("unload(): dlclose(): %v", err))
	} else {
		l.log(core.LevelDebug, fmt.Sprintf("unload(): provider '%s' unloaded", h.Spec()))
	}
	l.publish(core.NewUnloadEvent(h))
	return err
}
