package core

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes the two provider variants a Handle can wrap.
type Kind string

const (
	KindDynamic Kind = "dynamic"
	KindDummy   Kind = "dummy"
)

// Handle owns a verified operation table and, for dynamic providers, the
// library it came from. It implements Provider by delegating to the table.
//
// Close releases the table's own resources, then the library, then the
// storage reservation, each exactly once.
type Handle struct {
	id       uuid.UUID
	spec     string
	version  string
	lib      Library
	release  func()
	loadedAt time.Time

	mu       sync.RWMutex
	table    *Table
	once     sync.Once
	closeErr error
}

// NewHandle wraps a table that already passed Verify. lib may be nil (dummy
// provider); release, if set, runs last during Close.
func NewHandle(spec string, t *Table, lib Library, release func()) *Handle {
	return &Handle{
		id:       uuid.New(),
		spec:     spec,
		version:  t.Version,
		table:    t,
		lib:      lib,
		release:  release,
		loadedAt: time.Now(),
	}
}

// ID is unique per load.
func (h *Handle) ID() string { return h.id.String() }

// Spec is the library path (or sentinel) the handle was loaded from.
func (h *Handle) Spec() string { return h.spec }

// Version is the interface version the provider reported.
func (h *Handle) Version() string { return h.version }

// Kind reports whether the provider came from a library or the built-in dummy.
func (h *Handle) Kind() Kind {
	if h.lib == nil {
		return KindDummy
	}
	return KindDynamic
}

// Closed reports whether Close has run.
func (h *Handle) Closed() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.table == nil
}

// Close tears the handle down. Calling it more than once is a no-op that
// returns the first result.
func (h *Handle) Close() error {
	h.once.Do(func() {
		h.mu.Lock()
		t := h.table
		h.table = nil
		h.mu.Unlock()

		if t != nil && t.Free != nil {
			t.Free(t)
		}
		if h.lib != nil {
			h.closeErr = h.lib.Close()
		}
		if h.release != nil {
			h.release()
		}
	})
	return h.closeErr
}

func (h *Handle) ops() (*Table, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.table == nil {
		return nil, ErrClosed
	}
	return h.table, nil
}

func (h *Handle) Init(args InitArgs) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.Init(args)
}

func (h *Handle) Connect(ctx context.Context, cluster, url, donor string) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.Connect(ctx, cluster, url, donor)
}

func (h *Handle) Disconnect() error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.Disconnect()
}

func (h *Handle) DebugPush(ctrl string) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.DebugPush(ctrl)
}

func (h *Handle) DebugPop() error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.DebugPop()
}

func (h *Handle) Recv(ctx context.Context) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.Recv(ctx)
}

func (h *Handle) Commit(conn ConnID, trx TrxID, payload []byte) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.Commit(conn, trx, payload)
}

func (h *Handle) ReplayTrx(trx TrxID) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.ReplayTrx(trx)
}

func (h *Handle) CancelCommit(bf Seqno, victim TrxID) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.CancelCommit(bf, victim)
}

func (h *Handle) CancelSlave(bf Seqno, victim Seqno) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.CancelSlave(bf, victim)
}

func (h *Handle) Committed(trx TrxID) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.Committed(trx)
}

func (h *Handle) RolledBack(trx TrxID) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.RolledBack(trx)
}

func (h *Handle) AppendQuery(trx TrxID, query string, ts time.Time, seed uint32) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.AppendQuery(trx, query, ts, seed)
}

func (h *Handle) AppendRowKey(trx TrxID, key Key) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.AppendRowKey(trx, key)
}

func (h *Handle) SetVariable(name, value string) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.SetVariable(name, value)
}

func (h *Handle) SetDatabase(conn ConnID, query string) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.SetDatabase(conn, query)
}

func (h *Handle) ToExecuteStart(conn ConnID, keys []Key, query string) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.ToExecuteStart(conn, keys, query)
}

func (h *Handle) ToExecuteEnd(conn ConnID) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.ToExecuteEnd(conn)
}

func (h *Handle) SSTSent(state GTID, rcode int) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.SSTSent(state, rcode)
}

func (h *Handle) SSTReceived(state GTID) error {
	t, err := h.ops()
	if err != nil {
		return err
	}
	return t.SSTReceived(state)
}

var _ Provider = (*Handle)(nil)
