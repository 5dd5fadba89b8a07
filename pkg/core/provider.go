package core

import (
	"context"
	"time"
)

const (
	// InterfaceVersion is the ABI token a provider must report, compared
	// byte-for-byte.
	InterfaceVersion = "21"

	// BootstrapSymbol is the name a provider library exports its Bootstrap under.
	BootstrapSymbol = "ProviderLoader"

	// None selects the built-in dummy provider instead of a library.
	None = "none"
)

// Provider defines the contract a replication provider fulfils.
// Adhering to this interface lets the host stay independent of the
// implementation it loaded (a shared library or the built-in dummy).
type Provider interface {
	// Init hands the node identity and initial state to the provider.
	Init(args InitArgs) error

	// Connect joins the named cluster, optionally requesting state from donor.
	Connect(ctx context.Context, cluster, url, donor string) error
	Disconnect() error

	DebugPush(ctrl string) error
	DebugPop() error

	// Recv runs the receive loop until the context ends or the provider stops.
	Recv(ctx context.Context) error

	Commit(conn ConnID, trx TrxID, payload []byte) error
	ReplayTrx(trx TrxID) error
	CancelCommit(bf Seqno, victim TrxID) error
	CancelSlave(bf Seqno, victim Seqno) error
	Committed(trx TrxID) error
	RolledBack(trx TrxID) error

	AppendQuery(trx TrxID, query string, ts time.Time, seed uint32) error
	AppendRowKey(trx TrxID, key Key) error

	SetVariable(name, value string) error
	SetDatabase(conn ConnID, query string) error

	// ToExecuteStart and ToExecuteEnd bracket a total-order isolated statement.
	ToExecuteStart(conn ConnID, keys []Key, query string) error
	ToExecuteEnd(conn ConnID) error

	// SSTSent reports the outcome of a state snapshot this node donated.
	SSTSent(state GTID, rcode int) error
	// SSTReceived reports that this node installed a state snapshot.
	SSTReceived(state GTID) error
}

// Table is the operation table a Bootstrap populates. Every operation slot is
// required; Free is optional and releases whatever the provider allocated
// while populating the table.
type Table struct {
	Version string

	Init           func(args InitArgs) error
	Connect        func(ctx context.Context, cluster, url, donor string) error
	Disconnect     func() error
	DebugPush      func(ctrl string) error
	DebugPop       func() error
	Recv           func(ctx context.Context) error
	Commit         func(conn ConnID, trx TrxID, payload []byte) error
	ReplayTrx      func(trx TrxID) error
	CancelCommit   func(bf Seqno, victim TrxID) error
	CancelSlave    func(bf Seqno, victim Seqno) error
	Committed      func(trx TrxID) error
	RolledBack     func(trx TrxID) error
	AppendQuery    func(trx TrxID, query string, ts time.Time, seed uint32) error
	AppendRowKey   func(trx TrxID, key Key) error
	SetVariable    func(name, value string) error
	SetDatabase    func(conn ConnID, query string) error
	ToExecuteStart func(conn ConnID, keys []Key, query string) error
	ToExecuteEnd   func(conn ConnID) error
	SSTSent        func(state GTID, rcode int) error
	SSTReceived    func(state GTID) error

	Free func(t *Table)
}

// Bind fills every operation slot from p. Version and Free are left alone.
func (t *Table) Bind(p Provider) {
	t.Init = p.Init
	t.Connect = p.Connect
	t.Disconnect = p.Disconnect
	t.DebugPush = p.DebugPush
	t.DebugPop = p.DebugPop
	t.Recv = p.Recv
	t.Commit = p.Commit
	t.ReplayTrx = p.ReplayTrx
	t.CancelCommit = p.CancelCommit
	t.CancelSlave = p.CancelSlave
	t.Committed = p.Committed
	t.RolledBack = p.RolledBack
	t.AppendQuery = p.AppendQuery
	t.AppendRowKey = p.AppendRowKey
	t.SetVariable = p.SetVariable
	t.SetDatabase = p.SetDatabase
	t.ToExecuteStart = p.ToExecuteStart
	t.ToExecuteEnd = p.ToExecuteEnd
	t.SSTSent = p.SSTSent
	t.SSTReceived = p.SSTReceived
}

// Bootstrap populates an operation table. A provider library exports one
// under BootstrapSymbol; a non-nil error aborts the load and is returned to
// the caller unchanged.
type Bootstrap func(t *Table) error

// Library is an opened provider library.
type Library interface {
	// Lookup resolves an exported symbol.
	Lookup(symbol string) (any, error)
	// Close releases the library. It is called at most once.
	Close() error
}

// Opener opens provider libraries by path.
type Opener interface {
	Open(path string) (Library, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(path string) (Library, error)

// Open implements Opener.
func (f OpenerFunc) Open(path string) (Library, error) {
	return f(path)
}
