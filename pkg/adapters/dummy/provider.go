// Package dummy implements the built-in provider selected when no library is
// requested. Every operation succeeds without doing anything, so a host can
// run standalone with the same code path it uses for a real provider.
package dummy

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/provload/pkg/core"
)

// Provider is the no-op provider. It remembers the Init arguments and the
// variables it was given so callers can inspect what they configured.
type Provider struct {
	mu        sync.Mutex
	args      core.InitArgs
	variables map[string]string
	freed     bool
}

// New creates a dummy provider.
func New() *Provider {
	return &Provider{variables: make(map[string]string)}
}

// Bootstrap populates t with a fresh dummy provider. It has the same contract
// as a bootstrap exported by a provider library.
func Bootstrap(t *core.Table) error {
	p := New()
	t.Version = core.InterfaceVersion
	t.Bind(p)
	t.Free = func(*core.Table) { p.free() }
	return nil
}

func (p *Provider) free() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.variables = nil
	p.freed = true
}

// Freed reports whether the table's Free ran.
func (p *Provider) Freed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.freed
}

// Args returns the arguments of the last Init call.
func (p *Provider) Args() core.InitArgs {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.args
}

// Variable returns a value stored by SetVariable.
func (p *Provider) Variable(name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.variables[name]
	return v, ok
}

func (p *Provider) Init(args core.InitArgs) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.args = args
	return nil
}

func (p *Provider) Connect(ctx context.Context, cluster, url, donor string) error { return nil }
func (p *Provider) Disconnect() error                                             { return nil }
func (p *Provider) DebugPush(ctrl string) error                                   { return nil }
func (p *Provider) DebugPop() error                                               { return nil }

// Recv has nothing to receive; it returns at once.
func (p *Provider) Recv(ctx context.Context) error { return nil }

func (p *Provider) Commit(conn core.ConnID, trx core.TrxID, payload []byte) error { return nil }
func (p *Provider) ReplayTrx(trx core.TrxID) error                                { return nil }
func (p *Provider) CancelCommit(bf core.Seqno, victim core.TrxID) error           { return nil }
func (p *Provider) CancelSlave(bf core.Seqno, victim core.Seqno) error            { return nil }
func (p *Provider) Committed(trx core.TrxID) error                                { return nil }
func (p *Provider) RolledBack(trx core.TrxID) error                               { return nil }

func (p *Provider) AppendQuery(trx core.TrxID, query string, ts time.Time, seed uint32) error {
	return nil
}

func (p *Provider) AppendRowKey(trx core.TrxID, key core.Key) error { return nil }

func (p *Provider) SetVariable(name, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.variables != nil {
		p.variables[name] = value
	}
	return nil
}

func (p *Provider) SetDatabase(conn core.ConnID, query string) error                 { return nil }
func (p *Provider) ToExecuteStart(conn core.ConnID, keys []core.Key, q string) error { return nil }
func (p *Provider) ToExecuteEnd(conn core.ConnID) error                              { return nil }
func (p *Provider) SSTSent(state core.GTID, rcode int) error                         { return nil }
func (p *Provider) SSTReceived(state core.GTID) error                                { return nil }

var _ core.Provider = (*Provider)(nil)
