package dummy_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/provload/pkg/adapters/dummy"
	"github.com/aretw0/provload/pkg/core"
)

func TestBootstrap_PopulatesVerifiableTable(t *testing.T) {
	var table core.Table
	require.NoError(t, dummy.Bootstrap(&table))

	assert.Equal(t, core.InterfaceVersion, table.Version)
	assert.Empty(t, core.Missing(&table))
	assert.NotNil(t, table.Free)
	require.NoError(t, core.Verify(&table, core.InterfaceVersion, nil))
}

func TestBootstrap_FreshProviderPerCall(t *testing.T) {
	var a, b core.Table
	require.NoError(t, dummy.Bootstrap(&a))
	require.NoError(t, dummy.Bootstrap(&b))

	// Free on one table must not disturb the other.
	a.Free(&a)
	assert.NoError(t, b.SetVariable("k", "v"))
}

func TestProvider_OperationsSucceed(t *testing.T) {
	p := dummy.New()
	ctx := context.Background()
	state := core.GTID{UUID: uuid.New(), Seqno: 7}

	require.NoError(t, p.Init(core.InitArgs{NodeName: "node-1", State: state}))
	assert.Equal(t, "node-1", p.Args().NodeName)
	assert.Equal(t, state, p.Args().State)

	assert.NoError(t, p.Connect(ctx, "cluster", "gcomm://", ""))
	assert.NoError(t, p.Recv(ctx))
	assert.NoError(t, p.Commit(1, 2, []byte("rbr")))
	assert.NoError(t, p.ToExecuteStart(1, []core.Key{core.Key("k")}, "CREATE TABLE t (id INT)"))
	assert.NoError(t, p.ToExecuteEnd(1))
	assert.NoError(t, p.SSTSent(state, 0))
	assert.NoError(t, p.SSTReceived(state))
	assert.NoError(t, p.Disconnect())
}

func TestProvider_SetVariable(t *testing.T) {
	p := dummy.New()
	require.NoError(t, p.SetVariable("gcache.size", "128M"))

	v, ok := p.Variable("gcache.size")
	assert.True(t, ok)
	assert.Equal(t, "128M", v)

	_, ok = p.Variable("missing")
	assert.False(t, ok)
}
