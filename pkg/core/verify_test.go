package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/provload/pkg/adapters/dummy"
	"github.com/aretw0/provload/pkg/core"
)

type logLine struct {
	level core.Level
	msg   string
}

type recorder struct {
	lines []logLine
}

func (r *recorder) log(level core.Level, msg string) {
	r.lines = append(r.lines, logLine{level, msg})
}

func fullTable(t *testing.T) *core.Table {
	t.Helper()
	var table core.Table
	require.NoError(t, dummy.Bootstrap(&table))
	return &table
}

func TestVerify_Complete(t *testing.T) {
	rec := &recorder{}
	require.NoError(t, core.Verify(fullTable(t), core.InterfaceVersion, rec.log))
	assert.Empty(t, rec.lines)
}

func TestVerify_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*core.Table) *core.Table
		wantMsg []string
	}{
		{
			name:    "Nil Table",
			mutate:  func(*core.Table) *core.Table { return nil },
			wantMsg: []string{"operation table is nil"},
		},
		{
			name: "Missing Version",
			mutate: func(tb *core.Table) *core.Table {
				tb.Version = ""
				return tb
			},
			wantMsg: []string{"version is not set"},
		},
		{
			name: "Version Mismatch",
			mutate: func(tb *core.Table) *core.Table {
				tb.Version = "20"
				return tb
			},
			wantMsg: []string{"'" + core.InterfaceVersion + "'", "'20'"},
		},
		{
			name: "Missing First Operation",
			mutate: func(tb *core.Table) *core.Table {
				tb.Init = nil
				return tb
			},
			wantMsg: []string{"missing operation Init"},
		},
		{
			name: "Missing Last Operation",
			mutate: func(tb *core.Table) *core.Table {
				tb.SSTReceived = nil
				return tb
			},
			wantMsg: []string{"missing operation SSTReceived"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			err := core.Verify(tt.mutate(fullTable(t)), core.InterfaceVersion, rec.log)

			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrInvalidArgument))
			require.Len(t, rec.lines, 1)
			assert.Equal(t, core.LevelError, rec.lines[0].level)
			for _, want := range tt.wantMsg {
				assert.Contains(t, rec.lines[0].msg, want)
			}
		})
	}
}

func TestVerify_NamesExactlyTheMissingOperation(t *testing.T) {
	for _, name := range core.RequiredOperations() {
		t.Run(name, func(t *testing.T) {
			table := fullTable(t)
			clearSlot(t, table, name)

			rec := &recorder{}
			err := core.Verify(table, core.InterfaceVersion, rec.log)
			require.Error(t, err)
			require.Len(t, rec.lines, 1)
			assert.True(t, strings.HasSuffix(rec.lines[0].msg, "missing operation "+name))
			assert.Equal(t, []string{name}, core.Missing(table))
		})
	}
}

func TestVerify_ShortCircuitsOnVersion(t *testing.T) {
	table := fullTable(t)
	table.Version = "other"
	table.Commit = nil

	rec := &recorder{}
	require.Error(t, core.Verify(table, core.InterfaceVersion, rec.log))
	require.Len(t, rec.lines, 1)
	assert.Contains(t, rec.lines[0].msg, "version mismatch")
}

func TestVerify_DoesNotMutate(t *testing.T) {
	table := fullTable(t)
	table.Version = "other"
	_ = core.Verify(table, core.InterfaceVersion, nil)
	assert.Equal(t, "other", table.Version)
	assert.Empty(t, core.Missing(table))
}

func TestMissing(t *testing.T) {
	assert.Equal(t, core.RequiredOperations(), core.Missing(nil))
	assert.Equal(t, core.RequiredOperations(), core.Missing(&core.Table{}))
	assert.Len(t, core.RequiredOperations(), 20)
}

// clearSlot unsets the named operation on tb.
func clearSlot(t *testing.T, tb *core.Table, name string) {
	t.Helper()
	switch name {
	case "Init":
		tb.Init = nil
	case "Connect":
		tb.Connect = nil
	case "Disconnect":
		tb.Disconnect = nil
	case "DebugPush":
		tb.DebugPush = nil
	case "DebugPop":
		tb.DebugPop = nil
	case "Recv":
		tb.Recv = nil
	case "Commit":
		tb.Commit = nil
	case "ReplayTrx":
		tb.ReplayTrx = nil
	case "CancelCommit":
		tb.CancelCommit = nil
	case "CancelSlave":
		tb.CancelSlave = nil
	case "Committed":
		tb.Committed = nil
	case "RolledBack":
		tb.RolledBack = nil
	case "AppendQuery":
		tb.AppendQuery = nil
	case "AppendRowKey":
		tb.AppendRowKey = nil
	case "SetVariable":
		tb.SetVariable = nil
	case "SetDatabase":
		tb.SetDatabase = nil
	case "ToExecuteStart":
		tb.ToExecuteStart = nil
	case "ToExecuteEnd":
		tb.ToExecuteEnd = nil
	case "SSTSent":
		tb.SSTSent = nil
	case "SSTReceived":
		tb.SSTReceived = nil
	default:
		t.Fatalf("unknown operation %s", name)
	}
}
