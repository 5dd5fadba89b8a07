package core

import "fmt"

type requirement struct {
	name    string
	present func(t *Table) bool
}

// requiredOperations is checked in order; the first absent slot fails verification.
var requiredOperations = []requirement{
	{"Init", func(t *Table) bool { return t.Init != nil }},
	{"Connect", func(t *Table) bool { return t.Connect != nil }},
	{"Disconnect", func(t *Table) bool { return t.Disconnect != nil }},
	{"DebugPush", func(t *Table) bool { return t.DebugPush != nil }},
	{"DebugPop", func(t *Table) bool { return t.DebugPop != nil }},
	{"Recv", func(t *Table) bool { return t.Recv != nil }},
	{"Commit", func(t *Table) bool { return t.Commit != nil }},
	{"ReplayTrx", func(t *Table) bool { return t.ReplayTrx != nil }},
	{"CancelCommit", func(t *Table) bool { return t.CancelCommit != nil }},
	{"CancelSlave", func(t *Table) bool { return t.CancelSlave != nil }},
	{"Committed", func(t *Table) bool { return t.Committed != nil }},
	{"RolledBack", func(t *Table) bool { return t.RolledBack != nil }},
	{"AppendQuery", func(t *Table) bool { return t.AppendQuery != nil }},
	{"AppendRowKey", func(t *Table) bool { return t.AppendRowKey != nil }},
	{"SetVariable", func(t *Table) bool { return t.SetVariable != nil }},
	{"SetDatabase", func(t *Table) bool { return t.SetDatabase != nil }},
	{"ToExecuteStart", func(t *Table) bool { return t.ToExecuteStart != nil }},
	{"ToExecuteEnd", func(t *Table) bool { return t.ToExecuteEnd != nil }},
	{"SSTSent", func(t *Table) bool { return t.SSTSent != nil }},
	{"SSTReceived", func(t *Table) bool { return t.SSTReceived != nil }},
}

// RequiredOperations lists the operation names a table must populate, in
// verification order.
func RequiredOperations() []string {
	names := make([]string, len(requiredOperations))
	for i, r := range requiredOperations {
		names[i] = r.name
	}
	return names
}

// Verify checks a populated table against the expected interface version and
// the required operations, stopping at the first unmet condition. Each failure
// is logged at ERROR and wraps ErrInvalidArgument. The table is not modified.
func Verify(t *Table, want string, log LogFunc) error {
	fail := func(msg string) error {
		if log != nil {
			log(LevelError, msg)
		}
		return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
	}

	if t == nil {
		return fail("verify(): operation table is nil")
	}
	if t.Version == "" {
		return fail("verify(): version is not set")
	}
	if t.Version != want {
		return fail(fmt.Sprintf("interface version mismatch: required '%s', found '%s'", want, t.Version))
	}
	for _, r := range requiredOperations {
		if !r.present(t) {
			return fail("verify(): missing operation " + r.name)
		}
	}
	return nil
}

// Missing returns the name of every required operation t leaves unset.
func Missing(t *Table) []string {
	if t == nil {
		return RequiredOperations()
	}
	var names []string
	for _, r := range requiredOperations {
		if !r.present(t) {
			names = append(names, r.name)
		}
	}
	return names
}
