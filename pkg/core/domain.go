// Package core holds the provider contract: the operation interface every
// provider implements, the operation table a bootstrap routine populates, the
// handle returned by the loader, and the errors and events shared by the
// adapters.
package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConnID identifies a client connection inside the host.
type ConnID uint64

// TrxID identifies a local transaction.
type TrxID uint64

// Seqno is a position in the global replication order.
// SeqnoUndefined marks a position that has not been assigned.
type Seqno int64

const SeqnoUndefined Seqno = -1

// Key is an opaque row key appended to a transaction's write set.
type Key []byte

// GTID is a global transaction ID: the history UUID plus the position in it.
type GTID struct {
	UUID  uuid.UUID
	Seqno Seqno
}

// UndefinedGTID is the state of a node that has never joined a cluster.
var UndefinedGTID = GTID{UUID: uuid.Nil, Seqno: SeqnoUndefined}

func (g GTID) String() string {
	return fmt.Sprintf("%s:%d", g.UUID, g.Seqno)
}

// Defined reports whether both parts of the GTID are set.
func (g GTID) Defined() bool {
	return g.UUID != uuid.Nil && g.Seqno != SeqnoUndefined
}

// InitArgs carries the node identity handed to a provider on Init.
type InitArgs struct {
	NodeName     string
	NodeAddress  string
	NodeIncoming string
	DataDir      string
	Options      string
	ProtoVer     int
	State        GTID
}

// EventType represents a transition in a handle's life.
type EventType string

const (
	EventLoad   EventType = "LOAD"
	EventUnload EventType = "UNLOAD"
	EventReject EventType = "REJECT"
)

// Event is published by the loader on every load, unload and rejected load.
type Event struct {
	Type      EventType
	Spec      string
	HandleID  string // empty for rejected loads
	Timestamp int64  // Unix timestamp
	Err       error  // set for EventReject
}

func (e Event) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Type, e.Spec, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Type, e.Spec)
}

func newEvent(t EventType, spec, id string, err error) Event {
	return Event{Type: t, Spec: spec, HandleID: id, Timestamp: time.Now().Unix(), Err: err}
}

// NewLoadEvent builds the event published after a successful load.
func NewLoadEvent(h *Handle) Event {
	return newEvent(EventLoad, h.spec, h.id.String(), nil)
}

// NewUnloadEvent builds the event published after a handle is released.
func NewUnloadEvent(h *Handle) Event {
	return newEvent(EventUnload, h.spec, h.id.String(), nil)
}

// NewRejectEvent builds the event published when a load fails.
func NewRejectEvent(spec string, err error) Event {
	return newEvent(EventReject, spec, "", err)
}
