package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// HandleState exposes a handle's state for observability.
type HandleState struct {
	ID       string    `json:"id"`
	Spec     string    `json:"spec"`
	Kind     Kind      `json:"kind"`
	Version  string    `json:"version"`
	LoadedAt time.Time `json:"loaded_at"`
	Closed   bool      `json:"closed"`
}

// State implements introspection.Introspectable.
func (h *Handle) State() any {
	return HandleState{
		ID:       h.ID(),
		Spec:     h.spec,
		Kind:     h.Kind(),
		Version:  h.Version(),
		LoadedAt: h.loadedAt,
		Closed:   h.Closed(),
	}
}

// ComponentType implements introspection.Component.
func (h *Handle) ComponentType() string {
	return "provider"
}

var _ introspection.Introspectable = (*Handle)(nil)
var _ introspection.Component = (*Handle)(nil)
