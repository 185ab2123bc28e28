package core

import "github.com/jc141x/rres/model"

// ConnectorState is the connection state a device reports for one of its
// physical output ports.
type ConnectorState int

const (
	// StateConnected means a display is plugged into the connector.
	StateConnected ConnectorState = iota
	// StateDisconnected means nothing is plugged in.
	StateDisconnected
	// StateUnknown means the driver could not probe the connector.
	StateUnknown
)

func (s ConnectorState) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Connector is one physical output port on a graphics device, in the
// order the device reports them. Connectors are enumerated fresh on every
// query; nothing is cached between runs.
type Connector struct {
	// ID is the device-assigned connector identifier.
	ID uint32
	// State is the reported connection state.
	State ConnectorState
	// Active reports whether the connector is currently driven (or, for
	// drivers that hide the active pipeline, exposes modes to fall back on).
	Active bool
}

// Eligible reports whether the connector can contribute a resolution.
// A connected but idle display (powered off, nothing driving it) is not
// eligible.
func (c Connector) Eligible() bool {
	return c.State == StateConnected && c.Active
}

// Device is the capability surface the engine needs from an open graphics
// device. The real implementation talks to the kernel; tests substitute an
// in-memory fake.
type Device interface {
	// Driver returns the kernel driver name, for diagnostics only.
	Driver() string
	// Connectors returns the device's connectors in device-reported order.
	// The order must be preserved exactly: single-mode "first detected"
	// semantics depend on it.
	Connectors() ([]Connector, error)
	// ActiveMode returns the resolution currently driven on a connector.
	ActiveMode(connector uint32) (model.Resolution, error)
	// Close releases the device handle.
	Close() error
}

// System locates and opens graphics devices. It exists so the engine can
// run one linear pass without knowing whether a kernel or a fake sits
// behind it.
type System interface {
	// Locate resolves the device node to open: the named card if card is
	// non-empty, otherwise the first card with an active connector. It
	// probes the filesystem only and never opens the node.
	Locate(card string) (string, error)
	// Open opens the device node for querying.
	Open(path string) (Device, error)
}
