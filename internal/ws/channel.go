// Package ws tracks live bidirectional channels per user and supports
// fan-out of serialized notifications without touching persistence.
package ws

// Channel abstracts one live bidirectional connection to a client device.
//
// Implementations exist for gorilla websocket connections and for in-memory
// test doubles; the registry and broadcaster never depend on a concrete
// transport.
type Channel interface {
	// Send writes one serialized message to the client.
	Send(data []byte) error
	// Ping probes channel liveness. Channels that fail to respond are
	// expected to be closed by the transport layer, which triggers
	// unregistration through its own close handler.
	Ping() error
	// Close tears the channel down.
	Close() error
	// IsOpen reports whether the channel is still usable.
	IsOpen() bool
}
