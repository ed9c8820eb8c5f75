package ws

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"
)

// DefaultHeartbeatInterval is how often the registry pings open channels.
const DefaultHeartbeatInterval = 30 * time.Second

// auditLogger records connection lifecycle events for diagnostics.
type auditLogger interface {
	LogConnectionEvent(ctx context.Context, userID, connectionID, event string) error
}

// connection is the registry's per-channel bookkeeping record.
type connection struct {
	userID  string
	channel Channel
}

// Registry is the in-memory index from user id to that user's live channels.
//
// It is constructed explicitly and injected wherever fan-out is needed; the
// process owns exactly one instance for its lifetime.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]*connection          // connection id -> record
	users map[string]map[string]struct{}  // user id -> set of connection ids
	audit auditLogger
}

// NewRegistry creates an empty connection registry.
func NewRegistry(audit auditLogger) *Registry {
	return &Registry{
		conns: make(map[string]*connection),
		users: make(map[string]map[string]struct{}),
		audit: audit,
	}
}

// Register records a live channel for userID under connectionID.
//
// Re-registering an existing connection id overwrites the previous record.
// The audit write is a side effect; its failure never blocks registration.
func (r *Registry) Register(ctx context.Context, userID, connectionID string, ch Channel) {
	r.mu.Lock()
	r.conns[connectionID] = &connection{
		userID:  userID,
		channel: ch,
	}
	set, ok := r.users[userID]
	if !ok {
		set = make(map[string]struct{})
		r.users[userID] = set
	}
	set[connectionID] = struct{}{}
	r.mu.Unlock()

	if err := r.audit.LogConnectionEvent(ctx, userID, connectionID, "connected"); err != nil {
		zlog.Logger.Warn().Err(err).Str("connection_id", connectionID).Msg("failed to audit connection")
	}

	zlog.Logger.Info().
		Str("user_id", userID).
		Str("connection_id", connectionID).
		Msg("connection registered")
}

// Unregister removes a connection and discards it from its owner's set.
// Unknown connection ids are a no-op.
func (r *Registry) Unregister(ctx context.Context, connectionID string) {
	r.mu.Lock()
	conn, ok := r.conns[connectionID]
	if !ok {
		r.mu.Unlock()
		return
	}

	delete(r.conns, connectionID)
	if set, ok := r.users[conn.userID]; ok {
		delete(set, connectionID)
		if len(set) == 0 {
			delete(r.users, conn.userID)
		}
	}
	r.mu.Unlock()

	if err := r.audit.LogConnectionEvent(ctx, conn.userID, connectionID, "disconnected"); err != nil {
		zlog.Logger.Warn().Err(err).Str("connection_id", connectionID).Msg("failed to audit disconnection")
	}

	zlog.Logger.Info().
		Str("user_id", conn.userID).
		Str("connection_id", connectionID).
		Msg("connection unregistered")
}

// ChannelsFor returns the live channels of one user.
func (r *Registry) ChannelsFor(userID string) []Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.users[userID]
	if !ok {
		return nil
	}

	channels := make([]Channel, 0, len(set))
	for id := range set {
		if conn, ok := r.conns[id]; ok {
			channels = append(channels, conn.channel)
		}
	}

	return channels
}

// AllChannels returns every currently registered channel.
func (r *Registry) AllChannels() []Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	channels := make([]Channel, 0, len(r.conns))
	for _, conn := range r.conns {
		channels = append(channels, conn.channel)
	}

	return channels
}

// CountAll returns the number of live connections across all users.
func (r *Registry) CountAll() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns)
}

// CountForUser returns the number of live connections for one user.
func (r *Registry) CountForUser(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users[userID])
}

// Shutdown closes every live channel and clears all state. Used only at
// process teardown.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, conn := range r.conns {
		if err := conn.channel.Close(); err != nil {
			zlog.Logger.Warn().Err(err).Str("connection_id", id).Msg("failed to close channel")
		}
	}

	r.conns = make(map[string]*connection)
	r.users = make(map[string]map[string]struct{})
}

// RunHeartbeat pings every open channel on each tick until ctx is done.
//
// It only probes; unresponsive channels are closed by the transport, whose
// close handler calls Unregister.
func (r *Registry) RunHeartbeat(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultHeartbeatInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("heartbeat stopped")
			return
		case <-ticker.C:
			for _, ch := range r.AllChannels() {
				if !ch.IsOpen() {
					continue
				}
				if err := ch.Ping(); err != nil {
					zlog.Logger.Debug().Err(err).Msg("heartbeat ping failed")
				}
			}
		}
	}
}
