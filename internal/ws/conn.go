package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// WebsocketChannel adapts a gorilla websocket connection to the Channel
// interface. Writes are serialized with a mutex because gorilla connections
// support at most one concurrent writer.
type WebsocketChannel struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// NewWebsocketChannel wraps an upgraded websocket connection.
func NewWebsocketChannel(conn *websocket.Conn) *WebsocketChannel {
	return &WebsocketChannel{conn: conn}
}

// Send writes one text message to the client.
func (c *WebsocketChannel) Send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Ping sends a websocket ping control frame.
func (c *WebsocketChannel) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// Close closes the underlying connection. Safe to call more than once.
func (c *WebsocketChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	return c.conn.Close()
}

// IsOpen reports whether Close has been called.
func (c *WebsocketChannel) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return !c.closed
}

// MarkClosed flags the channel as closed without closing the connection,
// used by the read loop when the peer disconnects first.
func (c *WebsocketChannel) MarkClosed() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}
