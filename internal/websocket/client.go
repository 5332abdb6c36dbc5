package websocket

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Alert feed connection limits
const (
	writeTimeout    = 10 * time.Second
	idleTimeout     = 60 * time.Second
	keepAlivePeriod = idleTimeout * 9 / 10

	// The feed is one-way; subscribers only send control frames.
	maxInboundFrame = 512

	// Alerts queued for a subscriber that is not reading
	backlogSize = 64
)

// ErrClientBacklogged is returned by Send when a subscriber stops draining its queue
var ErrClientBacklogged = errors.New("client backlog full")

// Client is one subscriber of the budget alert feed
type Client struct {
	id   string
	conn *websocket.Conn
	hub  *Hub

	mu      sync.RWMutex
	queue   chan []byte
	stopped bool
	stop    sync.Once
}

// NewClient wraps an upgraded connection for the hub
func NewClient(conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		id:    uuid.New().String(),
		conn:  conn,
		hub:   hub,
		queue: make(chan []byte, backlogSize),
	}
}

func (c *Client) ID() string {
	return c.id
}

// Send queues an encoded event without blocking the publisher
func (c *Client) Send(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.stopped {
		return ErrClientClosed
	}
	select {
	case c.queue <- data:
		return nil
	default:
		return ErrClientBacklogged
	}
}

// Close stops the write loop and closes the connection. It may be called
// more than once.
func (c *Client) Close() error {
	var err error
	c.stop.Do(func() {
		c.mu.Lock()
		c.stopped = true
		close(c.queue)
		c.mu.Unlock()

		err = c.conn.Close()
	})
	return err
}

func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stopped
}

func (c *Client) extendDeadline(string) error {
	return c.conn.SetReadDeadline(time.Now().Add(idleTimeout))
}

// ReadPump keeps the connection alive by processing pongs and close frames.
// Any data frame from the subscriber is ignored. Run it in its own goroutine;
// it unregisters the client when the peer goes away.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxInboundFrame)
	c.extendDeadline("")
	c.conn.SetPongHandler(c.extendDeadline)

	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("client_id", c.id).Msg("Alert subscriber disconnected unexpectedly")
			}
			return
		}
	}
}

// WritePump delivers queued events and sends keep-alive pings. Run it in its
// own goroutine; it returns once the client is closed or a write fails.
func (c *Client) WritePump() {
	keepAlive := time.NewTicker(keepAlivePeriod)
	defer func() {
		keepAlive.Stop()
		c.Close()
	}()

	for {
		select {
		case data, open := <-c.queue:
			if !open {
				c.write(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.write(websocket.TextMessage, data); err != nil {
				log.Warn().Err(err).Str("client_id", c.id).Msg("Failed to deliver event to alert subscriber")
				return
			}
		case <-keepAlive.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) write(messageType int, data []byte) error {
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(messageType, data)
}
