// Package ws is a small channel-oriented websocket hub. Connections join
// named channels; broadcasts fan out to every member of a channel.
package ws

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type Connectioner interface {
	SendMessage(message []byte) error
	Close() error
}

type Connection struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *Connection) SendMessage(message []byte) error {
	select {
	case c.send <- message:
		return nil
	default:
		return websocket.ErrCloseSent
	}
}

func (c *Connection) Close() error {
	c.once.Do(func() { close(c.send) })
	return c.conn.Close()
}

func (c *Connection) writePump() {
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

type HubOptions struct {
	Logger       *logrus.Logger
	CheckOrigin  func(r *http.Request) bool
	OnConnect    func(r *http.Request, hub *Hub, conn *Connection) error
	OnDisconnect func(conn *Connection)
}

type Huber interface {
	http.Handler
	JoinChannel(channel string, conn *Connection)
	LeaveChannel(channel string, conn *Connection)
	ConnectionsInChannel(channel string) []*Connection
	BroadcastToChannel(channel string, message []byte)
}

type Hub struct {
	upgrader websocket.Upgrader
	logger   *logrus.Logger
	opts     *HubOptions

	mu       sync.RWMutex
	channels map[string]map[*Connection]struct{}
}

func NewHub(opts *HubOptions) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     opts.CheckOrigin,
		},
		logger:   opts.Logger,
		opts:     opts,
		channels: make(map[string]map[*Connection]struct{}),
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Error("websocket upgrade failed")
		return
	}
	conn := &Connection{conn: wsConn, send: make(chan []byte, 64)}
	if h.opts.OnConnect != nil {
		if err := h.opts.OnConnect(r, h, conn); err != nil {
			h.logger.WithError(err).Error("websocket connect hook failed")
			_ = conn.Close()
			return
		}
	}
	go conn.writePump()
	go h.readPump(conn)
}

// readPump drains inbound frames so pings are answered; the hub is
// broadcast-only and discards client payloads.
func (h *Hub) readPump(conn *Connection) {
	defer func() {
		h.drop(conn)
		if h.opts.OnDisconnect != nil {
			h.opts.OnDisconnect(conn)
		}
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) JoinChannel(channel string, conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.channels[channel]
	if !ok {
		members = make(map[*Connection]struct{})
		h.channels[channel] = members
	}
	members[conn] = struct{}{}
}

func (h *Hub) LeaveChannel(channel string, conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.channels[channel], conn)
}

func (h *Hub) drop(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, members := range h.channels {
		delete(members, conn)
	}
}

func (h *Hub) ConnectionsInChannel(channel string) []*Connection {
	h.mu.RLock()
	defer h.mu.RUnlock()
	members := h.channels[channel]
	out := make([]*Connection, 0, len(members))
	for conn := range members {
		out = append(out, conn)
	}
	return out
}

func (h *Hub) BroadcastToChannel(channel string, message []byte) {
	for _, conn := range h.ConnectionsInChannel(channel) {
		if err := conn.SendMessage(message); err != nil {
			h.logger.WithError(err).Warn("dropping websocket message")
		}
	}
}
