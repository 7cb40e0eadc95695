package application

import (
	"context"
	"net/http"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/paddockhq/paddock/modules/core/domain/aggregates/user"
	"github.com/paddockhq/paddock/pkg/composables"
	"github.com/paddockhq/paddock/pkg/intl"
	"github.com/paddockhq/paddock/pkg/ws"
)

const (
	ChannelAuthenticated string = "authenticated"
)

type Connection interface {
	ws.Connectioner
	User() user.User
}

type WsCallback func(ctx context.Context, conn Connection) error

type Huber interface {
	http.Handler
	ForEach(channel string, f WsCallback) error
}

type HuberOptions struct {
	Bundle      *i18n.Bundle
	Logger      *logrus.Logger
	CheckOrigin func(r *http.Request) bool
}

func NewHub(opts *HuberOptions) Huber {
	appHub := &huber{
		bundle:          opts.Bundle,
		logger:          opts.Logger,
		connectionsMeta: make(map[*ws.Connection]*MetaInfo),
	}
	hub := ws.NewHub(&ws.HubOptions{
		Logger:       opts.Logger,
		CheckOrigin:  opts.CheckOrigin,
		OnConnect:    appHub.onConnect,
		OnDisconnect: appHub.onDisconnect,
	})
	appHub.hub = hub
	return appHub
}

type MetaInfo struct {
	User user.User
}

type huber struct {
	hub    ws.Huber
	bundle *i18n.Bundle
	logger *logrus.Logger

	mu              sync.RWMutex
	connectionsMeta map[*ws.Connection]*MetaInfo
}

func (h *huber) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.hub.ServeHTTP(w, r)
}

func (h *huber) onConnect(r *http.Request, hub *ws.Hub, conn *ws.Connection) error {
	meta := &MetaInfo{}
	usr, err := composables.UseUser(r.Context())
	if err != nil {
		// Unauthenticated connections still receive public broadcasts.
		h.setMeta(conn, meta)
		return nil
	}
	meta.User = usr
	hub.JoinChannel(ChannelAuthenticated, conn)
	hub.JoinChannel("user/"+usr.ID().String(), conn)
	h.setMeta(conn, meta)
	return nil
}

func (h *huber) onDisconnect(conn *ws.Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.connectionsMeta, conn)
}

func (h *huber) setMeta(conn *ws.Connection, meta *MetaInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connectionsMeta[conn] = meta
}

func (h *huber) meta(conn *ws.Connection) (*MetaInfo, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	meta, ok := h.connectionsMeta[conn]
	return meta, ok
}

func (h *huber) ForEach(channel string, f WsCallback) error {
	for _, conn := range h.hub.ConnectionsInChannel(channel) {
		meta, ok := h.meta(conn)
		if !ok {
			h.logger.Error("connection meta not found")
			continue
		}
		localizer := i18n.NewLocalizer(h.bundle, language.English.String())
		connCtx := intl.WithLocalizer(context.Background(), localizer)
		connCtx = composables.WithLogger(connCtx, logrus.NewEntry(h.logger))
		if !meta.User.IsZero() {
			connCtx = composables.WithUser(connCtx, meta.User)
		}
		if err := f(connCtx, &connection{user: meta.User, conn: conn}); err != nil {
			return err
		}
	}
	return nil
}

type connection struct {
	user user.User
	conn ws.Connectioner
}

func (c *connection) SendMessage(message []byte) error {
	return c.conn.SendMessage(message)
}

func (c *connection) Close() error {
	return c.conn.Close()
}

func (c *connection) User() user.User {
	return c.user
}
