package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/paddockhq/paddock/pkg/application"
)

// WebsocketController exposes the realtime hub. Row updates for entity list
// pages fan out over this socket.
type WebsocketController struct {
	app application.Application
}

func NewWebsocketController(app application.Application) application.Controller {
	return &WebsocketController{app: app}
}

func (c *WebsocketController) Key() string {
	return "/ws"
}

func (c *WebsocketController) Register(r *mux.Router) {
	r.Handle("/ws", c.app.Websocket()).Methods(http.MethodGet)
}
