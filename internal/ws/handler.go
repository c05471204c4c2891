package ws

import (
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// Handler upgrades job-feed subscribers onto the hub. Browser clients
// are screened against the configured origin allowlist before upgrade.
type Handler struct {
	hub      *Hub
	origins  []string
	upgrader websocket.Upgrader
	logger   *log.Logger
}

func NewHandler(hub *Hub, allowedOrigins []string, logger *log.Logger) *Handler {
	h := &Handler{hub: hub, origins: allowedOrigins, logger: logger}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.allowOrigin,
	}
	return h
}

// allowOrigin admits requests without an Origin header (non-browser
// clients) and, when an allowlist is configured, browsers from listed
// origins only. An empty allowlist admits every origin.
func (h *Handler) allowOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.origins) == 0 {
		return true
	}
	for _, allowed := range h.origins {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

func (h *Handler) HandleJobsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("[WS] Upgrade rejected | remote=%s err=%v", r.RemoteAddr, err)
			}
			return
		}

		if h.logger != nil {
			h.logger.Printf("[WS] Subscriber connected | remote=%s", conn.RemoteAddr())
		}

		client := NewClient(h.hub, conn)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
