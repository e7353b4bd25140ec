package websocket

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/constants"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/middleware"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/websocket"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
)

// StateHandler streams provider state changes over a WebSocket
type StateHandler struct {
	registry dispatch.Registry
	manager  *websocket.Manager
}

// NewStateHandler creates a new state stream handler
func NewStateHandler(registry dispatch.Registry, manager *websocket.Manager) *StateHandler {
	return &StateHandler{registry: registry, manager: manager}
}

// Stream sends a snapshot on connect, then every state change. A ping is
// answered with pong, a snapshot request with a fresh snapshot.
func (h *StateHandler) Stream(c echo.Context) error {
	userID := middleware.UserID(c)
	provider := h.registry.Get(c.Request().Context(), userID)

	client, err := h.manager.Upgrade(c, userID)
	if err != nil {
		logger.Warn("WebSocket upgrade failed",
			logger.String("user_id", userID),
			logger.Err(err))
		return nil
	}
	defer h.manager.Remove(client)

	states, unsubscribe := provider.Subscribe()
	defer unsubscribe()

	if err := client.Send(constants.EventSnapshot, provider.Snapshot()); err != nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			msg, err := client.Read()
			if err != nil {
				return
			}
			switch msg.Event {
			case constants.EventPing:
				err = client.Send(constants.EventPong, nil)
			case constants.EventSnapshot:
				err = client.Send(constants.EventSnapshot, provider.Snapshot())
			default:
				err = client.SendError("unknown_event", "Unknown event "+msg.Event)
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return nil
		case st, ok := <-states:
			if !ok {
				return nil
			}
			if err := client.Send(constants.EventState, st); err != nil {
				logger.Debug("WebSocket send failed",
					logger.String("user_id", userID),
					logger.Err(err))
				return nil
			}
		}
	}
}
