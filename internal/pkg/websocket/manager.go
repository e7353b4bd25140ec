package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/constants"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
)

const writeWait = 10 * time.Second

// Message is the envelope of every frame in both directions
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ErrorMessage is the payload of an error event
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client is one upgraded connection of a signed-in user. Writes are
// serialized; reads belong to a single goroutine.
type Client struct {
	UserID string

	conn *websocket.Conn
	mu   sync.Mutex
}

// Send writes event with data marshalled as JSON
func (cl *Client) Send(event string, data interface{}) error {
	if cl.conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return cl.conn.WriteJSON(Message{Event: event, Data: rawData})
}

// SendError writes an error event
func (cl *Client) SendError(code, message string) error {
	return cl.Send(constants.EventError, ErrorMessage{Code: code, Message: message})
}

// Read blocks for the next frame from the peer
func (cl *Client) Read() (Message, error) {
	var msg Message
	err := cl.conn.ReadJSON(&msg)
	return msg, err
}

// Close sends a normal close frame and closes the connection
func (cl *Client) Close() error {
	cl.mu.Lock()
	_ = cl.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	cl.mu.Unlock()
	return cl.conn.Close()
}

// Manager manages WebSocket connections per user
type Manager struct {
	mu       sync.RWMutex
	clients  map[string]map[*Client]struct{}
	upgrader websocket.Upgrader
	logger   *logger.ZapLogger
}

// NewManager creates a new WebSocket manager
func NewManager(l *logger.ZapLogger) *Manager {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Manager{
		clients: make(map[string]map[*Client]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: l,
	}
}

// Upgrade upgrades the request of an authenticated user and registers the
// connection
func (m *Manager) Upgrade(c echo.Context, userID string) (*Client, error) {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil, err
	}

	client := &Client{UserID: userID, conn: ws}

	m.mu.Lock()
	if m.clients[userID] == nil {
		m.clients[userID] = make(map[*Client]struct{})
	}
	m.clients[userID][client] = struct{}{}
	m.mu.Unlock()

	m.logger.Debug("WebSocket client connected", logger.String("user_id", userID))
	return client, nil
}

// Remove unregisters and closes client
func (m *Manager) Remove(client *Client) {
	m.mu.Lock()
	if conns, ok := m.clients[client.UserID]; ok {
		delete(conns, client)
		if len(conns) == 0 {
			delete(m.clients, client.UserID)
		}
	}
	m.mu.Unlock()

	_ = client.conn.Close()
	m.logger.Debug("WebSocket client disconnected", logger.String("user_id", client.UserID))
}

// Count returns the number of open connections of userID
func (m *Manager) Count(userID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients[userID])
}

// CloseUser closes every connection of userID
func (m *Manager) CloseUser(userID string) {
	m.mu.Lock()
	conns := m.clients[userID]
	delete(m.clients, userID)
	m.mu.Unlock()

	for client := range conns {
		if err := client.Close(); err != nil {
			m.logger.Debug("Error closing WebSocket client",
				logger.String("user_id", userID),
				logger.Err(err))
		}
	}
}

// CloseAll closes every registered connection
func (m *Manager) CloseAll() {
	m.mu.RLock()
	users := make([]string, 0, len(m.clients))
	for userID := range m.clients {
		users = append(users, userID)
	}
	m.mu.RUnlock()

	for _, userID := range users {
		m.CloseUser(userID)
	}
}
