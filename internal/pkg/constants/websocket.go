package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Provider events
	EventState    = "state"
	EventSnapshot = "snapshot"
)
