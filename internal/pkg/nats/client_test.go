package nats

import (
	"testing"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		client, err := NewClient("invalid://address", "test", logger.NewNopLogger())
		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})

	t.Run("nothing listening", func(t *testing.T) {
		client, err := NewClient("nats://127.0.0.1:1", "test", logger.NewNopLogger())
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestClient_PingWithoutConnection(t *testing.T) {
	c := &Client{}
	assert.Error(t, c.Ping())
	c.Close()
}
