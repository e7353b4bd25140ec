package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_FLOAT", "1.5")
	t.Setenv("TEST_DURATION", "250ms")
	t.Setenv("TEST_BAD_DURATION", "soon")

	assert.Equal(t, "value", GetEnv("TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnv("TEST_MISSING", "default"))
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 0))
	assert.Equal(t, 7, GetEnvAsInt("TEST_BAD_INT", 7))
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.Equal(t, 1.5, GetEnvAsFloat("TEST_FLOAT", 0))
	assert.Equal(t, 250*time.Millisecond, GetEnvAsDuration("TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, GetEnvAsDuration("TEST_BAD_DURATION", time.Second))
}

func TestInitConfig_LoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dispatch.env")
	content := "SERVER_PORT=8181\nSTORE_KIND=rest\nDISPATCH_MAX_LOAD_ATTEMPTS=5\nDB_DRIVER=sqlite\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv never overrides existing variables, so make sure these are unset
	for _, key := range []string{"SERVER_PORT", "STORE_KIND", "DISPATCH_MAX_LOAD_ATTEMPTS", "DB_DRIVER"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := InitConfig(path)

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "rest", cfg.Store.Kind)
	assert.Equal(t, 5, cfg.Dispatch.MaxLoadAttempts)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 2*time.Second, cfg.Dispatch.PaymentRefetchDelay)
}
