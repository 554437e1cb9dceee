package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://127.0.0.1", c.ServerEndpointAddr)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 50, c.PageSize)
	assert.False(t, c.InsecureSkipVerify)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://127.0.0.1", cfg.ServerEndpointAddr)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 50, cfg.PageSize)
}
