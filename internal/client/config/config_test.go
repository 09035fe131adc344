package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "crack.db", c.DatabasePath)
	assert.Equal(t, time.Duration(0), c.PaymentConfirmDelay)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "crack.db", cfg.DatabasePath)
	assert.Equal(t, time.Duration(0), cfg.PaymentConfirmDelay)
}
