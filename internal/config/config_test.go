package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TICKETS_AMOUNT", "")
	t.Setenv("TICKETS_CVE_POOL", "")
	t.Setenv("TICKETS_SEED", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("NOTIFY_ENABLED", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_OUTPUT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ticket-stats", cfg.App.Name)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "stderr", cfg.Logger.Output)
	assert.Equal(t, 1000, cfg.Generator.Amount)
	assert.Equal(t, []string{"CVE-1111", "CVE-2222", "CVE-3333"}, cfg.Generator.CVEPool)
	assert.Zero(t, cfg.Generator.Seed)
	assert.False(t, cfg.Notification.Enabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TICKETS_AMOUNT", "25")
	t.Setenv("TICKETS_CVE_POOL", " CVE-A , ,CVE-B")
	t.Setenv("TICKETS_SEED", "7")
	t.Setenv("NOTIFY_ENABLED", "true")
	t.Setenv("LOG_FORMAT", "Console")
	t.Setenv("LOG_OUTPUT", "/tmp/ticket-stats.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Generator.Amount)
	assert.Equal(t, []string{"CVE-A", "CVE-B"}, cfg.Generator.CVEPool)
	assert.Equal(t, int64(7), cfg.Generator.Seed)
	assert.True(t, cfg.Notification.Enabled)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "/tmp/ticket-stats.log", cfg.Logger.Output)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "non numeric amount", key: "TICKETS_AMOUNT", val: "many"},
		{name: "negative amount", key: "TICKETS_AMOUNT", val: "-1"},
		{name: "bad seed", key: "TICKETS_SEED", val: "x"},
		{name: "empty pool", key: "TICKETS_CVE_POOL", val: " , "},
		{name: "unknown log format", key: "LOG_FORMAT", val: "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
