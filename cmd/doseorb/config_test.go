package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	resetDoseorbEnv(t)

	cfg, err := loadConfig(writeTempConfig(t, "skin: default"))
	require.NoError(t, err)

	assert.Equal(t, 600*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.FrameInterval)
	assert.True(t, cfg.ShowDoseIndicator, "dose indicator should default on")
	assert.True(t, cfg.ShowStatistics, "statistics should default on")
	assert.False(t, cfg.APIEnabled)
	assert.False(t, cfg.AudioCue)
	assert.Equal(t, "127.0.0.1:3300", cfg.APIAddr)
	assert.Empty(t, cfg.HostSocket, "default is simulator mode")
	assert.Equal(t, 99, cfg.SimMaxPrayer)
	assert.Equal(t, 15, cfg.SimPrayerBonus)
	assert.Equal(t, 4, cfg.SimPrayerPotions)
	assert.Equal(t, 2, cfg.SimSuperRestores)
	assert.Equal(t, 60, cfg.HistorySize)
}

func TestLoadConfig_FileValues(t *testing.T) {
	resetDoseorbEnv(t)

	cfg, err := loadConfig(writeTempConfig(t, `
tick-interval: 300ms
frame-interval: 20ms
show-dose-indicator: false
skin: amber
api-enabled: true
api-addr: 0.0.0.0:4000
host-socket: ~/doseorb.sock
sim-holy-wrench: true
sim-prayer-bonus: -5
`))
	require.NoError(t, err)

	assert.Equal(t, 300*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 20*time.Millisecond, cfg.FrameInterval)
	assert.False(t, cfg.ShowDoseIndicator)
	assert.Equal(t, "amber", cfg.Skin)
	assert.True(t, cfg.APIEnabled)
	assert.Equal(t, "0.0.0.0:4000", cfg.APIAddr)
	assert.True(t, cfg.SimHolyWrench)
	assert.Equal(t, -5, cfg.SimPrayerBonus)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "doseorb.sock"), cfg.HostSocket)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	resetDoseorbEnv(t)
	t.Setenv("DOSEORB_SKIN", "mono")
	t.Setenv("DOSEORB_TICK_INTERVAL", "1s")

	cfg, err := loadConfig(writeTempConfig(t, "skin: amber"))
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Skin)
	assert.Equal(t, time.Second, cfg.TickInterval)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	resetDoseorbEnv(t)

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Skin)
}

func TestLoadConfig_Validation(t *testing.T) {
	resetDoseorbEnv(t)

	tests := []struct {
		name         string
		configYAML   string
		errSubstring string
	}{
		{"zero tick interval", "tick-interval: 0s", "invalid tick-interval"},
		{"negative frame interval", "frame-interval: -1s", "invalid frame-interval"},
		{"zero history", "history-size: 0", "invalid history-size"},
		{"bad api addr", "api-enabled: true\napi-addr: nonsense", "invalid api-addr"},
		{"bad api addr ignored when disabled", "api-addr: nonsense", ""},
		{"zero max prayer", "sim-max-prayer: 0", "invalid sim-max-prayer"},
		{"negative potions", "sim-prayer-potions: -1", "invalid sim-prayer-potions"},
		{"negative restores", "sim-super-restores: -2", "invalid sim-super-restores"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeTempConfig(t, tt.configYAML))
			if tt.errSubstring == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstring)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	resetDoseorbEnv(t)

	require.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")), "missing .env should be ignored")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOSEORB_HISTORY_SIZE=12\n"), 0o644))
	// registered so the cleanup below unsets it again
	t.Setenv("DOSEORB_HISTORY_SIZE", "")
	os.Unsetenv("DOSEORB_HISTORY_SIZE")

	require.NoError(t, loadDotEnv(path))
	cfg, err := loadConfig(writeTempConfig(t, "skin: default"))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.HistorySize, "history size from .env")
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(strings.TrimSpace(content)+"\n"), 0o644))
	return path
}

func resetDoseorbEnv(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, "DOSEORB_") {
			continue
		}
		t.Setenv(key, value)
		require.NoError(t, os.Unsetenv(key))
	}
}
