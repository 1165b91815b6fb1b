package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, uint16(DefaultVendorID), cfg.Device.VendorID)
	assert.Equal(t, uint16(DefaultProductID), cfg.Device.ProductID)
	assert.Equal(t, 16*time.Millisecond, cfg.Loop.Interval)
	assert.Equal(t, 300*time.Millisecond, cfg.Repeat.InitialDelay)
	assert.Equal(t, 70*time.Millisecond, cfg.Repeat.Interval)
	assert.InDelta(t, 0.25, cfg.Mapping.StickDeadzone, 1e-9)
	assert.Equal(t, uint8(50), cfg.Mapping.TriggerThreshold)
	assert.InDelta(t, 0.12, cfg.Mapping.PointerDeadzone, 1e-9)
	assert.InDelta(t, 14.0, cfg.Mapping.PointerSensitivity, 1e-9)
	assert.Equal(t, 150*time.Millisecond, cfg.Keyboard.MoveDelay)
	assert.InDelta(t, 0.35, cfg.Keyboard.Deadzone, 1e-9)
	assert.True(t, cfg.Display.Terminal)
	assert.False(t, cfg.Sink.DryRun)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadFlags(t *testing.T) {
	chdirTemp(t)
	cfg, err := Load([]string{"--dry-run", "--trigger-threshold=80", "--interval=8ms", "--http="})
	require.NoError(t, err)

	assert.True(t, cfg.Sink.DryRun)
	assert.Equal(t, uint8(80), cfg.Mapping.TriggerThreshold)
	assert.Equal(t, 8*time.Millisecond, cfg.Loop.Interval)
	assert.Empty(t, cfg.HTTP.Addr)
}

func TestLoadEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PADMAPPER_MAPPING_POINTER_SENSITIVITY", "20")
	t.Setenv("PADMAPPER_SINK_DRY_RUN", "true")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, cfg.Mapping.PointerSensitivity, 1e-9)
	assert.True(t, cfg.Sink.DryRun)
}

func TestLoadConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	content := "keyboard:\n  move_delay: 200ms\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "padmapper.yaml"), []byte(content), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, cfg.Keyboard.MoveDelay)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "padmapper.yaml", filepath.Base(cfg.ConfigFile))
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdirTemp(t)
	_, err := Load([]string{"--config", "nope.yaml"})
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdirTemp(t)
	_, err := Load([]string{"--stick-deadzone=1.5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping.stick_deadzone")

	_, err = Load([]string{"--interval=0s"})
	assert.ErrorContains(t, err, "loop.interval")
}

func TestLoadHelp(t *testing.T) {
	chdirTemp(t)
	_, err := Load([]string{"--help"})
	assert.ErrorIs(t, err, ErrHelp)
	assert.Contains(t, Usage(), "--dry-run")
}
