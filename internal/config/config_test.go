package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.False(t, cfg.OpenAtStartup)
	assert.NotEmpty(t, cfg.Device.ID)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "mapping.flexi"), cfg.MappingFile)
	assert.Equal(t, 50, cfg.RefreshIntervalMs)
	assert.Equal(t, 1.0, cfg.Knob.Step)
	assert.Equal(t, 0.5, cfg.Knob.Sensitivity)
	assert.Equal(t, path, cfg.Path())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "loading must not create the file")
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default(path)
	cfg.OpenAtStartup = true
	cfg.Device.InPort = "nanoKONTROL2 SLIDER/KNOB"
	cfg.Device.OutPort = "nanoKONTROL2 CTRL"
	cfg.WatchMappingFile = true
	cfg.Knob.Slow = true
	require.NoError(t, cfg.Save())

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "device:\n  in_port: Launch Control XL\nrefresh_interval_ms: -3\nknob:\n  slow: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "Launch Control XL", cfg.Device.InPort)
	assert.NotEmpty(t, cfg.Device.ID)
	assert.Equal(t, 50, cfg.RefreshIntervalMs)
	assert.True(t, cfg.Knob.Slow)
	assert.Equal(t, 1.0, cfg.Knob.Step)
	assert.NotEmpty(t, cfg.MappingFile)
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("device: [oops\n"), 0644))

	_, err := LoadFrom(path)
	assert.ErrorContains(t, err, path)
}
