package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lost-woods/handodds/src/config"
	"github.com/lost-woods/handodds/src/rng"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "777", cfg.Port)
	assert.Equal(t, rng.SourceCrypto, cfg.EntropySource)
	assert.Equal(t, 10*time.Second, cfg.HealthInterval)
	assert.Equal(t, 200000, cfg.MaxSimulationTrials)
	assert.Equal(t, 200, cfg.MaxDeckSize)
	assert.Equal(t, 15, cfg.MaxHandSize)
	assert.Equal(t, 8, cfg.MaxCategories)
	assert.Equal(t, 16, cfg.MaxRules)
}

func TestLoad_EnvAndDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SERIAL_DEVICE_NAME=/dev/ttyACM0\nSERIAL_READ_TIMEOUT=250\n"), 0o600))

	t.Setenv("PORT", "8080")
	t.Setenv("ENTROPY_SOURCE", rng.SourceSerial)
	t.Setenv("RNG_HEALTH_INTERVAL", "2s")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("SERIAL_DEVICE_NAME")
		os.Unsetenv("SERIAL_READ_TIMEOUT")
	})

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.HealthInterval)

	src := cfg.Source()
	assert.Equal(t, rng.SourceSerial, src.Kind)
	assert.Equal(t, "/dev/ttyACM0", src.Device)
	assert.Equal(t, 250*time.Millisecond, src.ReadTimeout)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("MAX_SIMULATION_TRIALS", "0")
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)

	t.Setenv("MAX_SIMULATION_TRIALS", "lots")
	_, err = config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)

	t.Setenv("MAX_SIMULATION_TRIALS", "1000")
	t.Setenv("MAX_DECK_SIZE", "5000")
	_, err = config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, "MAX_DECK_SIZE")

	t.Setenv("MAX_DECK_SIZE", "60")
	t.Setenv("MAX_CATEGORIES", "0")
	_, err = config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, "MAX_CATEGORIES")
}
