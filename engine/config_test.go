package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	utils "github.com/minaorangina/spacepalace/internal"
)

var configVars = []string{
	"SPACE_PALACE_ADDR",
	"SPACE_PALACE_COMPUTER_DELAY",
	"SPACE_PALACE_SAFETY_TIMEOUT",
	"SPACE_PALACE_IDLE_TIMEOUT",
	"SPACE_PALACE_LOG_LEVEL",
	"SPACE_PALACE_SEED",
}

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()

	for _, k := range configVars {
		old, had := os.LookupEnv(k)
		os.Unsetenv(k)
		k := k
		t.Cleanup(func() {
			if had {
				os.Setenv(k, old)
				return
			}
			os.Unsetenv(k)
		})
	}
	for k, v := range env {
		os.Setenv(k, v)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		withEnv(t, nil)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		utils.AssertDeepEqual(t, cfg, Config{
			Addr:          ":8000",
			ComputerDelay: time.Second,
			SafetyTimeout: 5 * time.Second,
			IdleTimeout:   10 * time.Minute,
			LogLevel:      "info",
			Seed:          0,
		})
	})

	t.Run("reads the environment", func(t *testing.T) {
		withEnv(t, map[string]string{
			"SPACE_PALACE_ADDR":           ":9999",
			"SPACE_PALACE_COMPUTER_DELAY": "250ms",
			"SPACE_PALACE_SAFETY_TIMEOUT": "2s",
			"SPACE_PALACE_IDLE_TIMEOUT":   "1m",
			"SPACE_PALACE_LOG_LEVEL":      "debug",
			"SPACE_PALACE_SEED":           "42",
		})

		cfg, err := LoadConfig()
		require.NoError(t, err)
		utils.AssertEqual(t, cfg.Addr, ":9999")
		utils.AssertEqual(t, cfg.ComputerDelay, 250*time.Millisecond)
		utils.AssertEqual(t, cfg.SafetyTimeout, 2*time.Second)
		utils.AssertEqual(t, cfg.IdleTimeout, time.Minute)
		utils.AssertEqual(t, cfg.Seed, int64(42))
		utils.AssertEqual(t, cfg.NewLogger().GetLevel(), logrus.DebugLevel)
	})

	t.Run("rejects an unparseable duration", func(t *testing.T) {
		withEnv(t, map[string]string{"SPACE_PALACE_COMPUTER_DELAY": "soon"})

		_, err := LoadConfig()
		utils.AssertErrored(t, err)
	})

	t.Run("rejects a safety timeout shorter than the delay", func(t *testing.T) {
		withEnv(t, map[string]string{
			"SPACE_PALACE_COMPUTER_DELAY": "3s",
			"SPACE_PALACE_SAFETY_TIMEOUT": "2s",
		})

		_, err := LoadConfig()
		utils.AssertErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	contents := "SPACE_PALACE_ADDR=:7777\nSPACE_PALACE_SEED=9\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	t.Run("reads variables from the file", func(t *testing.T) {
		withEnv(t, nil)

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		utils.AssertEqual(t, cfg.Addr, ":7777")
		utils.AssertEqual(t, cfg.Seed, int64(9))
		utils.AssertEqual(t, cfg.ComputerDelay, time.Second)
	})

	t.Run("the environment wins over the file", func(t *testing.T) {
		withEnv(t, map[string]string{"SPACE_PALACE_ADDR": ":1234"})

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		utils.AssertEqual(t, cfg.Addr, ":1234")
		utils.AssertEqual(t, cfg.Seed, int64(9))
	})

	t.Run("a missing file is fine", func(t *testing.T) {
		withEnv(t, nil)

		cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.env"))
		require.NoError(t, err)
		utils.AssertEqual(t, cfg.Addr, ":8000")
	})
}

func TestConfigValidate(t *testing.T) {
	valid := Config{ComputerDelay: time.Second, SafetyTimeout: 5 * time.Second, LogLevel: "info"}

	tt := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"negative delay", func(c *Config) { c.ComputerDelay = -time.Second }, false},
		{"equal timings", func(c *Config) { c.SafetyTimeout = c.ComputerDelay }, false},
		{"unknown log level", func(c *Config) { c.LogLevel = "chatty" }, false},
		{"zero delay", func(c *Config) { c.ComputerDelay = 0 }, true},
		{"negative idle timeout", func(c *Config) { c.IdleTimeout = -time.Second }, false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := Config{LogLevel: "warning"}
	utils.AssertEqual(t, cfg.NewLogger().GetLevel(), logrus.WarnLevel)

	cfg.LogLevel = "nonsense"
	utils.AssertEqual(t, cfg.NewLogger().GetLevel(), logrus.InfoLevel)
}
