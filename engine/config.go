package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is read from the environment. Every field has a default.
type Config struct {
	Addr          string        `env:"SPACE_PALACE_ADDR,default=:8000"`
	ComputerDelay time.Duration `env:"SPACE_PALACE_COMPUTER_DELAY,default=1s"`
	SafetyTimeout time.Duration `env:"SPACE_PALACE_SAFETY_TIMEOUT,default=5s"`
	IdleTimeout   time.Duration `env:"SPACE_PALACE_IDLE_TIMEOUT,default=10m"`
	LogLevel      string        `env:"SPACE_PALACE_LOG_LEVEL,default=info"`
	Seed          int64         `env:"SPACE_PALACE_SEED,default=0"`
}

// DefaultEnvFile is read, when present, before the environment is decoded.
const DefaultEnvFile = ".env"

var ErrInvalidConfig = errors.New("invalid config")

// LoadConfig decodes the environment into a Config.
func LoadConfig() (Config, error) {
	return LoadConfigFile(DefaultEnvFile)
}

// LoadConfigFile adds the variables in envFile to the environment, then
// decodes it. Variables that are already set take precedence over the file.
func LoadConfigFile(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decoding environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the timings make sense together.
func (c Config) Validate() error {
	if c.ComputerDelay < 0 {
		return fmt.Errorf("%w: computer delay %s is negative", ErrInvalidConfig, c.ComputerDelay)
	}
	if c.SafetyTimeout <= c.ComputerDelay {
		return fmt.Errorf("%w: safety timeout %s must exceed computer delay %s",
			ErrInvalidConfig, c.SafetyTimeout, c.ComputerDelay)
	}
	if c.IdleTimeout < 0 {
		return fmt.Errorf("%w: idle timeout %s is negative", ErrInvalidConfig, c.IdleTimeout)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}

// NewLogger builds the process logger at the configured level.
func (c Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
