// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"remotework/internal/domain/schedule"
)

const envFile = ".env"

type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Team    TeamConfig    `mapstructure:"team"`
	Display DisplayConfig `mapstructure:"display"`
	Events  EventsConfig  `mapstructure:"events"`
}

type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type TeamConfig struct {
	File  string `mapstructure:"file"`
	Watch bool   `mapstructure:"watch"`
}

// DisplayConfig holds the default offset used when a request names none.
type DisplayConfig struct {
	Offset string `mapstructure:"offset"`
}

type EventsConfig struct {
	Workers int `mapstructure:"workers"`
}

var keys = []string{
	"logging.level",
	"logging.development",
	"http.addr",
	"http.read_timeout",
	"http.write_timeout",
	"http.shutdown_timeout",
	"team.file",
	"team.watch",
	"display.offset",
	"events.workers",
}

// Load reads configuration from the environment, seeded from .env when
// present. Variables already set win over .env.
func Load() (Config, error) {
	return load(envFile)
}

func load(dotenv string) (Config, error) {
	if envMap, err := godotenv.Read(dotenv); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 5*time.Second)
	v.SetDefault("http.shutdown_timeout", 5*time.Second)

	v.SetDefault("team.file", "team.json")
	v.SetDefault("team.watch", false)

	v.SetDefault("display.offset", "+00:00")

	v.SetDefault("events.workers", 4)
}

func (c Config) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if c.Team.File == "" {
		return errors.New("team.file is required")
	}
	if c.Events.Workers < 1 {
		return errors.New("events.workers must be positive")
	}
	if _, err := schedule.ParseOffset(c.Display.Offset); err != nil {
		return fmt.Errorf("display.offset: %w", err)
	}
	return nil
}

// DisplayOffset returns the parsed default display offset. Validate has
// already checked it.
func (c Config) DisplayOffset() schedule.Offset {
	off, _ := schedule.ParseOffset(c.Display.Offset)
	return off
}
