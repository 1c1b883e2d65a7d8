package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"majsoul-tracker/internal/constants"
	"majsoul-tracker/internal/domain"
)

type Config struct {
	ServerPort      string
	LogLevel        string
	ThreePlayerBase string
	FourPlayerBase  string
	MaxHistoryPages int
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "3000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ThreePlayerBase: getEnv("PL3_API_BASE", "https://5-data.amae-koromo.com/api/v2/pl3"),
		FourPlayerBase:  getEnv("PL4_API_BASE", "https://5-data.amae-koromo.com/api/v2/pl4"),
		MaxHistoryPages: constants.DefaultMaxHistoryPages,
	}

	if v := os.Getenv("MAX_HISTORY_PAGES"); v != "" {
		pages, err := strconv.Atoi(v)
		if err != nil || pages < 1 {
			return nil, fmt.Errorf("invalid MAX_HISTORY_PAGES: %q", v)
		}
		cfg.MaxHistoryPages = pages
	}

	logger.Info().
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("pl3_api_base", cfg.ThreePlayerBase).
		Str("pl4_api_base", cfg.FourPlayerBase).
		Int("max_history_pages", cfg.MaxHistoryPages).
		Msg("configuration loaded")

	return cfg, nil
}

// APIBase returns the upstream origin for the given rule.
func (c *Config) APIBase(rule domain.GameRule) string {
	if rule == domain.FourPlayer {
		return c.FourPlayerBase
	}
	return c.ThreePlayerBase
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
