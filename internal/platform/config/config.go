package config

import (
	"os"
	"strconv"

	"github.com/alexanderramin/dutylog/internal/ingest"
)

// Config captures process-level configuration for the duty log service.
type Config struct {
	Addr       string
	DBPath     string
	APIBase    string
	Token      string
	ChannelID  string
	FetchLimit int
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:       os.Getenv("DUTYLOG_ADDR"),
		DBPath:     os.Getenv("DUTYLOG_DB"),
		APIBase:    os.Getenv("DUTYLOG_API_BASE"),
		Token:      os.Getenv("DUTYLOG_TOKEN"),
		ChannelID:  os.Getenv("DUTYLOG_CHANNEL"),
		FetchLimit: ingest.DefaultFetchLimit,
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.APIBase == "" {
		cfg.APIBase = "https://discord.com/api/v10"
	}
	if v := os.Getenv("DUTYLOG_FETCH_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchLimit = n
		}
	}
	return cfg
}

// HasSource reports whether enough is configured to reach the message source.
func (c Config) HasSource() bool {
	return c.Token != "" && c.ChannelID != ""
}
