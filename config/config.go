package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port           string
	DataDir        string
	PageSize       int
	TopN           int
	LogLevel       string
	ReloadSchedule string
	SessionTTL     time.Duration
	SessionCookie  string
	PGURL          string
	PGTable        string
}

// Defaults registers the default value of every setting on v
func Defaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("data_dir", "data")
	v.SetDefault("page_size", 50)
	v.SetDefault("top_n", 10)
	v.SetDefault("log_level", "info")
	v.SetDefault("reload_schedule", "@every 1m")
	v.SetDefault("session_ttl", "24h")
	v.SetDefault("session_cookie", "fundsdash_session")
	v.SetDefault("pg_url", "")
	v.SetDefault("pg_table", "funds")
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory.
func Load() (*Config, error) {
	v := viper.New()
	Defaults(v)
	return LoadWith(v)
}

// LoadWith is Load for a viper instance that may already have flags bound.
func LoadWith(v *viper.Viper) (*Config, error) {
	_ = godotenv.Load()
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds and validates a Config from v. Keys are lower-case and map to
// upper-case environment variables (data_dir -> DATA_DIR).
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:           v.GetString("port"),
		DataDir:        v.GetString("data_dir"),
		PageSize:       v.GetInt("page_size"),
		TopN:           v.GetInt("top_n"),
		LogLevel:       v.GetString("log_level"),
		ReloadSchedule: v.GetString("reload_schedule"),
		SessionTTL:     v.GetDuration("session_ttl"),
		SessionCookie:  v.GetString("session_cookie"),
		PGURL:          v.GetString("pg_url"),
		PGTable:        v.GetString("pg_table"),
	}

	if cfg.DataDir == "" {
		return nil, fmt.Errorf("DATA_DIR must not be empty")
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	if cfg.TopN <= 0 {
		return nil, fmt.Errorf("TOP_N must be positive, got %d", cfg.TopN)
	}
	if cfg.PGURL != "" && cfg.PGTable == "" {
		return nil, fmt.Errorf("PG_TABLE is required when PG_URL is set")
	}
	return cfg, nil
}
