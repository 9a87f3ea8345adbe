// Package config loads and exposes application configuration (TOML).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Default configuration values used when a field is missing in TOML.
const (
	DefaultConfigPath       = "config.toml"
	DefaultHTTPAddr         = ":8080"
	DefaultPGHost           = "127.0.0.1"
	DefaultPGPort           = 5432
	DefaultPGUser           = "postgres"
	DefaultPGDatabase       = "peyvand"
	DefaultPGSSLMode        = "disable"
	DefaultBaleEndpoint     = "https://tapi.bale.ai/bot%s/%s"
	DefaultBalePollSeconds  = 1
	DefaultTelegramPollSecs = 30
)

// Config is the root application configuration loaded from TOML.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Server   ServerConfig   `toml:"server"`
	Postgres PostgresConfig `toml:"postgres"`
	Telegram TelegramConfig `toml:"telegram"`
	Bale     BaleConfig     `toml:"bale"`
	Bridge   BridgeConfig   `toml:"bridge"`
}

// LogConfig holds logging level and format (e.g. level=info, format=text).
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ServerConfig holds the admin HTTP server listen address.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// PostgresConfig holds PostgreSQL connection parameters.
type PostgresConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	SSLMode  string `toml:"sslmode"`
}

// TelegramConfig holds the Telegram bot token and long-poll timeout.
type TelegramConfig struct {
	BotToken    string `toml:"bot_token"`
	PollTimeout int    `toml:"poll_timeout_seconds"`
}

// BaleConfig holds the Bale bot token, API endpoint, and poll interval.
// Bale speaks the Telegram Bot API dialect, so the endpoint is a
// tgbotapi-style format string.
type BaleConfig struct {
	BotToken     string `toml:"bot_token"`
	APIEndpoint  string `toml:"api_endpoint"`
	PollInterval int    `toml:"poll_interval_seconds"`
}

// BridgeConfig holds bridge behavior toggles: the optional operator DM
// mirror and its per-platform target chats.
type BridgeConfig struct {
	MirrorDMs          bool  `toml:"mirror_dms"`
	OperatorTgChatID   int64 `toml:"operator_tg_chat_id"`
	OperatorBaleChatID int64 `toml:"operator_bale_chat_id"`
}

// Load reads and parses the TOML config file at path and applies default values for missing fields.
func Load(path string) (Config, error) {
	cfg := Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr: DefaultHTTPAddr,
		},
		Postgres: PostgresConfig{
			Host:     DefaultPGHost,
			Port:     DefaultPGPort,
			User:     DefaultPGUser,
			Database: DefaultPGDatabase,
			SSLMode:  DefaultPGSSLMode,
		},
		Telegram: TelegramConfig{
			PollTimeout: DefaultTelegramPollSecs,
		},
		Bale: BaleConfig{
			APIEndpoint:  DefaultBaleEndpoint,
			PollInterval: DefaultBalePollSeconds,
		},
	}

	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
