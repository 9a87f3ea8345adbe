package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != DefaultHTTPAddr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, DefaultHTTPAddr)
	}
	if cfg.Postgres.Port != DefaultPGPort {
		t.Errorf("Postgres.Port = %d, want %d", cfg.Postgres.Port, DefaultPGPort)
	}
	if cfg.Bale.APIEndpoint != DefaultBaleEndpoint {
		t.Errorf("Bale.APIEndpoint = %q, want %q", cfg.Bale.APIEndpoint, DefaultBaleEndpoint)
	}
	if cfg.Bale.PollInterval != DefaultBalePollSeconds {
		t.Errorf("Bale.PollInterval = %d, want %d", cfg.Bale.PollInterval, DefaultBalePollSeconds)
	}
	if cfg.Bridge.MirrorDMs {
		t.Error("Bridge.MirrorDMs should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[log]
level = "debug"
format = "json"

[server]
addr = ":9090"

[postgres]
host = "db.internal"
port = 5433
user = "bridge"
password = "secret"
database = "bridge"

[telegram]
bot_token = "tg-token"

[bale]
bot_token = "bale-token"
poll_interval_seconds = 3

[bridge]
mirror_dms = true
operator_tg_chat_id = 1234
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Postgres.Host != "db.internal" || cfg.Postgres.Port != 5433 {
		t.Errorf("Postgres = %+v", cfg.Postgres)
	}
	if cfg.Postgres.SSLMode != DefaultPGSSLMode {
		t.Errorf("Postgres.SSLMode = %q, want default %q", cfg.Postgres.SSLMode, DefaultPGSSLMode)
	}
	if cfg.Telegram.BotToken != "tg-token" {
		t.Errorf("Telegram.BotToken = %q", cfg.Telegram.BotToken)
	}
	if cfg.Bale.PollInterval != 3 {
		t.Errorf("Bale.PollInterval = %d", cfg.Bale.PollInterval)
	}
	if !cfg.Bridge.MirrorDMs || cfg.Bridge.OperatorTgChatID != 1234 {
		t.Errorf("Bridge = %+v", cfg.Bridge)
	}
}
