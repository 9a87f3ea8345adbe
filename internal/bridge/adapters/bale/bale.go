// Package bale is the Bale side of the bridge. Bale serves a
// Telegram-compatible bot API at its own endpoint, so the shared
// adapter does all the work.
package bale

import (
	"log/slog"
	"time"

	"github.com/peyvand/peyvand/internal/bridge/adapters/common"
	"github.com/peyvand/peyvand/internal/config"
	"github.com/peyvand/peyvand/internal/owners"
)

// New connects to Bale and returns its adapter.
func New(log *slog.Logger, cfg config.BaleConfig) (*common.BotAdapter, error) {
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = config.DefaultBaleEndpoint
	}
	return common.New(log, common.Options{
		Platform:     owners.PlatformBale,
		BotToken:     cfg.BotToken,
		APIEndpoint:  endpoint,
		PollInterval: time.Duration(cfg.PollInterval) * time.Second,
	})
}
