// Package telegram is the Telegram side of the bridge.
package telegram

import (
	"log/slog"

	"github.com/peyvand/peyvand/internal/bridge/adapters/common"
	"github.com/peyvand/peyvand/internal/config"
	"github.com/peyvand/peyvand/internal/owners"
)

// New connects to Telegram and returns its adapter.
func New(log *slog.Logger, cfg config.TelegramConfig) (*common.BotAdapter, error) {
	return common.New(log, common.Options{
		Platform:    owners.PlatformTelegram,
		BotToken:    cfg.BotToken,
		PollTimeout: cfg.PollTimeout,
	})
}
