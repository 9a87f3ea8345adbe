// Package common holds the shared bot-API adapter both platforms use.
// Bale exposes a Telegram-compatible bot API, so one implementation
// serves both; only the endpoint and platform name differ.
package common

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/peyvand/peyvand/internal/bridge"
)

const defaultPollInterval = 2 * time.Second

// BotAdapter drives one bot-API platform: a manual long-poll loop for
// inbound updates plus the outbound send primitives.
type BotAdapter struct {
	bot          *tgbotapi.BotAPI
	platform     string
	logger       *slog.Logger
	pollTimeout  int
	pollInterval time.Duration
	httpClient   *http.Client
}

// Options tune one adapter instance.
type Options struct {
	Platform string
	BotToken string
	// APIEndpoint overrides the Telegram endpoint; empty means the
	// official one.
	APIEndpoint string
	// PollTimeout is the long-poll timeout in seconds.
	PollTimeout int
	// PollInterval is the pause between polls when a poll fails or
	// returns nothing.
	PollInterval time.Duration
}

// New connects to the bot API and discovers the bot's own identity.
func New(log *slog.Logger, opts Options) (*BotAdapter, error) {
	if log == nil {
		log = slog.Default()
	}
	var bot *tgbotapi.BotAPI
	var err error
	if opts.APIEndpoint != "" {
		bot, err = tgbotapi.NewBotAPIWithAPIEndpoint(opts.BotToken, opts.APIEndpoint)
	} else {
		bot, err = tgbotapi.NewBotAPI(opts.BotToken)
	}
	if err != nil {
		return nil, fmt.Errorf("connect %s bot: %w", opts.Platform, err)
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = 30
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	return &BotAdapter{
		bot:          bot,
		platform:     opts.Platform,
		logger:       log.With(slog.String("adapter", opts.Platform)),
		pollTimeout:  opts.PollTimeout,
		pollInterval: opts.PollInterval,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Platform returns the platform name this adapter's events carry.
func (a *BotAdapter) Platform() string { return a.platform }

// SelfID returns the bot's own user id, known since connect.
func (a *BotAdapter) SelfID() int64 { return a.bot.Self.ID }

// Run polls for updates and delivers normalized events until ctx is
// done. Handler errors are logged and the loop continues: one bad
// message must not stall the stream.
func (a *BotAdapter) Run(ctx context.Context, handler bridge.EventHandler) error {
	a.logger.Info("start", slog.String("username", a.bot.Self.UserName))
	offset := 0
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("stop")
			return ctx.Err()
		default:
		}

		updateConfig := tgbotapi.NewUpdate(offset)
		updateConfig.Timeout = a.pollTimeout
		updates, err := a.bot.GetUpdates(updateConfig)
		if err != nil {
			a.logger.Warn("poll failed", slog.Any("error", err))
			if !sleepCtx(ctx, a.pollInterval) {
				return ctx.Err()
			}
			continue
		}
		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			ev, ok := a.normalize(ctx, update)
			if !ok {
				continue
			}
			if err := handler(ctx, ev); err != nil {
				a.logger.Error("handle inbound failed",
					slog.Int64("chat_id", ev.ChatID),
					slog.Any("error", err),
				)
			}
		}
		if len(updates) == 0 {
			if !sleepCtx(ctx, a.pollInterval) {
				return ctx.Err()
			}
		}
	}
}

// SendText sends a plain text message.
func (a *BotAdapter) SendText(_ context.Context, chatID int64, text string) error {
	_, err := a.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// SendPhoto uploads photo bytes with an optional caption.
func (a *BotAdapter) SendPhoto(_ context.Context, chatID int64, data []byte, filename, caption string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	photo.Caption = caption
	_, err := a.bot.Send(photo)
	return err
}

// SendDocument uploads document bytes with an optional caption.
func (a *BotAdapter) SendDocument(_ context.Context, chatID int64, data []byte, filename, caption string) error {
	document := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	document.Caption = caption
	_, err := a.bot.Send(document)
	return err
}

// SendVideo uploads video bytes with an optional caption.
func (a *BotAdapter) SendVideo(_ context.Context, chatID int64, data []byte, filename, caption string) error {
	video := tgbotapi.NewVideo(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	video.Caption = caption
	_, err := a.bot.Send(video)
	return err
}

// normalize maps one raw update to a routable event. Channel posts
// arrive in a different update field than chat messages.
func (a *BotAdapter) normalize(ctx context.Context, update tgbotapi.Update) (bridge.Event, bool) {
	msg := update.Message
	if msg == nil {
		msg = update.ChannelPost
	}
	if msg == nil || msg.Chat == nil {
		return bridge.Event{}, false
	}

	kind := ClassifyChatKind(msg.Chat.Type)
	if kind == "" {
		return bridge.Event{}, false
	}

	ev := bridge.Event{
		Platform:  a.platform,
		ChatID:    msg.Chat.ID,
		ChatKind:  kind,
		ChatTitle: strings.TrimSpace(msg.Chat.Title),
		Text:      strings.TrimSpace(msg.Text),
	}
	if msg.From != nil {
		ev.AuthorID = msg.From.ID
		ev.AuthorName = SenderDisplayName(msg.From)
	}
	ev.Media = a.extractMedia(ctx, msg)
	if ev.Text == "" && ev.Media == nil {
		return bridge.Event{}, false
	}
	return ev, true
}

// extractMedia downloads the one forwardable attachment of a message,
// if any. Download failures degrade to text-only forwarding.
func (a *BotAdapter) extractMedia(ctx context.Context, msg *tgbotapi.Message) *bridge.Media {
	caption := strings.TrimSpace(msg.Caption)
	switch {
	case len(msg.Photo) > 0:
		photo := msg.Photo[len(msg.Photo)-1] // largest size last
		data, err := a.download(ctx, photo.FileID)
		if err != nil {
			a.logger.Warn("photo download failed", slog.Any("error", err))
			return nil
		}
		return &bridge.Media{Type: bridge.MediaPhoto, Bytes: data, Caption: caption}
	case msg.Document != nil:
		data, err := a.download(ctx, msg.Document.FileID)
		if err != nil {
			a.logger.Warn("document download failed", slog.Any("error", err))
			return nil
		}
		return &bridge.Media{
			Type:     bridge.MediaDocument,
			Bytes:    data,
			Filename: strings.TrimSpace(msg.Document.FileName),
			Caption:  caption,
		}
	case msg.Video != nil:
		data, err := a.download(ctx, msg.Video.FileID)
		if err != nil {
			a.logger.Warn("video download failed", slog.Any("error", err))
			return nil
		}
		return &bridge.Media{
			Type:     bridge.MediaVideo,
			Bytes:    data,
			Filename: strings.TrimSpace(msg.Video.FileName),
			Caption:  caption,
		}
	}
	return nil
}

func (a *BotAdapter) download(ctx context.Context, fileID string) ([]byte, error) {
	url, err := a.bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("resolve file url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// ClassifyChatKind maps a bot-API chat type to a routing chat kind.
// Supergroups route like groups; unknown types are not routable.
func ClassifyChatKind(chatType string) string {
	switch strings.ToLower(strings.TrimSpace(chatType)) {
	case "private":
		return "private"
	case "group", "supergroup":
		return "group"
	case "channel":
		return "channel"
	}
	return ""
}

// SenderDisplayName picks a human-readable name for attribution.
func SenderDisplayName(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}
	if name := strings.TrimSpace(user.UserName); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(user.FirstName) + " " + strings.TrimSpace(user.LastName))
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
