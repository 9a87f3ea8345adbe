// Package chats provides the verified chat registry for linked groups and channels.
package chats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peyvand/peyvand/internal/db"
	"github.com/peyvand/peyvand/internal/db/sqlc"
)

// Chat kinds. Only groups and channels are registered; KindPrivate
// exists for routing inbound DMs, which never become Chat rows.
const (
	KindGroup   = "group"
	KindChannel = "channel"
	KindPrivate = "private"
)

// Errors returned by chat operations.
var (
	ErrChatNotFound = errors.New("chat not found")
	// ErrChatClaimed means the (platform, chat id) pair is already
	// registered to a different owner. Registration never reassigns.
	ErrChatClaimed = errors.New("chat already registered to another owner")
)

// Chat is a verified group or channel registered to one owner.
type Chat struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Platform  string    `json:"platform"`
	Kind      string    `json:"kind"`
	ChatID    int64     `json:"chat_id"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Service manages the chat registry.
type Service struct {
	queries *sqlc.Queries
	logger  *slog.Logger
}

// NewService creates a chat registry service.
func NewService(log *slog.Logger, queries *sqlc.Queries) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		queries: queries,
		logger:  log.With(slog.String("service", "chats")),
	}
}

// Register records a verified chat for the owner. Re-registering the
// same (platform, chat id) under the same owner is a no-op returning the
// existing row; under a different owner it fails with ErrChatClaimed.
func (s *Service) Register(ctx context.Context, ownerID, platform, kind string, chatID int64, title string) (Chat, error) {
	if s.queries == nil {
		return Chat{}, errors.New("chat queries not configured")
	}
	pgOwnerID, err := db.ParseUUID(ownerID)
	if err != nil {
		return Chat{}, err
	}
	platform = strings.ToLower(strings.TrimSpace(platform))
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != KindGroup && kind != KindChannel {
		return Chat{}, fmt.Errorf("invalid chat kind %q", kind)
	}

	existing, err := s.queries.GetChatByPlatformChatID(ctx, sqlc.GetChatByPlatformChatIDParams{
		Platform: platform,
		ChatID:   chatID,
	})
	if err == nil {
		if db.UUIDToString(existing.OwnerID) != ownerID {
			return Chat{}, ErrChatClaimed
		}
		return toChat(existing), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Chat{}, err
	}

	row, err := s.queries.CreateChat(ctx, sqlc.CreateChatParams{
		OwnerID:  pgOwnerID,
		Platform: platform,
		Kind:     kind,
		ChatID:   chatID,
		Title:    strings.TrimSpace(title),
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			// Lost an insert race on (platform, chat_id); re-read and
			// apply the same ownership rule.
			winner, getErr := s.queries.GetChatByPlatformChatID(ctx, sqlc.GetChatByPlatformChatIDParams{
				Platform: platform,
				ChatID:   chatID,
			})
			if getErr != nil {
				return Chat{}, getErr
			}
			if db.UUIDToString(winner.OwnerID) != ownerID {
				return Chat{}, ErrChatClaimed
			}
			return toChat(winner), nil
		}
		return Chat{}, fmt.Errorf("register chat: %w", err)
	}

	s.logger.Info("chat registered",
		slog.String("owner_id", ownerID),
		slog.String("platform", platform),
		slog.String("kind", kind),
		slog.Int64("chat_id", chatID),
	)
	return toChat(row), nil
}

// GetOwned returns the owner's chat matching platform, kind, and chat id.
func (s *Service) GetOwned(ctx context.Context, ownerID, platform, kind string, chatID int64) (Chat, error) {
	if s.queries == nil {
		return Chat{}, errors.New("chat queries not configured")
	}
	pgOwnerID, err := db.ParseUUID(ownerID)
	if err != nil {
		return Chat{}, err
	}
	row, err := s.queries.GetOwnedChat(ctx, sqlc.GetOwnedChatParams{
		OwnerID:  pgOwnerID,
		Platform: strings.ToLower(strings.TrimSpace(platform)),
		Kind:     strings.ToLower(strings.TrimSpace(kind)),
		ChatID:   chatID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Chat{}, ErrChatNotFound
		}
		return Chat{}, err
	}
	return toChat(row), nil
}

// ListOwned returns the owner's chats, optionally filtered by platform
// and/or kind (empty string means no filter).
func (s *Service) ListOwned(ctx context.Context, ownerID, platformFilter, kindFilter string) ([]Chat, error) {
	if s.queries == nil {
		return nil, errors.New("chat queries not configured")
	}
	pgOwnerID, err := db.ParseUUID(ownerID)
	if err != nil {
		return nil, err
	}
	rows, err := s.queries.ListOwnerChats(ctx, sqlc.ListOwnerChatsParams{
		OwnerID:  pgOwnerID,
		Platform: strings.ToLower(strings.TrimSpace(platformFilter)),
		Kind:     strings.ToLower(strings.TrimSpace(kindFilter)),
	})
	if err != nil {
		return nil, err
	}
	out := make([]Chat, 0, len(rows))
	for _, row := range rows {
		out = append(out, toChat(row))
	}
	return out, nil
}

func toChat(row sqlc.Chat) Chat {
	return Chat{
		ID:        db.UUIDToString(row.ID),
		OwnerID:   db.UUIDToString(row.OwnerID),
		Platform:  row.Platform,
		Kind:      row.Kind,
		ChatID:    row.ChatID,
		Title:     row.Title,
		CreatedAt: db.TimeFromPg(row.CreatedAt),
	}
}
