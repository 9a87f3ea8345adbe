// Package pairings links one Telegram chat with one Bale chat of the same
// kind under a single owner, with an enabled toggle.
package pairings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peyvand/peyvand/internal/db"
	"github.com/peyvand/peyvand/internal/db/sqlc"
)

// Kinds of pairings; each kind lives in its own table.
const (
	KindGroup   = "group"
	KindChannel = "channel"
)

// Platform names used for counterpart lookups.
const (
	PlatformTelegram = "telegram"
	PlatformBale     = "bale"
)

// Errors returned by pairing operations.
var (
	ErrPairingNotFound = errors.New("pairing not found")
	// ErrOwnershipViolation means one of the chats is not registered to
	// the requesting owner with the pairing's kind.
	ErrOwnershipViolation = errors.New("chat not owned by requester or wrong kind")
	ErrDuplicatePairing   = errors.New("pairing already exists")
	ErrUnknownKind        = errors.New("unknown pairing kind")
)

// Pairing is a bridged chat pair. Enabled pairings forward both ways.
type Pairing struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Kind       string    `json:"kind"`
	TgChatID   int64     `json:"tg_chat_id"`
	BaleChatID int64     `json:"bale_chat_id"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
}

// Counterpart is the routing view of a pairing: the chat id on the other
// platform plus the enabled flag.
type Counterpart struct {
	ChatID  int64
	Enabled bool
}

// Service manages pairings.
type Service struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
	logger  *slog.Logger
}

// NewService creates a pairing service.
func NewService(log *slog.Logger, pool *pgxpool.Pool, queries *sqlc.Queries) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		pool:    pool,
		queries: queries,
		logger:  log.With(slog.String("service", "pairings")),
	}
}

// Create pairs the owner's Telegram chat with their Bale chat. Both
// chats must already be registered to the owner with the pairing's
// kind; the ownership check and the insert run in one transaction so a
// concurrent merge or registration cannot slip between them.
func (s *Service) Create(ctx context.Context, ownerID, kind string, tgChatID, baleChatID int64) (Pairing, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != KindGroup && kind != KindChannel {
		return Pairing{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	pgOwnerID, err := db.ParseUUID(ownerID)
	if err != nil {
		return Pairing{}, err
	}
	if s.queries == nil || s.pool == nil {
		return Pairing{}, errors.New("pairing service not configured")
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Pairing{}, fmt.Errorf("begin pairing tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	qtx := s.queries.WithTx(tx)

	for _, check := range []struct {
		platform string
		chatID   int64
	}{
		{PlatformTelegram, tgChatID},
		{PlatformBale, baleChatID},
	} {
		if _, err := qtx.GetOwnedChat(ctx, sqlc.GetOwnedChatParams{
			OwnerID:  pgOwnerID,
			Platform: check.platform,
			Kind:     kind,
			ChatID:   check.chatID,
		}); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return Pairing{}, ErrOwnershipViolation
			}
			return Pairing{}, fmt.Errorf("check chat ownership: %w", err)
		}
	}

	var pairing Pairing
	switch kind {
	case KindGroup:
		row, err := qtx.CreateGroupPairing(ctx, sqlc.CreateGroupPairingParams{
			OwnerID:    pgOwnerID,
			TgChatID:   tgChatID,
			BaleChatID: baleChatID,
		})
		if err != nil {
			return Pairing{}, createErr(err)
		}
		pairing = toGroupPairing(row)
	case KindChannel:
		row, err := qtx.CreateChannelPairing(ctx, sqlc.CreateChannelPairingParams{
			OwnerID:    pgOwnerID,
			TgChatID:   tgChatID,
			BaleChatID: baleChatID,
		})
		if err != nil {
			return Pairing{}, createErr(err)
		}
		pairing = toChannelPairing(row)
	}

	if err := tx.Commit(ctx); err != nil {
		return Pairing{}, fmt.Errorf("commit pairing tx: %w", err)
	}

	s.logger.Info("pairing created",
		slog.String("owner_id", ownerID),
		slog.String("kind", kind),
		slog.Int64("tg_chat_id", tgChatID),
		slog.Int64("bale_chat_id", baleChatID),
	)
	return pairing, nil
}

// FindCounterpart resolves the opposite-platform chat for an inbound
// (platform, chat id, kind). ErrPairingNotFound when the chat is not
// paired; callers treat that as a routine drop, not a failure.
func (s *Service) FindCounterpart(ctx context.Context, platform, kind string, chatID int64) (Counterpart, error) {
	if s.queries == nil {
		return Counterpart{}, errors.New("pairing service not configured")
	}
	platform = strings.ToLower(strings.TrimSpace(platform))
	kind = strings.ToLower(strings.TrimSpace(kind))

	switch kind {
	case KindGroup:
		switch platform {
		case PlatformTelegram:
			row, err := s.queries.FindGroupPairingByTgChat(ctx, chatID)
			if err != nil {
				return Counterpart{}, findErr(err)
			}
			return Counterpart{ChatID: row.BaleChatID, Enabled: row.Enabled}, nil
		case PlatformBale:
			row, err := s.queries.FindGroupPairingByBaleChat(ctx, chatID)
			if err != nil {
				return Counterpart{}, findErr(err)
			}
			return Counterpart{ChatID: row.TgChatID, Enabled: row.Enabled}, nil
		}
	case KindChannel:
		switch platform {
		case PlatformTelegram:
			row, err := s.queries.FindChannelPairingByTgChat(ctx, chatID)
			if err != nil {
				return Counterpart{}, findErr(err)
			}
			return Counterpart{ChatID: row.BaleChatID, Enabled: row.Enabled}, nil
		case PlatformBale:
			row, err := s.queries.FindChannelPairingByBaleChat(ctx, chatID)
			if err != nil {
				return Counterpart{}, findErr(err)
			}
			return Counterpart{ChatID: row.TgChatID, Enabled: row.Enabled}, nil
		}
	}
	return Counterpart{}, fmt.Errorf("%w: %q/%q", ErrUnknownKind, kind, platform)
}

// SetEnabled toggles a pairing. Pairings are never hard-deleted in
// normal operation.
func (s *Service) SetEnabled(ctx context.Context, pairingID, kind string, enabled bool) (Pairing, error) {
	if s.queries == nil {
		return Pairing{}, errors.New("pairing service not configured")
	}
	pgID, err := db.ParseUUID(pairingID)
	if err != nil {
		return Pairing{}, err
	}
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindGroup:
		row, err := s.queries.SetGroupPairingEnabled(ctx, sqlc.SetGroupPairingEnabledParams{ID: pgID, Enabled: enabled})
		if err != nil {
			return Pairing{}, findErr(err)
		}
		return toGroupPairing(row), nil
	case KindChannel:
		row, err := s.queries.SetChannelPairingEnabled(ctx, sqlc.SetChannelPairingEnabledParams{ID: pgID, Enabled: enabled})
		if err != nil {
			return Pairing{}, findErr(err)
		}
		return toChannelPairing(row), nil
	}
	return Pairing{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// ListOwned returns the owner's pairings of both kinds.
func (s *Service) ListOwned(ctx context.Context, ownerID string) ([]Pairing, error) {
	if s.queries == nil {
		return nil, errors.New("pairing service not configured")
	}
	pgOwnerID, err := db.ParseUUID(ownerID)
	if err != nil {
		return nil, err
	}
	groups, err := s.queries.ListGroupPairingsByOwner(ctx, pgOwnerID)
	if err != nil {
		return nil, err
	}
	channels, err := s.queries.ListChannelPairingsByOwner(ctx, pgOwnerID)
	if err != nil {
		return nil, err
	}
	out := make([]Pairing, 0, len(groups)+len(channels))
	for _, row := range groups {
		out = append(out, toGroupPairing(row))
	}
	for _, row := range channels {
		out = append(out, toChannelPairing(row))
	}
	return out, nil
}

func createErr(err error) error {
	if db.IsUniqueViolation(err) {
		return ErrDuplicatePairing
	}
	return fmt.Errorf("create pairing: %w", err)
}

func findErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrPairingNotFound
	}
	return err
}

func toGroupPairing(row sqlc.GroupPairing) Pairing {
	return Pairing{
		ID:         db.UUIDToString(row.ID),
		OwnerID:    db.UUIDToString(row.OwnerID),
		Kind:       KindGroup,
		TgChatID:   row.TgChatID,
		BaleChatID: row.BaleChatID,
		Enabled:    row.Enabled,
		CreatedAt:  db.TimeFromPg(row.CreatedAt),
	}
}

func toChannelPairing(row sqlc.ChannelPairing) Pairing {
	return Pairing{
		ID:         db.UUIDToString(row.ID),
		OwnerID:    db.UUIDToString(row.OwnerID),
		Kind:       KindChannel,
		TgChatID:   row.TgChatID,
		BaleChatID: row.BaleChatID,
		Enabled:    row.Enabled,
		CreatedAt:  db.TimeFromPg(row.CreatedAt),
	}
}
