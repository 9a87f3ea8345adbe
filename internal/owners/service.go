// Package owners provides tenant (owner) lifecycle and DM target operations.
package owners

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/peyvand/peyvand/internal/db"
	"github.com/peyvand/peyvand/internal/db/sqlc"
)

// Service manages owner rows.
type Service struct {
	queries *sqlc.Queries
	logger  *slog.Logger
}

// NewService creates an owner service.
func NewService(log *slog.Logger, queries *sqlc.Queries) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		queries: queries,
		logger:  log.With(slog.String("service", "owners")),
	}
}

// UpsertByPlatformIdentity finds the owner holding the given platform
// identity, creating one when absent. Safe under concurrent calls for
// the same identity: creation races lose to the partial unique index
// and fall back to the winner's row.
func (s *Service) UpsertByPlatformIdentity(ctx context.Context, platform string, platformUserID int64) (Owner, error) {
	if s.queries == nil {
		return Owner{}, errors.New("owner queries not configured")
	}
	platform = normalizePlatform(platform)

	owner, err := s.GetByPlatformIdentity(ctx, platform, platformUserID)
	if err == nil {
		return owner, nil
	}
	if !errors.Is(err, ErrOwnerNotFound) {
		return Owner{}, err
	}

	params := sqlc.CreateOwnerParams{}
	switch platform {
	case PlatformTelegram:
		params.TgUserID = db.Int8(platformUserID)
	case PlatformBale:
		params.BaleUserID = db.Int8(platformUserID)
	default:
		return Owner{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}

	row, err := s.queries.CreateOwner(ctx, params)
	if err != nil {
		if db.IsUniqueViolation(err) {
			// Lost the create race; the identity now exists.
			return s.GetByPlatformIdentity(ctx, platform, platformUserID)
		}
		return Owner{}, fmt.Errorf("create owner: %w", err)
	}

	s.logger.Info("owner created",
		slog.String("owner_id", db.UUIDToString(row.ID)),
		slog.String("platform", platform),
		slog.Int64("platform_user_id", platformUserID),
	)
	return toOwner(row), nil
}

// GetByPlatformIdentity looks up the owner holding a platform identity.
func (s *Service) GetByPlatformIdentity(ctx context.Context, platform string, platformUserID int64) (Owner, error) {
	if s.queries == nil {
		return Owner{}, errors.New("owner queries not configured")
	}
	var (
		row sqlc.Owner
		err error
	)
	switch normalizePlatform(platform) {
	case PlatformTelegram:
		row, err = s.queries.GetOwnerByTgUserID(ctx, db.Int8(platformUserID))
	case PlatformBale:
		row, err = s.queries.GetOwnerByBaleUserID(ctx, db.Int8(platformUserID))
	default:
		return Owner{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Owner{}, ErrOwnerNotFound
		}
		return Owner{}, err
	}
	return toOwner(row), nil
}

// GetByID returns an owner by row id.
func (s *Service) GetByID(ctx context.Context, ownerID string) (Owner, error) {
	if s.queries == nil {
		return Owner{}, errors.New("owner queries not configured")
	}
	pgID, err := db.ParseUUID(ownerID)
	if err != nil {
		return Owner{}, err
	}
	row, err := s.queries.GetOwnerByID(ctx, pgID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Owner{}, ErrOwnerNotFound
		}
		return Owner{}, err
	}
	return toOwner(row), nil
}

// SetDmTarget points the owner's DM forwarding at a chat on the target
// platform: DMs received on the opposite platform are relayed there.
func (s *Service) SetDmTarget(ctx context.Context, ownerID, targetPlatform string, chatID int64) (Owner, error) {
	return s.updateDmTarget(ctx, ownerID, targetPlatform, db.Int8(chatID))
}

// ClearDmTarget removes the owner's DM target on the given platform.
func (s *Service) ClearDmTarget(ctx context.Context, ownerID, targetPlatform string) (Owner, error) {
	return s.updateDmTarget(ctx, ownerID, targetPlatform, pgtype.Int8{})
}

func (s *Service) updateDmTarget(ctx context.Context, ownerID, targetPlatform string, value pgtype.Int8) (Owner, error) {
	if s.queries == nil {
		return Owner{}, errors.New("owner queries not configured")
	}
	pgID, err := db.ParseUUID(ownerID)
	if err != nil {
		return Owner{}, err
	}
	var row sqlc.Owner
	switch normalizePlatform(targetPlatform) {
	case PlatformBale:
		row, err = s.queries.SetOwnerDmTargetBale(ctx, sqlc.SetOwnerDmTargetBaleParams{ID: pgID, DmTargetBaleChatID: value})
	case PlatformTelegram:
		row, err = s.queries.SetOwnerDmTargetTg(ctx, sqlc.SetOwnerDmTargetTgParams{ID: pgID, DmTargetTgChatID: value})
	default:
		return Owner{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, targetPlatform)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Owner{}, ErrOwnerNotFound
		}
		return Owner{}, fmt.Errorf("update dm target: %w", err)
	}
	return toOwner(row), nil
}

// List returns all owners, oldest first.
func (s *Service) List(ctx context.Context) ([]Owner, error) {
	if s.queries == nil {
		return nil, errors.New("owner queries not configured")
	}
	rows, err := s.queries.ListOwners(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Owner, 0, len(rows))
	for _, row := range rows {
		out = append(out, toOwner(row))
	}
	return out, nil
}

func toOwner(row sqlc.Owner) Owner {
	return Owner{
		ID:                 db.UUIDToString(row.ID),
		TgUserID:           db.Int8ToPtr(row.TgUserID),
		BaleUserID:         db.Int8ToPtr(row.BaleUserID),
		DmTargetBaleChatID: db.Int8ToPtr(row.DmTargetBaleChatID),
		DmTargetTgChatID:   db.Int8ToPtr(row.DmTargetTgChatID),
		CreatedAt:          db.TimeFromPg(row.CreatedAt),
	}
}

func normalizePlatform(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
