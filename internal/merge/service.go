// Package merge unifies two platform identities belonging to the same
// human into a single owner record.
package merge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peyvand/peyvand/internal/db"
	"github.com/peyvand/peyvand/internal/db/sqlc"
	"github.com/peyvand/peyvand/internal/owners"
)

// ErrIdentityConflict means one of the owner rows already carries a
// different value for the identity being merged in. Surfaced to the
// user, never auto-resolved.
var ErrIdentityConflict = errors.New("platform identity already claimed by another owner")

// SurvivorPolicy picks which of two distinct owner rows survives a
// merge. The other row is absorbed and deleted.
type SurvivorPolicy func(tgSide, baleSide sqlc.Owner) (survivor, loser sqlc.Owner)

// BaleSideSurvives keeps the owner row keyed by the Bale identity. The
// Bale id is the one being pasted into the setup flow, so its row is
// the freshest point of contact.
func BaleSideSurvives(tgSide, baleSide sqlc.Owner) (sqlc.Owner, sqlc.Owner) {
	return baleSide, tgSide
}

// TelegramSideSurvives keeps the owner row keyed by the Telegram identity.
func TelegramSideSurvives(tgSide, baleSide sqlc.Owner) (sqlc.Owner, sqlc.Owner) {
	return tgSide, baleSide
}

// mergeCase tags the five-way branch over the two identity lookups.
type mergeCase int

const (
	caseFresh mergeCase = iota
	caseTgOnly
	caseBaleOnly
	caseSameOwner
	caseDistinctOwners
)

// Service performs identity merges.
type Service struct {
	pool     *pgxpool.Pool
	queries  *sqlc.Queries
	logger   *slog.Logger
	survivor SurvivorPolicy
}

// NewService creates a merge service with the default survivor policy.
func NewService(log *slog.Logger, pool *pgxpool.Pool, queries *sqlc.Queries) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		pool:     pool,
		queries:  queries,
		logger:   log.With(slog.String("service", "merge")),
		survivor: BaleSideSurvives,
	}
}

// WithSurvivorPolicy overrides which side survives a true merge.
func (s *Service) WithSurvivorPolicy(policy SurvivorPolicy) *Service {
	if policy != nil {
		s.survivor = policy
	}
	return s
}

// Merge links a Telegram identity and a Bale identity to one owner.
// All five cases run inside a single transaction; both identity rows
// are locked Telegram-side first so concurrent merges over overlapping
// identities serialize instead of corrupting the uniqueness constraints.
// Idempotent: repeating the same pair returns the same owner.
func (s *Service) Merge(ctx context.Context, tgUserID, baleUserID int64) (owners.Owner, error) {
	if s.queries == nil || s.pool == nil {
		return owners.Owner{}, errors.New("merge service not configured")
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return owners.Owner{}, fmt.Errorf("begin merge tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	qtx := s.queries.WithTx(tx)

	tgSide, tgFound, err := lockOwner(ctx, qtx.GetOwnerByTgUserIDForUpdate, tgUserID)
	if err != nil {
		return owners.Owner{}, fmt.Errorf("lock telegram-side owner: %w", err)
	}
	baleSide, baleFound, err := lockOwner(ctx, qtx.GetOwnerByBaleUserIDForUpdate, baleUserID)
	if err != nil {
		return owners.Owner{}, fmt.Errorf("lock bale-side owner: %w", err)
	}

	var merged sqlc.Owner
	switch classify(tgSide, tgFound, baleSide, baleFound) {
	case caseFresh:
		merged, err = qtx.CreateOwner(ctx, sqlc.CreateOwnerParams{
			TgUserID:   db.Int8(tgUserID),
			BaleUserID: db.Int8(baleUserID),
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return owners.Owner{}, ErrIdentityConflict
			}
			return owners.Owner{}, fmt.Errorf("create merged owner: %w", err)
		}
	case caseTgOnly:
		if tgSide.BaleUserID.Valid && tgSide.BaleUserID.Int64 != baleUserID {
			return owners.Owner{}, ErrIdentityConflict
		}
		merged, err = qtx.SetOwnerBaleUserID(ctx, sqlc.SetOwnerBaleUserIDParams{
			ID:         tgSide.ID,
			BaleUserID: db.Int8(baleUserID),
		})
		if err != nil {
			return owners.Owner{}, fmt.Errorf("set bale identity: %w", err)
		}
	case caseBaleOnly:
		if baleSide.TgUserID.Valid && baleSide.TgUserID.Int64 != tgUserID {
			return owners.Owner{}, ErrIdentityConflict
		}
		merged, err = qtx.SetOwnerTgUserID(ctx, sqlc.SetOwnerTgUserIDParams{
			ID:       baleSide.ID,
			TgUserID: db.Int8(tgUserID),
		})
		if err != nil {
			return owners.Owner{}, fmt.Errorf("set telegram identity: %w", err)
		}
	case caseSameOwner:
		merged = tgSide
	case caseDistinctOwners:
		merged, err = s.absorb(ctx, qtx, tgSide, baleSide)
		if err != nil {
			return owners.Owner{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return owners.Owner{}, fmt.Errorf("commit merge tx: %w", err)
	}

	s.logger.Info("identities merged",
		slog.Int64("tg_user_id", tgUserID),
		slog.Int64("bale_user_id", baleUserID),
		slog.String("owner_id", db.UUIDToString(merged.ID)),
	)
	return toOwner(merged), nil
}

// absorb executes the true-merge case: every row the loser owns moves
// to the survivor, DM targets the survivor lacks are inherited, the
// loser row is deleted, and only then is the freed identity written
// onto the survivor (the partial unique indexes forbid doing it
// earlier).
func (s *Service) absorb(ctx context.Context, qtx *sqlc.Queries, tgSide, baleSide sqlc.Owner) (sqlc.Owner, error) {
	if baleSide.TgUserID.Valid && baleSide.TgUserID.Int64 != tgSide.TgUserID.Int64 {
		return sqlc.Owner{}, ErrIdentityConflict
	}
	if tgSide.BaleUserID.Valid && tgSide.BaleUserID.Int64 != baleSide.BaleUserID.Int64 {
		return sqlc.Owner{}, ErrIdentityConflict
	}

	survivor, loser := s.survivor(tgSide, baleSide)
	reparent := sqlc.ReparentChatsParams{OwnerID: survivor.ID, OwnerID_2: loser.ID}
	if _, err := qtx.ReparentChats(ctx, reparent); err != nil {
		return sqlc.Owner{}, fmt.Errorf("reparent chats: %w", err)
	}
	if _, err := qtx.ReparentGroupPairings(ctx, sqlc.ReparentGroupPairingsParams(reparent)); err != nil {
		return sqlc.Owner{}, fmt.Errorf("reparent group pairings: %w", err)
	}
	if _, err := qtx.ReparentChannelPairings(ctx, sqlc.ReparentChannelPairingsParams(reparent)); err != nil {
		return sqlc.Owner{}, fmt.Errorf("reparent channel pairings: %w", err)
	}
	if _, err := qtx.ReparentVerifyTokens(ctx, sqlc.ReparentVerifyTokensParams(reparent)); err != nil {
		return sqlc.Owner{}, fmt.Errorf("reparent verify tokens: %w", err)
	}
	if _, err := qtx.ReparentDmVerifyTokens(ctx, sqlc.ReparentDmVerifyTokensParams(reparent)); err != nil {
		return sqlc.Owner{}, fmt.Errorf("reparent dm verify tokens: %w", err)
	}

	if !survivor.DmTargetBaleChatID.Valid && loser.DmTargetBaleChatID.Valid {
		updated, err := qtx.SetOwnerDmTargetBale(ctx, sqlc.SetOwnerDmTargetBaleParams{
			ID:                 survivor.ID,
			DmTargetBaleChatID: loser.DmTargetBaleChatID,
		})
		if err != nil {
			return sqlc.Owner{}, fmt.Errorf("inherit bale dm target: %w", err)
		}
		survivor = updated
	}
	if !survivor.DmTargetTgChatID.Valid && loser.DmTargetTgChatID.Valid {
		updated, err := qtx.SetOwnerDmTargetTg(ctx, sqlc.SetOwnerDmTargetTgParams{
			ID:               survivor.ID,
			DmTargetTgChatID: loser.DmTargetTgChatID,
		})
		if err != nil {
			return sqlc.Owner{}, fmt.Errorf("inherit telegram dm target: %w", err)
		}
		survivor = updated
	}

	if err := qtx.DeleteOwner(ctx, loser.ID); err != nil {
		return sqlc.Owner{}, fmt.Errorf("delete absorbed owner: %w", err)
	}

	if !survivor.TgUserID.Valid {
		updated, err := qtx.SetOwnerTgUserID(ctx, sqlc.SetOwnerTgUserIDParams{
			ID:       survivor.ID,
			TgUserID: loser.TgUserID,
		})
		if err != nil {
			return sqlc.Owner{}, fmt.Errorf("claim telegram identity: %w", err)
		}
		survivor = updated
	}
	if !survivor.BaleUserID.Valid {
		updated, err := qtx.SetOwnerBaleUserID(ctx, sqlc.SetOwnerBaleUserIDParams{
			ID:         survivor.ID,
			BaleUserID: loser.BaleUserID,
		})
		if err != nil {
			return sqlc.Owner{}, fmt.Errorf("claim bale identity: %w", err)
		}
		survivor = updated
	}
	return survivor, nil
}

func classify(tgSide sqlc.Owner, tgFound bool, baleSide sqlc.Owner, baleFound bool) mergeCase {
	switch {
	case !tgFound && !baleFound:
		return caseFresh
	case tgFound && !baleFound:
		return caseTgOnly
	case !tgFound && baleFound:
		return caseBaleOnly
	case tgSide.ID == baleSide.ID:
		return caseSameOwner
	default:
		return caseDistinctOwners
	}
}

func lockOwner(ctx context.Context, get func(context.Context, pgtype.Int8) (sqlc.Owner, error), userID int64) (sqlc.Owner, bool, error) {
	row, err := get(ctx, db.Int8(userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sqlc.Owner{}, false, nil
		}
		return sqlc.Owner{}, false, err
	}
	return row, true, nil
}

func toOwner(row sqlc.Owner) owners.Owner {
	return owners.Owner{
		ID:                 db.UUIDToString(row.ID),
		TgUserID:           db.Int8ToPtr(row.TgUserID),
		BaleUserID:         db.Int8ToPtr(row.BaleUserID),
		DmTargetBaleChatID: db.Int8ToPtr(row.DmTargetBaleChatID),
		DmTargetTgChatID:   db.Int8ToPtr(row.DmTargetTgChatID),
		CreatedAt:          db.TimeFromPg(row.CreatedAt),
	}
}
