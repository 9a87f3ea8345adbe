// Package verify issues and redeems single-use proof-of-control codes
// for chat linking and DM-target linking.
package verify

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peyvand/peyvand/internal/chats"
	"github.com/peyvand/peyvand/internal/db"
	"github.com/peyvand/peyvand/internal/db/sqlc"
)

const (
	defaultTTL      = 10 * time.Minute
	maxTokenRetries = 5

	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 8
)

// Errors returned by issuance and redemption. Redemption failures are
// user-facing rejections, never event-loop crashes.
var (
	ErrCodeNotFound   = errors.New("verify code not found")
	ErrCodeConsumed   = errors.New("verify code already consumed")
	ErrCodeExpired    = errors.New("verify code expired")
	ErrKindMismatch   = errors.New("verify code kind mismatch")
	ErrTargetMismatch = errors.New("verify code bound to a different chat")
	ErrUnknownKind    = errors.New("unknown verify kind")
)

// Token is an issued chat-linking code.
type Token struct {
	Code           string    `json:"code"`
	OwnerID        string    `json:"owner_id"`
	Platform       string    `json:"platform"`
	Kind           string    `json:"kind"`
	PlatformUserID int64     `json:"platform_user_id"`
	ExpiresAt      time.Time `json:"expires_at"`
	Consumed       bool      `json:"consumed"`
	CreatedAt      time.Time `json:"created_at"`
}

// DmToken is an issued DM-target code, bound to one exact chat.
type DmToken struct {
	Code           string    `json:"code"`
	OwnerID        string    `json:"owner_id"`
	TargetPlatform string    `json:"target_platform"`
	TargetChatID   int64     `json:"target_chat_id"`
	ExpiresAt      time.Time `json:"expires_at"`
	Consumed       bool      `json:"consumed"`
	CreatedAt      time.Time `json:"created_at"`
}

// Redemption is the outcome of a successful redeem: who the code was
// issued for and what kind of chat it authorizes.
type Redemption struct {
	OwnerID string
	Kind    string
}

// Service manages verify token lifecycle.
type Service struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
	logger  *slog.Logger
	ttl     time.Duration
}

// NewService creates a verify token service.
func NewService(log *slog.Logger, pool *pgxpool.Pool, queries *sqlc.Queries) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		pool:    pool,
		queries: queries,
		logger:  log.With(slog.String("service", "verify")),
		ttl:     defaultTTL,
	}
}

// Issue mints a chat-linking code for the owner, redeemable only on the
// given platform by the platform user who requested it.
func (s *Service) Issue(ctx context.Context, ownerID, platform, kind string, platformUserID int64) (Token, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	prefix, ok := kindPrefix(kind)
	if !ok {
		return Token{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	pgOwnerID, err := db.ParseUUID(ownerID)
	if err != nil {
		return Token{}, fmt.Errorf("invalid owner id: %w", err)
	}
	if s.queries == nil {
		return Token{}, errors.New("verify queries not configured")
	}

	expiresAt := time.Now().UTC().Add(s.ttl)
	for i := 0; i < maxTokenRetries; i++ {
		code, err := randomCode(prefix)
		if err != nil {
			return Token{}, err
		}
		row, err := s.queries.CreateVerifyToken(ctx, sqlc.CreateVerifyTokenParams{
			Code:           code,
			OwnerID:        pgOwnerID,
			Platform:       normalizePlatform(platform),
			Kind:           kind,
			PlatformUserID: platformUserID,
			ExpiresAt:      pgtype.Timestamptz{Time: expiresAt, Valid: true},
		})
		if err == nil {
			return toToken(row), nil
		}
		if db.IsUniqueViolation(err) {
			continue
		}
		return Token{}, fmt.Errorf("create verify token: %w", err)
	}
	return Token{}, errors.New("create verify token: code collision after retries")
}

// Redeem consumes a chat-linking code. The lookup matches code AND
// platform AND the exact platform user that requested it, so a code
// leaked in a public chat cannot be redeemed by someone else. A kind
// mismatch rejects without burning the code; the requester can retry in
// a chat of the right kind.
func (s *Service) Redeem(ctx context.Context, code, platform string, platformUserID int64, chatKind string) (Redemption, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Redemption{}, ErrCodeNotFound
	}
	if s.queries == nil || s.pool == nil {
		return Redemption{}, errors.New("verify service not configured")
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Redemption{}, fmt.Errorf("begin redeem tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	qtx := s.queries.WithTx(tx)

	row, err := qtx.GetVerifyTokenForUpdate(ctx, sqlc.GetVerifyTokenForUpdateParams{
		Code:           code,
		Platform:       normalizePlatform(platform),
		PlatformUserID: platformUserID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Redemption{}, ErrCodeNotFound
		}
		return Redemption{}, fmt.Errorf("lock verify token: %w", err)
	}
	token := toToken(row)
	if token.Consumed {
		return Redemption{}, ErrCodeConsumed
	}
	if !token.ExpiresAt.IsZero() && time.Now().UTC().After(token.ExpiresAt) {
		return Redemption{}, ErrCodeExpired
	}
	if token.Kind != strings.ToLower(strings.TrimSpace(chatKind)) {
		return Redemption{}, ErrKindMismatch
	}

	if _, err := qtx.MarkVerifyTokenConsumed(ctx, code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Redemption{}, ErrCodeConsumed
		}
		return Redemption{}, fmt.Errorf("mark verify token consumed: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Redemption{}, fmt.Errorf("commit redeem tx: %w", err)
	}

	s.logger.Info("verify code redeemed",
		slog.String("owner_id", token.OwnerID),
		slog.String("platform", token.Platform),
		slog.String("kind", token.Kind),
	)
	return Redemption{OwnerID: token.OwnerID, Kind: token.Kind}, nil
}

// IssueDm mints a DM-target code bound to one exact chat id on the
// target platform. Stronger binding than Issue: the owner types the
// target id freehand, so redemption must arrive in that very chat.
func (s *Service) IssueDm(ctx context.Context, ownerID, targetPlatform string, targetChatID int64) (DmToken, error) {
	pgOwnerID, err := db.ParseUUID(ownerID)
	if err != nil {
		return DmToken{}, fmt.Errorf("invalid owner id: %w", err)
	}
	if s.queries == nil {
		return DmToken{}, errors.New("verify queries not configured")
	}

	expiresAt := time.Now().UTC().Add(s.ttl)
	for i := 0; i < maxTokenRetries; i++ {
		code, err := randomCode("DM-")
		if err != nil {
			return DmToken{}, err
		}
		row, err := s.queries.CreateDmVerifyToken(ctx, sqlc.CreateDmVerifyTokenParams{
			Code:           code,
			OwnerID:        pgOwnerID,
			TargetPlatform: normalizePlatform(targetPlatform),
			TargetChatID:   targetChatID,
			ExpiresAt:      pgtype.Timestamptz{Time: expiresAt, Valid: true},
		})
		if err == nil {
			return toDmToken(row), nil
		}
		if db.IsUniqueViolation(err) {
			continue
		}
		return DmToken{}, fmt.Errorf("create dm verify token: %w", err)
	}
	return DmToken{}, errors.New("create dm verify token: code collision after retries")
}

// RedeemDm consumes a DM-target code. The redemption message must
// arrive in exactly the chat the code was bound to.
func (s *Service) RedeemDm(ctx context.Context, code, platform string, chatID int64) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", ErrCodeNotFound
	}
	if s.queries == nil || s.pool == nil {
		return "", errors.New("verify service not configured")
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", fmt.Errorf("begin dm redeem tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	qtx := s.queries.WithTx(tx)

	row, err := qtx.GetDmVerifyTokenForUpdate(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrCodeNotFound
		}
		return "", fmt.Errorf("lock dm verify token: %w", err)
	}
	token := toDmToken(row)
	if token.Consumed {
		return "", ErrCodeConsumed
	}
	if !token.ExpiresAt.IsZero() && time.Now().UTC().After(token.ExpiresAt) {
		return "", ErrCodeExpired
	}
	if token.TargetPlatform != normalizePlatform(platform) || token.TargetChatID != chatID {
		return "", ErrTargetMismatch
	}

	if _, err := qtx.MarkDmVerifyTokenConsumed(ctx, code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrCodeConsumed
		}
		return "", fmt.Errorf("mark dm verify token consumed: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit dm redeem tx: %w", err)
	}

	s.logger.Info("dm verify code redeemed",
		slog.String("owner_id", token.OwnerID),
		slog.String("target_platform", token.TargetPlatform),
		slog.Int64("target_chat_id", token.TargetChatID),
	)
	return token.OwnerID, nil
}

func kindPrefix(kind string) (string, bool) {
	switch kind {
	case chats.KindGroup:
		return "G-", true
	case chats.KindChannel:
		return "C-", true
	}
	return "", false
}

// randomCode draws codeLength characters from a 36-symbol alphabet,
// just over 41 bits of entropy per code.
func randomCode(prefix string) (string, error) {
	var b strings.Builder
	b.WriteString(prefix)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < codeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate verify code: %w", err)
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

func toToken(row sqlc.VerifyToken) Token {
	return Token{
		Code:           row.Code,
		OwnerID:        db.UUIDToString(row.OwnerID),
		Platform:       row.Platform,
		Kind:           row.Kind,
		PlatformUserID: row.PlatformUserID,
		ExpiresAt:      db.TimeFromPg(row.ExpiresAt),
		Consumed:       row.Consumed,
		CreatedAt:      db.TimeFromPg(row.CreatedAt),
	}
}

func toDmToken(row sqlc.DmVerifyToken) DmToken {
	return DmToken{
		Code:           row.Code,
		OwnerID:        db.UUIDToString(row.OwnerID),
		TargetPlatform: row.TargetPlatform,
		TargetChatID:   row.TargetChatID,
		ExpiresAt:      db.TimeFromPg(row.ExpiresAt),
		Consumed:       row.Consumed,
		CreatedAt:      db.TimeFromPg(row.CreatedAt),
	}
}

func normalizePlatform(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
