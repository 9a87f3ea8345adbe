package pairings

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/peyvand/peyvand/internal/db/sqlc"
)

func TestCreateRejectsUnknownKind(t *testing.T) {
	svc := NewService(nil, nil, nil)
	_, err := svc.Create(context.Background(), "3b5c0d4e-8f1a-4b2c-9d3e-4f5a6b7c8d9e", "supergroup", 1, 2)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestFindCounterpartRejectsUnknownKind(t *testing.T) {
	svc := &Service{queries: sqlc.New(nil)}
	_, err := svc.FindCounterpart(context.Background(), PlatformTelegram, "private", 42)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	_, err = svc.FindCounterpart(context.Background(), "discord", KindGroup, 42)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind for unknown platform, got %v", err)
	}
}

func TestSetEnabledRejectsBadID(t *testing.T) {
	svc := &Service{queries: sqlc.New(nil)}
	if _, err := svc.SetEnabled(context.Background(), "not-a-uuid", KindGroup, true); err == nil {
		t.Fatal("expected error for malformed pairing id")
	}
}

func TestCreateErr(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	if got := createErr(dup); !errors.Is(got, ErrDuplicatePairing) {
		t.Fatalf("expected ErrDuplicatePairing, got %v", got)
	}
	other := errors.New("connection reset")
	if got := createErr(other); errors.Is(got, ErrDuplicatePairing) {
		t.Fatalf("unexpected duplicate classification: %v", got)
	}
}

func TestFindErr(t *testing.T) {
	if got := findErr(pgx.ErrNoRows); !errors.Is(got, ErrPairingNotFound) {
		t.Fatalf("expected ErrPairingNotFound, got %v", got)
	}
	other := errors.New("boom")
	if got := findErr(other); !errors.Is(got, other) {
		t.Fatalf("expected passthrough, got %v", got)
	}
}

func TestToPairingMapping(t *testing.T) {
	var id, ownerID pgtype.UUID
	id.Valid = true
	ownerID.Valid = true
	id.Bytes[15] = 1
	ownerID.Bytes[15] = 2

	group := toGroupPairing(sqlc.GroupPairing{
		ID:         id,
		OwnerID:    ownerID,
		TgChatID:   -100123,
		BaleChatID: 456,
		Enabled:    true,
	})
	if group.Kind != KindGroup {
		t.Fatalf("kind = %q, want %q", group.Kind, KindGroup)
	}
	if group.TgChatID != -100123 || group.BaleChatID != 456 {
		t.Fatalf("chat ids not mapped: %+v", group)
	}
	if !group.Enabled {
		t.Fatal("enabled flag lost")
	}

	channel := toChannelPairing(sqlc.ChannelPairing{ID: id, OwnerID: ownerID, TgChatID: 7, BaleChatID: 8})
	if channel.Kind != KindChannel {
		t.Fatalf("kind = %q, want %q", channel.Kind, KindChannel)
	}
	if channel.Enabled {
		t.Fatal("enabled should default false in mapping when row says false")
	}
}
