package verify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/peyvand/peyvand/internal/db/sqlc"
)

func TestRandomCodeShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		code, err := randomCode("G-")
		if err != nil {
			t.Fatalf("randomCode failed: %v", err)
		}
		if !strings.HasPrefix(code, "G-") {
			t.Fatalf("code %q missing prefix", code)
		}
		body := strings.TrimPrefix(code, "G-")
		if len(body) != codeLength {
			t.Fatalf("code body %q has length %d, want %d", body, len(body), codeLength)
		}
		for _, r := range body {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q outside alphabet", code, r)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatal("randomCode produced no variation")
	}
}

func TestKindPrefix(t *testing.T) {
	cases := []struct {
		kind   string
		prefix string
		ok     bool
	}{
		{"group", "G-", true},
		{"channel", "C-", true},
		{"private", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		prefix, ok := kindPrefix(tc.kind)
		if ok != tc.ok || prefix != tc.prefix {
			t.Fatalf("kindPrefix(%q) = (%q, %v), want (%q, %v)", tc.kind, prefix, ok, tc.prefix, tc.ok)
		}
	}
}

func TestIssueRejectsUnknownKind(t *testing.T) {
	svc := NewService(nil, nil, nil)
	_, err := svc.Issue(context.Background(), "3b5c0d4e-8f1a-4b2c-9d3e-4f5a6b7c8d9e", "telegram", "private", 1)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestIssueRejectsBadOwnerID(t *testing.T) {
	svc := NewService(nil, nil, nil)
	if _, err := svc.Issue(context.Background(), "not-a-uuid", "telegram", "group", 1); err == nil {
		t.Fatal("expected error for malformed owner id")
	}
}

func TestRedeemEmptyCode(t *testing.T) {
	svc := NewService(nil, nil, nil)
	_, err := svc.Redeem(context.Background(), "   ", "telegram", 1, "group")
	if !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected ErrCodeNotFound for empty code, got %v", err)
	}
	if _, err := svc.RedeemDm(context.Background(), "", "bale", 1); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected ErrCodeNotFound for empty dm code, got %v", err)
	}
}

func TestTokenMapping(t *testing.T) {
	var ownerID pgtype.UUID
	ownerID.Valid = true
	ownerID.Bytes[0] = 0xAB
	expires := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	token := toToken(sqlc.VerifyToken{
		Code:           "G-ABCD1234",
		OwnerID:        ownerID,
		Platform:       "telegram",
		Kind:           "group",
		PlatformUserID: 42,
		ExpiresAt:      pgtype.Timestamptz{Time: expires, Valid: true},
		Consumed:       false,
	})
	if token.Code != "G-ABCD1234" || token.Platform != "telegram" || token.Kind != "group" {
		t.Fatalf("token fields not mapped: %+v", token)
	}
	if token.PlatformUserID != 42 {
		t.Fatalf("platform user id = %d, want 42", token.PlatformUserID)
	}
	if !token.ExpiresAt.Equal(expires) {
		t.Fatalf("expires at = %v, want %v", token.ExpiresAt, expires)
	}

	dm := toDmToken(sqlc.DmVerifyToken{
		Code:           "DM-XYZ98765",
		OwnerID:        ownerID,
		TargetPlatform: "bale",
		TargetChatID:   777,
		Consumed:       true,
	})
	if dm.TargetPlatform != "bale" || dm.TargetChatID != 777 || !dm.Consumed {
		t.Fatalf("dm token fields not mapped: %+v", dm)
	}
}
