//go:build ignore
// +build ignore

package merge_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peyvand/peyvand/internal/chats"
	"github.com/peyvand/peyvand/internal/db/sqlc"
	"github.com/peyvand/peyvand/internal/merge"
	"github.com/peyvand/peyvand/internal/owners"
)

func setupMergeIntegrationTest(t *testing.T) (*owners.Service, *chats.Service, *merge.Service, func()) {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("skip integration test: TEST_POSTGRES_DSN is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("skip integration test: cannot connect to database: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("skip integration test: database ping failed: %v", err)
	}

	queries := sqlc.New(pool)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ownerSvc := owners.NewService(logger, queries)
	chatSvc := chats.NewService(logger, queries)
	mergeSvc := merge.NewService(logger, pool, queries)

	return ownerSvc, chatSvc, mergeSvc, func() { pool.Close() }
}

func uniqueID() int64 { return time.Now().UnixNano() }

func TestIntegrationMergeSetsMissingIdentity(t *testing.T) {
	ownerSvc, _, mergeSvc, cleanup := setupMergeIntegrationTest(t)
	defer cleanup()

	ctx := context.Background()
	tgID, baleID := uniqueID(), uniqueID()+1

	existing, err := ownerSvc.UpsertByPlatformIdentity(ctx, owners.PlatformTelegram, tgID)
	if err != nil {
		t.Fatalf("upsert owner failed: %v", err)
	}

	merged, err := mergeSvc.Merge(ctx, tgID, baleID)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if merged.ID != existing.ID {
		t.Fatalf("merge created a new owner %s, want %s", merged.ID, existing.ID)
	}
	if merged.BaleUserID == nil || *merged.BaleUserID != baleID {
		t.Fatalf("bale identity not set: %+v", merged)
	}

	// Idempotent on repeat.
	again, err := mergeSvc.Merge(ctx, tgID, baleID)
	if err != nil {
		t.Fatalf("repeat merge failed: %v", err)
	}
	if again.ID != merged.ID {
		t.Fatalf("repeat merge returned owner %s, want %s", again.ID, merged.ID)
	}
}

func TestIntegrationMergeAbsorbsDistinctOwners(t *testing.T) {
	ownerSvc, chatSvc, mergeSvc, cleanup := setupMergeIntegrationTest(t)
	defer cleanup()

	ctx := context.Background()
	tgID, baleID := uniqueID(), uniqueID()+1

	tgOwner, err := ownerSvc.UpsertByPlatformIdentity(ctx, owners.PlatformTelegram, tgID)
	if err != nil {
		t.Fatalf("upsert telegram owner failed: %v", err)
	}
	baleOwner, err := ownerSvc.UpsertByPlatformIdentity(ctx, owners.PlatformBale, baleID)
	if err != nil {
		t.Fatalf("upsert bale owner failed: %v", err)
	}

	chat, err := chatSvc.Register(ctx, tgOwner.ID, owners.PlatformTelegram, chats.KindGroup, uniqueID()+2, "test group")
	if err != nil {
		t.Fatalf("register chat failed: %v", err)
	}

	merged, err := mergeSvc.Merge(ctx, tgID, baleID)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if merged.ID != baleOwner.ID {
		t.Fatalf("survivor = %s, want bale-side owner %s", merged.ID, baleOwner.ID)
	}
	if merged.TgUserID == nil || *merged.TgUserID != tgID {
		t.Fatalf("telegram identity not claimed by survivor: %+v", merged)
	}

	// Loser row is gone.
	if _, err := ownerSvc.GetByID(ctx, tgOwner.ID); !errors.Is(err, owners.ErrOwnerNotFound) {
		t.Fatalf("expected absorbed owner to be deleted, got %v", err)
	}

	// The chat now belongs to the survivor.
	reparented, err := chatSvc.GetOwned(ctx, merged.ID, owners.PlatformTelegram, chats.KindGroup, chat.ChatID)
	if err != nil {
		t.Fatalf("expected chat reparented to survivor: %v", err)
	}
	if reparented.OwnerID != merged.ID {
		t.Fatalf("chat owner = %s, want %s", reparented.OwnerID, merged.ID)
	}
}
