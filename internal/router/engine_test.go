package router

import (
	"context"
	"errors"
	"testing"

	"github.com/peyvand/peyvand/internal/owners"
	"github.com/peyvand/peyvand/internal/pairings"
)

type fakeOwners struct {
	owner owners.Owner
	err   error
	calls int
}

func (f *fakeOwners) UpsertByPlatformIdentity(_ context.Context, _ string, _ int64) (owners.Owner, error) {
	f.calls++
	return f.owner, f.err
}

type fakePairings struct {
	counterpart pairings.Counterpart
	err         error
	calls       int
}

func (f *fakePairings) FindCounterpart(_ context.Context, _, _ string, _ int64) (pairings.Counterpart, error) {
	f.calls++
	return f.counterpart, f.err
}

func TestRouteSelfLoopDrops(t *testing.T) {
	ownerSvc := &fakeOwners{}
	pairingSvc := &fakePairings{}
	engine := NewEngine(nil, ownerSvc, pairingSvc, map[string]int64{"telegram": 999})

	for _, kind := range []string{"private", "group", "channel"} {
		decision, err := engine.Route(context.Background(), "telegram", 1, kind, 999)
		if err != nil {
			t.Fatalf("route %s failed: %v", kind, err)
		}
		if decision.Action != ActionDrop {
			t.Fatalf("kind %s: action = %d, want drop", kind, decision.Action)
		}
	}
	if ownerSvc.calls != 0 || pairingSvc.calls != 0 {
		t.Fatal("self-loop must short-circuit before any store access")
	}
}

func TestRouteDmForwardsToOppositeTarget(t *testing.T) {
	target := int64(4242)
	ownerSvc := &fakeOwners{owner: owners.Owner{ID: "o1", DmTargetBaleChatID: &target}}
	engine := NewEngine(nil, ownerSvc, &fakePairings{}, nil)

	decision, err := engine.Route(context.Background(), "telegram", 10, "private", 77)
	if err != nil {
		t.Fatalf("route failed: %v", err)
	}
	if decision.Action != ActionForward {
		t.Fatalf("action = %d, want forward", decision.Action)
	}
	if decision.TargetPlatform != "bale" || decision.TargetChatID != target {
		t.Fatalf("decision = %+v, want bale/%d", decision, target)
	}
	if !decision.Attribution {
		t.Fatal("dm forwards carry sender attribution")
	}
}

func TestRouteDmWithoutTargetPrompts(t *testing.T) {
	ownerSvc := &fakeOwners{owner: owners.Owner{ID: "o1"}}
	engine := NewEngine(nil, ownerSvc, &fakePairings{}, nil)

	decision, err := engine.Route(context.Background(), "bale", 10, "private", 77)
	if err != nil {
		t.Fatalf("route failed: %v", err)
	}
	if decision.Action != ActionPrompt {
		t.Fatalf("action = %d, want prompt", decision.Action)
	}
	if decision.OwnerID != "o1" {
		t.Fatalf("owner id = %q, want o1", decision.OwnerID)
	}
}

func TestRouteUnpairedChatDropsSilently(t *testing.T) {
	pairingSvc := &fakePairings{err: pairings.ErrPairingNotFound}
	engine := NewEngine(nil, &fakeOwners{}, pairingSvc, nil)

	decision, err := engine.Route(context.Background(), "telegram", -100500, "group", 77)
	if err != nil {
		t.Fatalf("unpaired chat must not error: %v", err)
	}
	if decision.Action != ActionDrop {
		t.Fatalf("action = %d, want drop", decision.Action)
	}
}

func TestRouteDisabledPairingDrops(t *testing.T) {
	pairingSvc := &fakePairings{counterpart: pairings.Counterpart{ChatID: 5, Enabled: false}}
	engine := NewEngine(nil, &fakeOwners{}, pairingSvc, nil)

	decision, err := engine.Route(context.Background(), "bale", 5, "channel", 77)
	if err != nil {
		t.Fatalf("route failed: %v", err)
	}
	if decision.Action != ActionDrop {
		t.Fatalf("action = %d, want drop", decision.Action)
	}
}

func TestRouteGroupAttributionChannelNone(t *testing.T) {
	pairingSvc := &fakePairings{counterpart: pairings.Counterpart{ChatID: 5, Enabled: true}}
	engine := NewEngine(nil, &fakeOwners{}, pairingSvc, nil)

	group, err := engine.Route(context.Background(), "telegram", 1, "group", 77)
	if err != nil {
		t.Fatalf("route group failed: %v", err)
	}
	if group.Action != ActionForward || !group.Attribution {
		t.Fatalf("group decision = %+v, want forward with attribution", group)
	}

	channel, err := engine.Route(context.Background(), "telegram", 1, "channel", 77)
	if err != nil {
		t.Fatalf("route channel failed: %v", err)
	}
	if channel.Action != ActionForward || channel.Attribution {
		t.Fatalf("channel decision = %+v, want forward without attribution", channel)
	}
	if channel.TargetPlatform != "bale" || channel.TargetChatID != 5 {
		t.Fatalf("channel decision = %+v, want bale/5", channel)
	}
}

func TestRouteUnknownKindErrors(t *testing.T) {
	engine := NewEngine(nil, &fakeOwners{}, &fakePairings{}, nil)
	if _, err := engine.Route(context.Background(), "telegram", 1, "supergroup", 77); err == nil {
		t.Fatal("expected error for unknown chat kind")
	}
}

func TestRoutePairingLookupFailureSurfaces(t *testing.T) {
	boom := errors.New("connection refused")
	engine := NewEngine(nil, &fakeOwners{}, &fakePairings{err: boom}, nil)
	if _, err := engine.Route(context.Background(), "telegram", 1, "group", 77); !errors.Is(err, boom) {
		t.Fatalf("expected lookup error to surface, got %v", err)
	}
}
