// Package router resolves the authorized destination for an inbound
// message, or determines that it must be dropped.
package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/peyvand/peyvand/internal/chats"
	"github.com/peyvand/peyvand/internal/owners"
	"github.com/peyvand/peyvand/internal/pairings"
)

// Action is the routing verdict for one inbound message.
type Action int

const (
	// ActionDrop discards the message silently. Unlinked chats and
	// self-authored messages are routine, not errors.
	ActionDrop Action = iota
	// ActionForward relays the message to Decision.TargetChatID on
	// Decision.TargetPlatform.
	ActionForward
	// ActionPrompt answers a DM whose owner has no forward target with
	// a setup hint instead of relaying it.
	ActionPrompt
)

// Decision is the outcome of routing one inbound message.
type Decision struct {
	Action         Action
	TargetPlatform string
	TargetChatID   int64
	// Attribution is set when the forwarded copy should carry a
	// sender prefix. Channels omit it: channel posts have no author.
	Attribution bool
	OwnerID     string
	Reason      string
}

// OwnerResolver finds or creates the owner behind a platform identity.
type OwnerResolver interface {
	UpsertByPlatformIdentity(ctx context.Context, platform string, platformUserID int64) (owners.Owner, error)
}

// PairingFinder resolves the counterpart chat for a paired group or channel.
type PairingFinder interface {
	FindCounterpart(ctx context.Context, platform, kind string, chatID int64) (pairings.Counterpart, error)
}

// Engine routes inbound messages. It mutates no pairing or token
// state; its only write is the find-or-create of a DM sender's owner
// row.
type Engine struct {
	owners   OwnerResolver
	pairings PairingFinder
	logger   *slog.Logger
	selfIDs  map[string]int64
}

// NewEngine creates a routing engine. selfIDs maps each platform name
// to the bridge bot's own user id on that platform, used to discard
// the bot's relayed output before it loops back in.
func NewEngine(log *slog.Logger, ownerSvc OwnerResolver, pairingSvc PairingFinder, selfIDs map[string]int64) *Engine {
	if log == nil {
		log = slog.Default()
	}
	ids := make(map[string]int64, len(selfIDs))
	for platform, id := range selfIDs {
		ids[platform] = id
	}
	return &Engine{
		owners:   ownerSvc,
		pairings: pairingSvc,
		logger:   log.With(slog.String("service", "router")),
		selfIDs:  ids,
	}
}

// SetSelfID records the bridge's own user id on a platform. Adapters
// call this once after start-up self-discovery, before their event
// loops begin delivering messages.
func (e *Engine) SetSelfID(platform string, userID int64) {
	e.selfIDs[platform] = userID
}

// Route decides where an inbound message goes.
func (e *Engine) Route(ctx context.Context, platform string, chatID int64, kind string, authorID int64) (Decision, error) {
	if selfID, ok := e.selfIDs[platform]; ok && authorID != 0 && authorID == selfID {
		return Decision{Action: ActionDrop, Reason: "self-loop"}, nil
	}

	switch kind {
	case chats.KindPrivate:
		return e.routeDm(ctx, platform, authorID)
	case chats.KindGroup, chats.KindChannel:
		return e.routePaired(ctx, platform, chatID, kind)
	}
	return Decision{}, fmt.Errorf("route: unknown chat kind %q", kind)
}

func (e *Engine) routeDm(ctx context.Context, platform string, authorID int64) (Decision, error) {
	owner, err := e.owners.UpsertByPlatformIdentity(ctx, platform, authorID)
	if err != nil {
		return Decision{}, fmt.Errorf("resolve dm sender: %w", err)
	}
	target := owner.DmTarget(platform)
	if target == nil {
		return Decision{Action: ActionPrompt, OwnerID: owner.ID, Reason: "no dm target"}, nil
	}
	return Decision{
		Action:         ActionForward,
		TargetPlatform: opposite(platform),
		TargetChatID:   *target,
		Attribution:    true,
		OwnerID:        owner.ID,
	}, nil
}

func (e *Engine) routePaired(ctx context.Context, platform string, chatID int64, kind string) (Decision, error) {
	counterpart, err := e.pairings.FindCounterpart(ctx, platform, kind, chatID)
	if err != nil {
		if errors.Is(err, pairings.ErrPairingNotFound) {
			return Decision{Action: ActionDrop, Reason: "no pairing"}, nil
		}
		return Decision{}, fmt.Errorf("find pairing: %w", err)
	}
	if !counterpart.Enabled {
		return Decision{Action: ActionDrop, Reason: "pairing disabled"}, nil
	}
	return Decision{
		Action:         ActionForward,
		TargetPlatform: opposite(platform),
		TargetChatID:   counterpart.ChatID,
		Attribution:    kind == chats.KindGroup,
	}, nil
}

func opposite(platform string) string {
	if platform == owners.PlatformTelegram {
		return owners.PlatformBale
	}
	return owners.PlatformTelegram
}
