package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/peyvand/peyvand/internal/chats"
	"github.com/peyvand/peyvand/internal/config"
	"github.com/peyvand/peyvand/internal/merge"
	"github.com/peyvand/peyvand/internal/owners"
	"github.com/peyvand/peyvand/internal/pairings"
	"github.com/peyvand/peyvand/internal/router"
	"github.com/peyvand/peyvand/internal/verify"
)

var (
	chatCodePattern = regexp.MustCompile(`^[GC]-[A-Z0-9]{8}$`)
	dmCodePattern   = regexp.MustCompile(`^DM-[A-Z0-9]{8}$`)
)

// Orchestrator receives normalized inbound events and drives
// verification, merging, and routing. One instance serves both
// platform event loops.
type Orchestrator struct {
	logger   *slog.Logger
	owners   *owners.Service
	chats    *chats.Service
	pairings *pairings.Service
	verify   *verify.Service
	merge    *merge.Service
	router   *router.Engine
	wizard   *wizard
	cfg      config.BridgeConfig
	senders  map[string]Sender
}

// NewOrchestrator wires the bridge core.
func NewOrchestrator(
	log *slog.Logger,
	cfg config.BridgeConfig,
	ownerSvc *owners.Service,
	chatSvc *chats.Service,
	pairingSvc *pairings.Service,
	verifySvc *verify.Service,
	mergeSvc *merge.Service,
	engine *router.Engine,
) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		logger:   log.With(slog.String("service", "bridge")),
		owners:   ownerSvc,
		chats:    chatSvc,
		pairings: pairingSvc,
		verify:   verifySvc,
		merge:    mergeSvc,
		router:   engine,
		wizard:   newWizard(),
		cfg:      cfg,
		senders:  make(map[string]Sender),
	}
}

// RegisterAdapter attaches a platform adapter for outbound sends and
// records its self id so the router can discard the bot's own output.
func (o *Orchestrator) RegisterAdapter(adapter Adapter) {
	o.senders[adapter.Platform()] = adapter
	o.router.SetSelfID(adapter.Platform(), adapter.SelfID())
}

// HandleEvent processes one inbound event. Verification codes and
// commands are fully consumed here; everything else goes to routing.
// Errors are returned for the adapter to log; they never abort the
// receive loop.
func (o *Orchestrator) HandleEvent(ctx context.Context, ev Event) error {
	text := strings.TrimSpace(ev.Text)
	code := strings.ToUpper(text)

	switch {
	case dmCodePattern.MatchString(code):
		return o.redeemDmCode(ctx, ev, code)
	case chatCodePattern.MatchString(code) && ev.ChatKind != chats.KindPrivate:
		return o.redeemChatCode(ctx, ev, code)
	}

	if ev.ChatKind == chats.KindPrivate {
		if strings.HasPrefix(text, "/") {
			return o.handleCommand(ctx, ev, text)
		}
		if state := o.wizard.take(ev.Platform, ev.AuthorID); state != awaitNothing {
			return o.handleWizardInput(ctx, ev, state, text)
		}
	}

	return o.routeAndForward(ctx, ev)
}

func (o *Orchestrator) handleCommand(ctx context.Context, ev Event, text string) error {
	fields := strings.Fields(text)
	command := strings.ToLower(fields[0])
	// Strip a @botname suffix, as in "/help@my_bridge_bot".
	if at := strings.IndexByte(command, '@'); at > 0 {
		command = command[:at]
	}
	args := fields[1:]

	switch command {
	case "/start":
		return o.reply(ctx, ev, textStart)
	case "/help":
		return o.reply(ctx, ev, textHelp)
	case "/myid":
		return o.reply(ctx, ev, fmt.Sprintf("Your %s id: %d", ev.Platform, ev.AuthorID))
	case "/verify":
		return o.handleVerifyCommand(ctx, ev, args)
	case "/verify_dm":
		return o.handleVerifyDmCommand(ctx, ev, args)
	case "/pair":
		return o.handlePairCommand(ctx, ev, args)
	case "/link":
		return o.handleLinkCommand(ctx, ev, args)
	}
	return o.reply(ctx, ev, textHelp)
}

func (o *Orchestrator) handleVerifyCommand(ctx context.Context, ev Event, args []string) error {
	kind := ""
	if len(args) > 0 {
		kind = strings.ToLower(args[0])
	}
	if kind != chats.KindGroup && kind != chats.KindChannel {
		return o.reply(ctx, ev, "Usage: /verify <group|channel>")
	}
	owner, err := o.owners.UpsertByPlatformIdentity(ctx, ev.Platform, ev.AuthorID)
	if err != nil {
		return fmt.Errorf("resolve owner: %w", err)
	}
	token, err := o.verify.Issue(ctx, owner.ID, ev.Platform, kind, ev.AuthorID)
	if err != nil {
		return fmt.Errorf("issue verify code: %w", err)
	}
	return o.reply(ctx, ev, fmt.Sprintf(textVerifyIssued, token.Code, kind))
}

func (o *Orchestrator) handleVerifyDmCommand(ctx context.Context, ev Event, args []string) error {
	if len(args) == 0 {
		o.wizard.set(ev.Platform, ev.AuthorID, awaitDmTargetID)
		return o.reply(ctx, ev, textVerifyDmUsage)
	}
	chatID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return o.reply(ctx, ev, textAwaitNumericID)
	}
	return o.issueDmCode(ctx, ev, chatID)
}

func (o *Orchestrator) issueDmCode(ctx context.Context, ev Event, targetChatID int64) error {
	owner, err := o.owners.UpsertByPlatformIdentity(ctx, ev.Platform, ev.AuthorID)
	if err != nil {
		return fmt.Errorf("resolve owner: %w", err)
	}
	token, err := o.verify.IssueDm(ctx, owner.ID, oppositePlatform(ev.Platform), targetChatID)
	if err != nil {
		return fmt.Errorf("issue dm verify code: %w", err)
	}
	return o.reply(ctx, ev, fmt.Sprintf(textVerifyDmIssued, token.Code, targetChatID))
}

func (o *Orchestrator) handlePairCommand(ctx context.Context, ev Event, args []string) error {
	if len(args) != 3 {
		return o.reply(ctx, ev, textPairUsage)
	}
	tgChatID, err1 := strconv.ParseInt(args[0], 10, 64)
	baleChatID, err2 := strconv.ParseInt(args[1], 10, 64)
	kind := strings.ToLower(args[2])
	if err1 != nil || err2 != nil || (kind != chats.KindGroup && kind != chats.KindChannel) {
		return o.reply(ctx, ev, textPairUsage)
	}
	owner, err := o.owners.GetByPlatformIdentity(ctx, ev.Platform, ev.AuthorID)
	if err != nil {
		if errors.Is(err, owners.ErrOwnerNotFound) {
			return o.reply(ctx, ev, textPairRejected)
		}
		return fmt.Errorf("resolve owner: %w", err)
	}
	if _, err := o.pairings.Create(ctx, owner.ID, kind, tgChatID, baleChatID); err != nil {
		switch {
		case errors.Is(err, pairings.ErrOwnershipViolation):
			return o.reply(ctx, ev, textPairRejected)
		case errors.Is(err, pairings.ErrDuplicatePairing):
			return o.reply(ctx, ev, textPairDuplicate)
		}
		return fmt.Errorf("create pairing: %w", err)
	}
	return o.reply(ctx, ev, textPairCreated)
}

func (o *Orchestrator) handleLinkCommand(ctx context.Context, ev Event, args []string) error {
	if len(args) == 0 {
		o.wizard.set(ev.Platform, ev.AuthorID, awaitMergeID)
		return o.reply(ctx, ev, textLinkUsage)
	}
	otherID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return o.reply(ctx, ev, textAwaitNumericID)
	}
	return o.mergeIdentities(ctx, ev, otherID)
}

func (o *Orchestrator) handleWizardInput(ctx context.Context, ev Event, state wizardState, text string) error {
	value, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		// Session already consumed; the user restarts the flow.
		return o.reply(ctx, ev, textAwaitNumericID)
	}
	switch state {
	case awaitMergeID:
		return o.mergeIdentities(ctx, ev, value)
	case awaitDmTargetID:
		return o.issueDmCode(ctx, ev, value)
	}
	return nil
}

func (o *Orchestrator) mergeIdentities(ctx context.Context, ev Event, otherID int64) error {
	tgID, baleID := ev.AuthorID, otherID
	if ev.Platform == owners.PlatformBale {
		tgID, baleID = otherID, ev.AuthorID
	}
	if _, err := o.merge.Merge(ctx, tgID, baleID); err != nil {
		if errors.Is(err, merge.ErrIdentityConflict) {
			return o.reply(ctx, ev, textLinkConflict)
		}
		return fmt.Errorf("merge identities: %w", err)
	}
	return o.reply(ctx, ev, textLinked)
}

// redeemChatCode handles a G-/C- code posted in a group or channel:
// on success the chat the code arrived in is registered to the issuer.
func (o *Orchestrator) redeemChatCode(ctx context.Context, ev Event, code string) error {
	redemption, err := o.verify.Redeem(ctx, code, ev.Platform, ev.AuthorID, ev.ChatKind)
	if err != nil {
		switch {
		case errors.Is(err, verify.ErrKindMismatch):
			return o.reply(ctx, ev, textCodeKindMismatch)
		case errors.Is(err, verify.ErrCodeNotFound),
			errors.Is(err, verify.ErrCodeConsumed),
			errors.Is(err, verify.ErrCodeExpired):
			// One rejection wording for all three; no hint whether the
			// code ever existed.
			return o.reply(ctx, ev, textCodeRejected)
		}
		return fmt.Errorf("redeem verify code: %w", err)
	}
	if _, err := o.chats.Register(ctx, redemption.OwnerID, ev.Platform, redemption.Kind, ev.ChatID, ev.ChatTitle); err != nil {
		if errors.Is(err, chats.ErrChatClaimed) {
			return o.reply(ctx, ev, textChatClaimed)
		}
		return fmt.Errorf("register chat: %w", err)
	}
	return o.reply(ctx, ev, fmt.Sprintf(textChatLinked, redemption.Kind))
}

// redeemDmCode handles a DM- code: it must arrive in exactly the chat
// the code was bound to, which then becomes the issuer's DM target.
func (o *Orchestrator) redeemDmCode(ctx context.Context, ev Event, code string) error {
	ownerID, err := o.verify.RedeemDm(ctx, code, ev.Platform, ev.ChatID)
	if err != nil {
		switch {
		case errors.Is(err, verify.ErrCodeNotFound),
			errors.Is(err, verify.ErrCodeConsumed),
			errors.Is(err, verify.ErrCodeExpired),
			errors.Is(err, verify.ErrTargetMismatch):
			return o.reply(ctx, ev, textCodeRejected)
		}
		return fmt.Errorf("redeem dm verify code: %w", err)
	}
	if _, err := o.owners.SetDmTarget(ctx, ownerID, ev.Platform, ev.ChatID); err != nil {
		return fmt.Errorf("set dm target: %w", err)
	}
	return o.reply(ctx, ev, textDmTargetSet)
}

func (o *Orchestrator) routeAndForward(ctx context.Context, ev Event) error {
	decision, err := o.router.Route(ctx, ev.Platform, ev.ChatID, ev.ChatKind, ev.AuthorID)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}
	switch decision.Action {
	case router.ActionDrop:
		o.logger.Debug("drop",
			slog.String("platform", ev.Platform),
			slog.Int64("chat_id", ev.ChatID),
			slog.String("reason", decision.Reason),
		)
		return nil
	case router.ActionPrompt:
		return o.reply(ctx, ev, textDmSetupPrompt)
	case router.ActionForward:
		return o.forward(ctx, ev, decision)
	}
	return nil
}

// forward delivers one message to the decided destination. Adapter
// failures are logged and swallowed: one failed send must not abort
// the remaining queued events, and routing mutated no state to roll back.
func (o *Orchestrator) forward(ctx context.Context, ev Event, decision router.Decision) error {
	sender, ok := o.senders[decision.TargetPlatform]
	if !ok {
		return fmt.Errorf("no adapter for platform %q", decision.TargetPlatform)
	}

	prefix := ""
	if decision.Attribution {
		prefix = attributionPrefix(ev)
	}

	if err := o.deliver(ctx, sender, decision.TargetChatID, ev, prefix); err != nil {
		o.logger.Error("forward failed",
			slog.String("target_platform", decision.TargetPlatform),
			slog.Int64("target_chat_id", decision.TargetChatID),
			slog.Any("error", err),
		)
		return nil
	}

	if o.cfg.MirrorDMs && ev.ChatKind == chats.KindPrivate {
		o.mirror(ctx, ev, decision, prefix)
	}
	return nil
}

func (o *Orchestrator) deliver(ctx context.Context, sender Sender, chatID int64, ev Event, prefix string) error {
	if ev.Media != nil {
		caption := prefix + ev.Media.Caption
		switch ev.Media.Type {
		case MediaPhoto:
			return sender.SendPhoto(ctx, chatID, ev.Media.Bytes, mediaFilename(ev.Media), caption)
		case MediaDocument:
			return sender.SendDocument(ctx, chatID, ev.Media.Bytes, mediaFilename(ev.Media), caption)
		case MediaVideo:
			return sender.SendVideo(ctx, chatID, ev.Media.Bytes, mediaFilename(ev.Media), caption)
		default:
			return fmt.Errorf("unsupported media type %q", ev.Media.Type)
		}
	}
	return sender.SendText(ctx, chatID, prefix+ev.Text)
}

// mirror sends a copy of a forwarded DM to the operator chat on the
// origin platform, when one is configured.
func (o *Orchestrator) mirror(ctx context.Context, ev Event, decision router.Decision, prefix string) {
	operatorChatID := o.cfg.OperatorTgChatID
	if ev.Platform == owners.PlatformBale {
		operatorChatID = o.cfg.OperatorBaleChatID
	}
	if operatorChatID == 0 {
		return
	}
	sender, ok := o.senders[ev.Platform]
	if !ok {
		return
	}
	if err := o.deliver(ctx, sender, operatorChatID, ev, prefix); err != nil {
		o.logger.Warn("mirror failed",
			slog.String("platform", ev.Platform),
			slog.Int64("operator_chat_id", operatorChatID),
			slog.Any("error", err),
		)
	}
}

func (o *Orchestrator) reply(ctx context.Context, ev Event, text string) error {
	sender, ok := o.senders[ev.Platform]
	if !ok {
		return fmt.Errorf("no adapter for platform %q", ev.Platform)
	}
	if err := sender.SendText(ctx, ev.ChatID, text); err != nil {
		o.logger.Error("reply failed",
			slog.String("platform", ev.Platform),
			slog.Int64("chat_id", ev.ChatID),
			slog.Any("error", err),
		)
	}
	return nil
}

// attributionPrefix renders the sender line prepended to forwarded DMs
// and group messages.
func attributionPrefix(ev Event) string {
	name := strings.TrimSpace(ev.AuthorName)
	if name == "" {
		name = strconv.FormatInt(ev.AuthorID, 10)
	}
	return name + ": "
}

func mediaFilename(media *Media) string {
	if name := strings.TrimSpace(media.Filename); name != "" {
		return name
	}
	switch media.Type {
	case MediaPhoto:
		return defaultPhotoName
	case MediaVideo:
		return defaultVideoName
	default:
		return defaultDocumentName
	}
}

func oppositePlatform(platform string) string {
	if platform == owners.PlatformTelegram {
		return owners.PlatformBale
	}
	return owners.PlatformTelegram
}
