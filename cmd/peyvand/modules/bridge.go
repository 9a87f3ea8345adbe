package modules

import (
	"context"
	"errors"
	"log/slog"

	"go.uber.org/fx"

	"github.com/peyvand/peyvand/internal/bridge"
	"github.com/peyvand/peyvand/internal/bridge/adapters/bale"
	"github.com/peyvand/peyvand/internal/bridge/adapters/common"
	"github.com/peyvand/peyvand/internal/bridge/adapters/telegram"
	"github.com/peyvand/peyvand/internal/chats"
	"github.com/peyvand/peyvand/internal/config"
	"github.com/peyvand/peyvand/internal/merge"
	"github.com/peyvand/peyvand/internal/owners"
	"github.com/peyvand/peyvand/internal/pairings"
	"github.com/peyvand/peyvand/internal/router"
	"github.com/peyvand/peyvand/internal/verify"
)

var BridgeModule = fx.Module(
	"bridge",
	fx.Provide(
		provideOrchestrator,
		fx.Annotate(provideTelegramAdapter, fx.ResultTags(`name:"telegram_adapter"`)),
		fx.Annotate(provideBaleAdapter, fx.ResultTags(`name:"bale_adapter"`)),
	),
	fx.Invoke(startBridge),
)

// ---------------------------------------------------------------------------
// bridge wiring
// ---------------------------------------------------------------------------

func provideOrchestrator(
	log *slog.Logger,
	cfg config.Config,
	ownerSvc *owners.Service,
	chatSvc *chats.Service,
	pairingSvc *pairings.Service,
	verifySvc *verify.Service,
	mergeSvc *merge.Service,
	engine *router.Engine,
) *bridge.Orchestrator {
	return bridge.NewOrchestrator(log, cfg.Bridge, ownerSvc, chatSvc, pairingSvc, verifySvc, mergeSvc, engine)
}

func provideTelegramAdapter(log *slog.Logger, cfg config.Config) (*common.BotAdapter, error) {
	return telegram.New(log, cfg.Telegram)
}

func provideBaleAdapter(log *slog.Logger, cfg config.Config) (*common.BotAdapter, error) {
	return bale.New(log, cfg.Bale)
}

type bridgeParams struct {
	fx.In

	Logger          *slog.Logger
	Orchestrator    *bridge.Orchestrator
	TelegramAdapter *common.BotAdapter `name:"telegram_adapter"`
	BaleAdapter     *common.BotAdapter `name:"bale_adapter"`
	Shutdowner      fx.Shutdowner
}

// startBridge registers both adapters and runs their event loops as
// independent lifecycle-managed goroutines. Either loop ending with an
// unexpected error shuts the process down.
func startBridge(lc fx.Lifecycle, params bridgeParams) {
	params.Orchestrator.RegisterAdapter(params.TelegramAdapter)
	params.Orchestrator.RegisterAdapter(params.BaleAdapter)

	loopCtx, cancel := context.WithCancel(context.Background())
	run := func(adapter *common.BotAdapter) {
		if err := adapter.Run(loopCtx, params.Orchestrator.HandleEvent); err != nil && !errors.Is(err, context.Canceled) {
			params.Logger.Error("adapter loop failed",
				slog.String("platform", adapter.Platform()),
				slog.Any("error", err),
			)
			_ = params.Shutdowner.Shutdown()
		}
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go run(params.TelegramAdapter)
			go run(params.BaleAdapter)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})
}
