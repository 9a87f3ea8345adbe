package modules

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/peyvand/peyvand/internal/chats"
	"github.com/peyvand/peyvand/internal/merge"
	"github.com/peyvand/peyvand/internal/owners"
	"github.com/peyvand/peyvand/internal/pairings"
	"github.com/peyvand/peyvand/internal/router"
	"github.com/peyvand/peyvand/internal/verify"
)

var DomainModule = fx.Module(
	"domain",
	fx.Provide(
		owners.NewService,
		chats.NewService,
		pairings.NewService,
		verify.NewService,
		merge.NewService,

		provideRouterEngine,
	),
)

// ---------------------------------------------------------------------------
// domain service providers
// ---------------------------------------------------------------------------

func provideRouterEngine(log *slog.Logger, ownerSvc *owners.Service, pairingSvc *pairings.Service) *router.Engine {
	// Self ids are filled in once the adapters connect.
	return router.NewEngine(log, ownerSvc, pairingSvc, nil)
}
