package di

import (
	"context"

	"github.com/samber/do"
	"github.com/zhulik/runoff/internal/ballot"
	"github.com/zhulik/runoff/internal/core"
	"github.com/zhulik/runoff/internal/logging"
	"github.com/zhulik/runoff/internal/pubsub"
	"github.com/zhulik/runoff/internal/report"
)

// New wires the services of one run. Services that talk to the network derive their deadlines from ctx.
func New(ctx context.Context, cfg core.Config) *do.Injector {
	injector := do.New()

	do.ProvideValue(injector, ctx)
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, ballot.NewNames(cfg.CandidateNames()))

	logging.Register(injector)
	pubsub.Register(injector)
	report.Register(injector)

	return injector
}
