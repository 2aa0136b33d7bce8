package testhelpers

import (
	"io"

	"github.com/samber/do"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/runoff/internal/ballot"
	"github.com/zhulik/runoff/internal/config"
	"github.com/zhulik/runoff/internal/core"
	"github.com/zhulik/runoff/internal/report"
)

// NewConfig builds a config from the given variables on top of the defaults.
func NewConfig(environment map[string]string) *config.Config {
	if environment == nil {
		environment = map[string]string{}
	}

	return lo.Must(config.LoadFrom(environment))
}

// NewInjector wires a quiet logger and the given reporter instead of stdout and NATS.
func NewInjector(cfg core.Config, reporter report.Reporter) *do.Injector {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue[logrus.FieldLogger](injector, logger)
	do.ProvideValue(injector, ballot.NewNames(cfg.CandidateNames()))
	do.ProvideValue(injector, reporter)

	return injector
}
