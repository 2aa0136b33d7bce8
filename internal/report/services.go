package report

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/runoff/internal/ballot"
	"github.com/zhulik/runoff/internal/core"
)

// RunID identifies one tabulation run in reports and published subjects.
type RunID string

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func Register(injector *do.Injector) {
	do.ProvideValue(injector, NewRunID())

	do.Provide(injector, func(injector *do.Injector) (Reporter, error) {
		config, err := do.Invoke[core.Config](injector)
		if err != nil {
			return nil, err
		}

		logger, err := do.Invoke[logrus.FieldLogger](injector)
		if err != nil {
			return nil, err
		}

		names, err := do.Invoke[ballot.Names](injector)
		if err != nil {
			return nil, err
		}

		runID := do.MustInvoke[RunID](injector)

		var reporters Multi

		switch config.Format() {
		case core.FormatJSON:
			reporters = append(reporters, NewJSON(os.Stdout, string(runID), names, logger))
		default:
			reporters = append(reporters, NewConsole(os.Stdout, names))
		}

		if config.NATSURL() == "" {
			return reporters, nil
		}

		events, err := newEvents(injector, config, string(runID), names, logger)
		if err != nil {
			logger.WithError(err).Warn("Event publishing disabled")

			return reporters, nil
		}

		return append(reporters, events), nil
	})
}

// newEvents builds the NATS sink only when the publisher is reachable.
func newEvents(
	injector *do.Injector, config core.Config, runID string, names ballot.Names, logger logrus.FieldLogger,
) (*Events, error) {
	ctx, err := do.Invoke[context.Context](injector)
	if err != nil {
		return nil, err
	}

	publisher, err := do.Invoke[core.Publisher](injector)
	if err != nil {
		return nil, err
	}

	err = do.HealthCheck[core.Publisher](injector)
	if err != nil {
		return nil, fmt.Errorf("publisher is not healthy: %w", err)
	}

	return NewEvents(ctx, publisher, config.NATSSubject(), runID, config.PublishTimeout(), names, logger), nil
}
