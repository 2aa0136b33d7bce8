package cli

import (
	"context"
	"fmt"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/runoff/internal/ballot"
	"github.com/zhulik/runoff/internal/core"
	"github.com/zhulik/runoff/internal/report"
	"github.com/zhulik/runoff/internal/sheet"
	"github.com/zhulik/runoff/internal/tabulation"
	"github.com/zhulik/runoff/pkg/iter"
	"github.com/zhulik/runoff/pkg/utils"
)

// Tabulator reads ballots, validates all of them and runs the election.
type Tabulator struct {
	Logger   logrus.FieldLogger
	Config   core.Config
	Reporter report.Reporter
}

func NewTabulator(injector *do.Injector) (*Tabulator, error) {
	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	reporter, err := do.Invoke[report.Reporter](injector)
	if err != nil {
		return nil, fmt.Errorf("failed to build reporter: %w", err)
	}

	return &Tabulator{
		Logger:   logger.WithField("component", core.ComponentNameTabulator),
		Config:   config,
		Reporter: reporter,
	}, nil
}

func (t *Tabulator) Run(ctx context.Context) error {
	region, err := sheet.NewRegion(t.Config.RangeStart(), t.Config.RangeEnd())
	if err != nil {
		return err
	}

	extraction, err := ballot.ParseExtraction(t.Config.Extraction())
	if err != nil {
		return err
	}

	t.Logger.WithFields(logrus.Fields{
		"file":   t.Config.ResponsesFile(),
		"region": region,
	}).Info("Reading ballots")

	rows, err := sheet.OpenRegion(t.Config.ResponsesFile(), region)
	if err != nil {
		return err
	}

	for _, row := range rows {
		t.Reporter.Ballot(row)
	}

	voters, err := iter.MapAll(rows, func(row sheet.Row) (*ballot.Voter, error) {
		voter, err := ballot.Parse(row.Fields, ballot.WithExtraction(extraction))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.Number, err)
		}

		return voter, nil
	})
	if err != nil {
		return err
	}

	if len(voters) == 0 {
		return fmt.Errorf("%w: %s in %s", core.ErrNoBallots, region, t.Config.ResponsesFile())
	}

	t.Reporter.Counted(len(voters))

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("tabulation cancelled: %w", err)
	}

	engine := tabulation.New(voters,
		tabulation.WithReporter(t.Reporter),
		tabulation.WithLogger(t.Logger),
	)

	// A panicking reporter must not take the process down without a proper error.
	result, err := utils.Try(engine.Run)
	if err != nil {
		return err
	}

	t.Logger.WithFields(logrus.Fields{
		"winner": result.Winner.Choice,
		"votes":  result.Winner.Votes,
		"total":  result.Total,
		"rounds": len(result.Rounds),
	}).Info("Winner declared")

	return nil
}
