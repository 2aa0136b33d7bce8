package tabulation

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/runoff/internal/ballot"
	"github.com/zhulik/runoff/internal/core"
)

type Option func(*Engine)

func WithReporter(reporter Reporter) Option {
	return func(e *Engine) {
		e.reporter = reporter
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.logger = logger.WithField("component", "tabulation.Engine")
	}
}

// Engine runs instant-runoff rounds over a fixed electorate.
// It takes ownership of the voters and mutates them. Not safe for concurrent use.
type Engine struct {
	voters []*ballot.Voter
	total  int

	eliminated       map[ballot.Choice]struct{}
	eliminationOrder []ballot.Choice

	round  int
	rounds []Round

	reporter Reporter
	logger   logrus.FieldLogger
}

func New(voters []*ballot.Voter, opts ...Option) *Engine {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	engine := &Engine{
		voters:     voters,
		total:      len(voters),
		eliminated: map[ballot.Choice]struct{}{},
		reporter:   nopReporter{},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// Total is the number of ballots the majority is measured against. It never changes during a run.
func (e *Engine) Total() int {
	return e.total
}

// Eliminated returns eliminated choices in elimination order.
func (e *Engine) Eliminated() []ballot.Choice {
	return append([]ballot.Choice(nil), e.eliminationOrder...)
}

func (e *Engine) IsEliminated(choice ballot.Choice) bool {
	_, ok := e.eliminated[choice]

	return ok
}

// Run steps until a choice holds a majority.
func (e *Engine) Run() (Result, error) {
	for {
		round, final, err := e.Step()
		if err != nil {
			return Result{}, err
		}

		if final {
			result := Result{
				Winner: round.Leader,
				Total:  e.total,
				Rounds: append([]Round(nil), e.rounds...),
			}

			e.reporter.Result(result)

			return result, nil
		}
	}
}

// Step runs a single round. It returns true when the round declared a winner.
func (e *Engine) Step() (Round, bool, error) {
	e.round++

	logger := e.logger.WithField("round", e.round)

	tally := NewTally(e.voters)
	exhausted := lo.CountBy(e.voters, func(v *ballot.Voter) bool {
		return v.Exhausted()
	})

	round := Round{
		Number:    e.round,
		Tally:     tally,
		Exhausted: exhausted,
	}

	leader, votes, ok := tally.Leader()
	if !ok {
		return round, false, fmt.Errorf("%w: round %d has no standing ballots out of %d",
			core.ErrExhaustedElectorate, e.round, e.total)
	}

	round.Leader = Standing{Choice: leader, Votes: votes, Total: e.total}

	if round.Leader.Majority() {
		logger.WithField("winner", leader).Debug("Majority reached")

		e.finish(round)

		return round, true, nil
	}

	loser, votes, _ := tally.Loser()
	round.Eliminated = &Standing{Choice: loser, Votes: votes, Total: e.total}

	e.eliminate(loser)

	logger.WithFields(logrus.Fields{
		"leader":     leader,
		"eliminated": loser,
	}).Debug("Round finished")

	e.finish(round)

	return round, false, nil
}

func (e *Engine) finish(round Round) {
	e.rounds = append(e.rounds, round)
	e.reporter.Round(round)
}

// eliminate marks the choice as eliminated and moves every ballot to its next standing preference.
func (e *Engine) eliminate(choice ballot.Choice) {
	e.eliminated[choice] = struct{}{}
	e.eliminationOrder = append(e.eliminationOrder, choice)

	for _, voter := range e.voters {
		voter.Discard(e.IsEliminated)
	}
}
