package tabulation

import (
	"github.com/zhulik/runoff/internal/ballot"
)

// Standing is a choice's vote count against the total number of ballots.
type Standing struct {
	Choice ballot.Choice
	Votes  int
	Total  int
}

func (s Standing) Percentage() float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(s.Votes) / float64(s.Total) * 100 //nolint:mnd
}

// Majority reports whether votes are strictly more than half of the total.
func (s Standing) Majority() bool {
	return float64(s.Votes) > float64(s.Total)/2 //nolint:mnd
}

type Round struct {
	Number int
	Tally  Tally

	// Exhausted is the number of ballots with no standing preference at the start of the round.
	Exhausted int

	Leader Standing

	// Eliminated is nil for the final round.
	Eliminated *Standing
}

func (r Round) Final() bool {
	return r.Eliminated == nil
}

type Result struct {
	Winner Standing
	Total  int
	Rounds []Round
}

// Reporter observes a tabulation run. It must not influence it.
type Reporter interface {
	Round(round Round)
	Result(result Result)
}

type nopReporter struct{}

func (nopReporter) Round(Round) {}
func (nopReporter) Result(Result) {}
