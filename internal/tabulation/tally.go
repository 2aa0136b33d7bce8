package tabulation

import (
	"slices"

	"github.com/samber/lo"
	"github.com/zhulik/runoff/internal/ballot"
)

// Tally counts the current first preferences of standing ballots.
type Tally map[ballot.Choice]int

func NewTally(voters []*ballot.Voter) Tally {
	tally := Tally{}

	for _, voter := range voters {
		choice, ok := voter.Front()
		if !ok {
			continue
		}

		tally[choice]++
	}

	return tally
}

// Votes is the number of ballots counted in the tally.
func (t Tally) Votes() int {
	return lo.Sum(lo.Values(t))
}

// Choices returns the tallied choices in ascending order.
func (t Tally) Choices() []ballot.Choice {
	choices := lo.Keys(t)
	slices.Sort(choices)

	return choices
}

// Leader returns the choice with the most votes, ties go to the lowest identifier.
func (t Tally) Leader() (ballot.Choice, int, bool) {
	return t.extreme(func(votes, best int) bool { return votes > best })
}

// Loser returns the choice with the fewest votes, ties go to the highest identifier.
func (t Tally) Loser() (ballot.Choice, int, bool) {
	return t.extreme(func(votes, best int) bool { return votes <= best })
}

// extreme walks choices in ascending order and keeps the current best while better reports true.
func (t Tally) extreme(better func(votes, best int) bool) (ballot.Choice, int, bool) {
	choices := t.Choices()
	if len(choices) == 0 {
		return 0, 0, false
	}

	best := choices[0]

	for _, choice := range choices[1:] {
		if better(t[choice], t[best]) {
			best = choice
		}
	}

	return best, t[best], true
}
