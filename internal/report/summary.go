package report

import (
	"github.com/samber/lo"
	"github.com/zhulik/runoff/internal/ballot"
	"github.com/zhulik/runoff/internal/tabulation"
)

type StandingSummary struct {
	Choice     int     `json:"choice"`
	Name       string  `json:"name"`
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type RoundSummary struct {
	Number     int               `json:"number"`
	Tally      []StandingSummary `json:"tally"`
	Exhausted  int               `json:"exhausted"`
	Leader     StandingSummary   `json:"leader"`
	Eliminated *StandingSummary  `json:"eliminated,omitempty"`
}

type Summary struct {
	RunID  string          `json:"run_id"`
	Total  int             `json:"total"`
	Rounds []RoundSummary  `json:"rounds"`
	Winner StandingSummary `json:"winner"`
}

func summarizeStanding(standing tabulation.Standing, names ballot.Names) StandingSummary {
	return StandingSummary{
		Choice:     int(standing.Choice),
		Name:       names.Name(standing.Choice),
		Votes:      standing.Votes,
		Percentage: standing.Percentage(),
	}
}

// SummarizeRound lists the tally in ascending choice order.
func SummarizeRound(round tabulation.Round, names ballot.Names) RoundSummary {
	summary := RoundSummary{
		Number:    round.Number,
		Exhausted: round.Exhausted,
		Leader:    summarizeStanding(round.Leader, names),
		Tally: lo.Map(round.Tally.Choices(), func(choice ballot.Choice, _ int) StandingSummary {
			return summarizeStanding(tabulation.Standing{
				Choice: choice,
				Votes:  round.Tally[choice],
				Total:  round.Leader.Total,
			}, names)
		}),
	}

	if round.Eliminated != nil {
		eliminated := summarizeStanding(*round.Eliminated, names)
		summary.Eliminated = &eliminated
	}

	return summary
}

func Summarize(runID string, result tabulation.Result, names ballot.Names) Summary {
	return Summary{
		RunID: runID,
		Total: result.Total,
		Rounds: lo.Map(result.Rounds, func(round tabulation.Round, _ int) RoundSummary {
			return SummarizeRound(round, names)
		}),
		Winner: summarizeStanding(result.Winner, names),
	}
}
