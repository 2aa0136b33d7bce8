package report

import (
	"github.com/zhulik/runoff/internal/sheet"
	"github.com/zhulik/runoff/internal/tabulation"
)

// Reporter receives everything a run has to tell. Reporters are write-only sinks.
type Reporter interface {
	tabulation.Reporter

	Ballot(row sheet.Row)
	Counted(total int)
}

// Multi fans every event out to all reporters in order.
type Multi []Reporter

func (m Multi) Ballot(row sheet.Row) {
	for _, r := range m {
		r.Ballot(row)
	}
}

func (m Multi) Counted(total int) {
	for _, r := range m {
		r.Counted(total)
	}
}

func (m Multi) Round(round tabulation.Round) {
	for _, r := range m {
		r.Round(round)
	}
}

func (m Multi) Result(result tabulation.Result) {
	for _, r := range m {
		r.Result(result)
	}
}
