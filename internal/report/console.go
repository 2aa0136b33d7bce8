package report

import (
	"fmt"
	"io"

	"github.com/zhulik/runoff/internal/ballot"
	"github.com/zhulik/runoff/internal/sheet"
	"github.com/zhulik/runoff/internal/tabulation"
)

// Console prints a human-readable account of the run.
type Console struct {
	w     io.Writer
	names ballot.Names

	headerPrinted bool
}

func NewConsole(w io.Writer, names ballot.Names) *Console {
	return &Console{
		w:     w,
		names: names,
	}
}

func (c *Console) Ballot(row sheet.Row) {
	if !c.headerPrinted {
		c.printf("==== Counting ballots ====\n")
		c.headerPrinted = true
	}

	c.printf("Counting ballot: ")

	for _, field := range row.Fields {
		c.printf("%s; ", field)
	}

	c.printf("\n")
}

func (c *Console) Counted(total int) {
	c.printf("\nIn total, %d ballots were counted.\n", total)
}

func (c *Console) Round(round tabulation.Round) {
	c.printf("==== Round %d ====\n", round.Number)
	c.printf("The current tally is:\n")

	for _, choice := range round.Tally.Choices() {
		c.printf("    %s: %d\n", c.names.Label(choice), round.Tally[choice])
	}

	if round.Exhausted > 0 {
		c.printf("    Exhausted ballots: %d\n", round.Exhausted)
	}

	if round.Final() {
		return
	}

	c.printf("The current leader is %s, with %s of the final vote, or %d out of %d votes.\n",
		c.names.Name(round.Leader.Choice), percentage(round.Leader), round.Leader.Votes, round.Leader.Total)

	c.printf("Eliminating %s, which had %s of the current vote, or %d out of %d votes.\n",
		c.names.Name(round.Eliminated.Choice), percentage(*round.Eliminated), round.Eliminated.Votes, round.Eliminated.Total)
}

func (c *Console) Result(result tabulation.Result) {
	c.printf("The winner is %s, with %s of the final vote, or %d out of %d votes!\n",
		c.names.Name(result.Winner.Choice), percentage(result.Winner), result.Winner.Votes, result.Winner.Total)
}

// Write errors are ignored, reporting never changes the outcome of a run.
func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.w, format, args...)
}

func percentage(standing tabulation.Standing) string {
	return fmt.Sprintf("%.2f%%", standing.Percentage())
}
