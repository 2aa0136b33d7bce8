package report

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/zhulik/runoff/internal/ballot"
	"github.com/zhulik/runoff/internal/sheet"
	"github.com/zhulik/runoff/internal/tabulation"
	"github.com/zhulik/runoff/pkg/json"
)

// JSON writes a single summary document once the winner is known.
type JSON struct {
	w      io.Writer
	names  ballot.Names
	runID  string
	logger logrus.FieldLogger
}

func NewJSON(w io.Writer, runID string, names ballot.Names, logger logrus.FieldLogger) *JSON {
	return &JSON{
		w:      w,
		names:  names,
		runID:  runID,
		logger: logger.WithField("component", "report.JSON"),
	}
}

func (j *JSON) Ballot(sheet.Row) {}
func (j *JSON) Counted(int) {}
func (j *JSON) Round(tabulation.Round) {}

func (j *JSON) Result(result tabulation.Result) {
	err := json.Encode(j.w, Summarize(j.runID, result, j.names))
	if err != nil {
		j.logger.WithError(err).Error("Failed to write summary")
	}
}
