package report

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zhulik/runoff/internal/ballot"
	"github.com/zhulik/runoff/internal/core"
	"github.com/zhulik/runoff/internal/sheet"
	"github.com/zhulik/runoff/internal/tabulation"
)

const (
	EventCounted = "counted"
	EventRound   = "round"
	EventResult  = "result"
)

type CountedEvent struct {
	RunID string `json:"run_id"`
	Total int    `json:"total"`
}

type RoundEvent struct {
	RunID string `json:"run_id"`
	RoundSummary
}

// Events publishes the run to <subject>.<run id>.<event>. Failed publishes are logged and dropped.
type Events struct {
	ctx       context.Context //nolint:containedctx
	publisher core.Publisher
	subject   string
	runID     string
	timeout   time.Duration
	names     ballot.Names

	logger logrus.FieldLogger
}

// NewEvents publishes with timeouts derived from ctx, a cancelled ctx makes every publish fail and get logged.
func NewEvents(
	ctx context.Context,
	publisher core.Publisher,
	subject, runID string,
	timeout time.Duration,
	names ballot.Names,
	logger logrus.FieldLogger,
) *Events {
	return &Events{
		ctx:       ctx,
		publisher: publisher,
		subject:   subject,
		runID:     runID,
		timeout:   timeout,
		names:     names,
		logger:    logger.WithField("component", "report.Events"),
	}
}

func (e *Events) Subject(event string) string {
	return fmt.Sprintf("%s.%s.%s", e.subject, e.runID, event)
}

func (e *Events) Ballot(sheet.Row) {}

func (e *Events) Counted(total int) {
	e.publish(EventCounted, CountedEvent{RunID: e.runID, Total: total})
}

func (e *Events) Round(round tabulation.Round) {
	e.publish(EventRound, RoundEvent{RunID: e.runID, RoundSummary: SummarizeRound(round, e.names)})
}

func (e *Events) Result(result tabulation.Result) {
	e.publish(EventResult, Summarize(e.runID, result, e.names))
}

func (e *Events) publish(event string, msg any) {
	ctx, cancel := context.WithTimeout(e.ctx, e.timeout)
	defer cancel()

	subject := e.Subject(event)

	err := e.publisher.Publish(ctx, subject, msg)
	if err != nil {
		e.logger.WithError(err).WithField("subject", subject).Warn("Failed to publish event")
	}
}
