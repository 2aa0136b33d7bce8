package report_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/zhulik/runoff/internal/ballot"
	"github.com/zhulik/runoff/internal/report"
	"github.com/zhulik/runoff/internal/sheet"
)

var _ = Describe("Events", func() {
	var publisher *fakePublisher
	var events *report.Events

	BeforeEach(func() {
		publisher = &fakePublisher{}
		events = report.NewEvents(context.Background(), publisher, "runoff", "run-1", time.Second, ballot.DefaultNames(), quietLogger())
	})

	It("publishes rounds and the result under the run subject", func() {
		events.Ballot(sheet.Row{Number: 3, Fields: []string{"1"}})
		events.Counted(5)
		twoRounds(events)

		Expect(publisher.messages).To(HaveLen(4))
		Expect(publisher.messages[0].Subject).To(Equal("runoff.run-1.counted"))
		Expect(publisher.messages[0].Msg).To(Equal(report.CountedEvent{RunID: "run-1", Total: 5}))
		Expect(publisher.messages[1].Subject).To(Equal("runoff.run-1.round"))
		Expect(publisher.messages[2].Subject).To(Equal("runoff.run-1.round"))
		Expect(publisher.messages[3].Subject).To(Equal("runoff.run-1.result"))

		round, ok := publisher.messages[1].Msg.(report.RoundEvent)
		Expect(ok).To(BeTrue())
		Expect(round.Number).To(Equal(1))
		Expect(round.Eliminated.Name).To(Equal("Alternate Universe"))

		result, ok := publisher.messages[3].Msg.(report.Summary)
		Expect(ok).To(BeTrue())
		Expect(result.Winner.Choice).To(Equal(3))
	})

	Context("when publishing fails", func() {
		It("keeps reporting", func() {
			publisher.fail = true

			result := twoRounds(events)

			Expect(result.Winner.Choice).To(Equal(ballot.Choice(3)))
			Expect(publisher.messages).To(BeEmpty())
		})
	})

	Context("when the run context is cancelled", func() {
		It("drops events and keeps reporting", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			events = report.NewEvents(ctx, publisher, "runoff", "run-1", time.Second, ballot.DefaultNames(), quietLogger())

			result := twoRounds(events)

			Expect(result.Winner.Choice).To(Equal(ballot.Choice(3)))
			Expect(publisher.messages).To(BeEmpty())
		})
	})
})

var _ = Describe("Multi", func() {
	It("forwards events to every reporter", func() {
		first := &fakePublisher{}
		second := &fakePublisher{}

		multi := report.Multi{
			report.NewEvents(context.Background(), first, "a", "run", time.Second, ballot.DefaultNames(), quietLogger()),
			report.NewEvents(context.Background(), second, "b", "run", time.Second, ballot.DefaultNames(), quietLogger()),
		}

		multi.Counted(5)
		twoRounds(multi)

		Expect(first.messages).To(HaveLen(4))
		Expect(second.messages).To(HaveLen(4))
		Expect(second.messages[3].Subject).To(Equal("b.run.result"))
	})
})
