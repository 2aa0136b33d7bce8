package cli

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/do"
	"github.com/samber/lo"
)

type shutdownRecorder struct {
	calls int
}

func (r *shutdownRecorder) Shutdown() error {
	r.calls++

	return nil
}

var _ = Describe("execute", func() {
	Context("when the tabulator cannot be built", func() {
		It("shuts down services that were already built", func(ctx SpecContext) {
			injector := do.New()

			recorder := &shutdownRecorder{}
			do.ProvideValue(injector, recorder)
			lo.Must(do.Invoke[*shutdownRecorder](injector))

			err := execute(ctx, injector)

			Expect(err).To(HaveOccurred())
			Expect(recorder.calls).To(Equal(1))
		})
	})
})
