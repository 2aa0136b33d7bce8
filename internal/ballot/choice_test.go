package ballot_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/zhulik/runoff/internal/ballot"
	"github.com/zhulik/runoff/internal/core"
)

var _ = Describe("ParseChoice", func() {
	DescribeTable("with number extraction",
		func(raw string, expected ballot.Choice) {
			choice, err := ballot.ParseChoice(raw, ballot.ExtractNumber)

			Expect(err).ToNot(HaveOccurred())
			Expect(choice).To(Equal(expected))
		},
		Entry("bare digit", "3", ballot.Choice(3)),
		Entry("label with trailing number", "Steampunk 3", ballot.Choice(3)),
		Entry("multi-digit number", "Option 12", ballot.Choice(12)),
		Entry("number followed by text", "Choice 4 (Vestiges)", ballot.Choice(4)),
		Entry("last number wins", "1st choice: 5", ballot.Choice(5)),
	)

	DescribeTable("with digit extraction",
		func(raw string, expected ballot.Choice) {
			choice, err := ballot.ParseChoice(raw, ballot.ExtractDigit)

			Expect(err).ToNot(HaveOccurred())
			Expect(choice).To(Equal(expected))
		},
		Entry("bare digit", "3", ballot.Choice(3)),
		Entry("multi-digit number keeps the last digit", "Option 12", ballot.Choice(2)),
		Entry("number followed by text", "Choice 4 (Vestiges)", ballot.Choice(4)),
	)

	Context("when the field has no digits", func() {
		It("returns an error", func() {
			_, err := ballot.ParseChoice("Steampunk", ballot.ExtractNumber)

			Expect(err).To(MatchError(core.ErrMalformedBallotField))
		})
	})

	Context("when the field is empty", func() {
		It("returns an error", func() {
			_, err := ballot.ParseChoice("", ballot.ExtractDigit)

			Expect(err).To(MatchError(core.ErrMalformedBallotField))
		})
	})

	DescribeTable("when the last numeric character is not a decimal digit",
		func(raw string, extraction ballot.Extraction) {
			_, err := ballot.ParseChoice(raw, extraction)

			Expect(err).To(MatchError(core.ErrMalformedBallotField))
		},
		Entry("arabic-indic digit", "Option ٣", ballot.ExtractNumber),
		Entry("superscript after a digit", "Option 3²", ballot.ExtractNumber),
		Entry("superscript after a digit with digit extraction", "Option 3²", ballot.ExtractDigit),
		Entry("fraction after a digit", "Option 3½", ballot.ExtractDigit),
	)

	It("ignores non-numeric characters after the number", func() {
		Expect(ballot.ParseChoice("Option 3 ✓", ballot.ExtractDigit)).To(Equal(ballot.Choice(3)))
	})
})

var _ = Describe("ParseExtraction", func() {
	It("parses known names", func() {
		Expect(ballot.ParseExtraction("number")).To(Equal(ballot.ExtractNumber))
		Expect(ballot.ParseExtraction("digit")).To(Equal(ballot.ExtractDigit))
		Expect(ballot.ParseExtraction("")).To(Equal(ballot.ExtractNumber))
	})

	It("rejects unknown names", func() {
		_, err := ballot.ParseExtraction("roman")

		Expect(err).To(MatchError(core.ErrInvalidConfig))
	})
})

var _ = Describe("Names", func() {
	Describe("Name", func() {
		It("returns known names", func() {
			Expect(ballot.DefaultNames().Name(3)).To(Equal("Steampunk"))
		})

		It("falls back to Unknown", func() {
			Expect(ballot.DefaultNames().Name(42)).To(Equal(ballot.UnknownName))
		})
	})

	Describe("NewNames", func() {
		Context("when no names given", func() {
			It("uses the default table", func() {
				Expect(ballot.NewNames(nil)).To(Equal(ballot.DefaultNames()))
			})
		})

		Context("when names given", func() {
			It("replaces the default table", func() {
				names := ballot.NewNames(map[int]string{7: "Pirates"})

				Expect(names.Name(7)).To(Equal("Pirates"))
				Expect(names.Name(1)).To(Equal(ballot.UnknownName))
			})
		})
	})

	Describe("Label", func() {
		It("includes the identifier", func() {
			Expect(ballot.DefaultNames().Label(1)).To(Equal("Medieval Fantasy (1)"))
		})
	})

	It("does not leak the default table", func() {
		names := ballot.DefaultNames()
		names[1] = "Changed"

		Expect(ballot.DefaultNames().Name(1)).To(Equal("Medieval Fantasy"))
	})
})
