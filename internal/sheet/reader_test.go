package sheet_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/zhulik/runoff/internal/core"
	"github.com/zhulik/runoff/internal/sheet"
)

// Sheet rows 2..5, the header is row 1.
const responses = `Timestamp,Email,First,Second,Third
t1,a@x,Steampunk 3,Vestiges 4,Invasion 5
t2,b@x,Medieval Fantasy 1,Steampunk 3,Vestiges 4
t3,c@x,Invasion 5,Alternate Universe 2,Steampunk 3
t4,d@x,Vestiges 4,Medieval Fantasy 1,Alternate Universe 2
`

var _ = Describe("ReadRegion", func() {
	Context("when the region is inside the data", func() {
		It("returns the selected cells with sheet row numbers", func() {
			// B is the second letter, the first field is record index 2.
			region := lo.Must(sheet.NewRegion("B3", "C4"))

			rows, err := sheet.ReadRegion(strings.NewReader(responses), region)

			Expect(err).ToNot(HaveOccurred())
			Expect(rows).To(Equal([]sheet.Row{
				{Number: 3, Fields: []string{"Medieval Fantasy 1", "Steampunk 3"}},
				{Number: 4, Fields: []string{"Invasion 5", "Alternate Universe 2"}},
			}))
		})
	})

	Context("when the region starts right after the header", func() {
		It("returns the first data row", func() {
			region := lo.Must(sheet.NewRegion("B2", "D2"))

			rows := lo.Must(sheet.ReadRegion(strings.NewReader(responses), region))

			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Number).To(Equal(2))
			Expect(rows[0].Fields).To(Equal([]string{"Steampunk 3", "Vestiges 4", "Invasion 5"}))
		})
	})

	Context("when the region goes past the end of the data", func() {
		It("returns the rows that exist", func() {
			region := lo.Must(sheet.NewRegion("B4", "D40"))

			rows := lo.Must(sheet.ReadRegion(strings.NewReader(responses), region))

			Expect(rows).To(HaveLen(2))
			Expect(rows[1].Number).To(Equal(5))
		})
	})

	Context("when the region goes past the last column", func() {
		It("returns the fields that exist", func() {
			region := lo.Must(sheet.NewRegion("C2", "F2"))

			rows := lo.Must(sheet.ReadRegion(strings.NewReader(responses), region))

			Expect(rows[0].Fields).To(Equal([]string{"Vestiges 4", "Invasion 5"}))
		})
	})

	Context("when the input is empty", func() {
		It("returns no rows", func() {
			rows, err := sheet.ReadRegion(strings.NewReader(""), lo.Must(sheet.NewRegion("B2", "D3")))

			Expect(err).ToNot(HaveOccurred())
			Expect(rows).To(BeEmpty())
		})
	})

	Context("when rows have different lengths", func() {
		It("keeps the short rows", func() {
			input := "a,b,c\n1,2\n"

			rows := lo.Must(sheet.ReadRegion(strings.NewReader(input), lo.Must(sheet.NewRegion("A2", "B2"))))

			Expect(rows).To(Equal([]sheet.Row{{Number: 2, Fields: []string{"2"}}}))
		})
	})

	Context("when the CSV is malformed", func() {
		It("returns an error", func() {
			input := "a,b,c\n1,\"x\"y,3\n"

			_, err := sheet.ReadRegion(strings.NewReader(input), lo.Must(sheet.NewRegion("A2", "B2")))

			Expect(err).To(MatchError(core.ErrSourceUnavailable))
		})
	})
})

var _ = Describe("OpenRegion", func() {
	Context("when the file exists", func() {
		It("reads the region", func() {
			path := filepath.Join(GinkgoT().TempDir(), "responses.csv")
			lo.Must0(os.WriteFile(path, []byte(responses), 0o600))

			rows, err := sheet.OpenRegion(path, lo.Must(sheet.NewRegion("B2", "D5")))

			Expect(err).ToNot(HaveOccurred())
			Expect(rows).To(HaveLen(4))
		})
	})

	Context("when the file does not exist", func() {
		It("returns an error", func() {
			_, err := sheet.OpenRegion("does-not-exist.csv", lo.Must(sheet.NewRegion("B2", "D5")))

			Expect(err).To(MatchError(core.ErrSourceUnavailable))
		})
	})
})
