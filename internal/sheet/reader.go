package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zhulik/runoff/internal/core"
)

// Row is one ballot row cut out of the region.
type Row struct {
	// Number is the 1-based sheet row.
	Number int
	Fields []string
}

// OpenRegion reads the region from a CSV file, "-" reads standard input.
func OpenRegion(path string, region Region) ([]Row, error) {
	if path == core.StdinFileName {
		return ReadRegion(os.Stdin, region)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrSourceUnavailable, err)
	}
	defer file.Close()

	rows, err := ReadRegion(file, region)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return rows, nil
}

// ReadRegion reads CSV records and returns the region's cells. Rows past the end of the input are absent.
func ReadRegion(r io.Reader, region Region) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	_, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: failed to read header: %w", core.ErrSourceUnavailable, err)
	}

	rows := make([]Row, 0, region.Rows())

	for index := 0; len(rows) < region.Rows(); index++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrSourceUnavailable, err)
		}

		if index < region.firstRecord() {
			continue
		}

		rows = append(rows, Row{
			Number: region.Start.Row + len(rows),
			Fields: cut(record, region.FirstField(), region.Cols()),
		})
	}

	return rows, nil
}

func cut(record []string, from, count int) []string {
	if from >= len(record) {
		return []string{}
	}

	to := min(from+count, len(record))

	return append([]string(nil), record[from:to]...)
}
