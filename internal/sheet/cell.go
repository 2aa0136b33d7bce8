package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zhulik/runoff/internal/core"
)

// Alphabet lists the column letters a cell reference may use. H is not one of them.
const Alphabet = "ABCDEFGIJKLMNOPQRSTUVWXYZ"

// headerRow is the CSV header, it never holds a ballot.
const headerRow = 1

// CellRef is a parsed reference like "R3".
type CellRef struct {
	// Col is the position of the column letter in Alphabet.
	Col int
	// Row is the 1-based sheet row.
	Row int
}

func ParseCellRef(ref string) (CellRef, error) {
	if ref == "" {
		return CellRef{}, fmt.Errorf("%w: empty reference", core.ErrInvalidCellReference)
	}

	col := strings.IndexByte(Alphabet, ref[0])
	if col < 0 {
		return CellRef{}, fmt.Errorf("%w: %q has unknown column %q", core.ErrInvalidCellReference, ref, ref[0])
	}

	row, err := strconv.ParseUint(ref[1:], 10, 31)
	if err != nil || row == 0 {
		return CellRef{}, fmt.Errorf("%w: %q has bad row %q", core.ErrInvalidCellReference, ref, ref[1:])
	}

	return CellRef{Col: col, Row: int(row)}, nil
}

func (c CellRef) String() string {
	return fmt.Sprintf("%c%d", Alphabet[c.Col], c.Row)
}

// Region is an inclusive rectangle of ballot cells.
type Region struct {
	Start CellRef
	End   CellRef
}

func NewRegion(start, end string) (Region, error) {
	startRef, err := ParseCellRef(start)
	if err != nil {
		return Region{}, err
	}

	endRef, err := ParseCellRef(end)
	if err != nil {
		return Region{}, err
	}

	region := Region{Start: startRef, End: endRef}

	switch {
	case endRef.Row < startRef.Row || endRef.Col < startRef.Col:
		return Region{}, fmt.Errorf("%w: region end %s precedes start %s", core.ErrInvalidCellReference, endRef, startRef)
	case startRef.Row <= headerRow:
		return Region{}, fmt.Errorf("%w: region %s overlaps the header row", core.ErrInvalidCellReference, region)
	}

	return region, nil
}

func (r Region) String() string {
	return fmt.Sprintf("%s:%s", r.Start, r.End)
}

// Rows is the number of sheet rows the region spans.
func (r Region) Rows() int {
	return r.End.Row - r.Start.Row + 1
}

// Cols is the number of fields taken from every row.
func (r Region) Cols() int {
	return r.End.Col - r.Start.Col + 1
}

// FirstField is the index of the first ballot field in a CSV record.
// Skipping the leading metadata column happens to line up with the letters since H is missing from Alphabet.
func (r Region) FirstField() int {
	return r.Start.Col + 1
}

// firstRecord is the index of the first ballot among the records that follow the header.
func (r Region) firstRecord() int {
	return r.Start.Row - headerRow - 1
}
