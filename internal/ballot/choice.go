package ballot

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zhulik/runoff/internal/core"
)

// Choice identifies a candidate by the number found in its ballot label.
type Choice int

func (c Choice) String() string {
	return strconv.Itoa(int(c))
}

type Extraction int

const (
	// ExtractNumber takes the whole trailing run of digits, "Option 12" is 12.
	ExtractNumber Extraction = iota
	// ExtractDigit takes the last digit only, "Option 12" is 2.
	ExtractDigit
)

const (
	ExtractionNameNumber = "number"
	ExtractionNameDigit  = "digit"
)

func ParseExtraction(name string) (Extraction, error) {
	switch name {
	case ExtractionNameNumber, "":
		return ExtractNumber, nil
	case ExtractionNameDigit:
		return ExtractDigit, nil
	default:
		return 0, fmt.Errorf("%w: unknown choice extraction %q", core.ErrInvalidConfig, name)
	}
}

func (e Extraction) String() string {
	if e == ExtractDigit {
		return ExtractionNameDigit
	}

	return ExtractionNameNumber
}

// ParseChoice scans raw from the end and returns the first number it meets.
// The last numeric character decides: "Option 3²" is malformed since ² is not a decimal digit.
func ParseChoice(raw string, extraction Extraction) (Choice, error) {
	last := strings.LastIndexFunc(raw, unicode.IsNumber)
	if last < 0 {
		return 0, fmt.Errorf("%w: no number in %q", core.ErrMalformedBallotField, raw)
	}

	if numeric, _ := utf8.DecodeRuneInString(raw[last:]); !isDigit(numeric) {
		return 0, fmt.Errorf("%w: %q is not a decimal digit in %q", core.ErrMalformedBallotField, numeric, raw)
	}

	if extraction == ExtractDigit {
		return Choice(raw[last] - '0'), nil
	}

	first := last
	for first > 0 && isDigit(rune(raw[first-1])) {
		first--
	}

	value, err := strconv.Atoi(raw[first : last+1])
	if err != nil {
		return 0, fmt.Errorf("%w: bad number in %q: %w", core.ErrMalformedBallotField, raw, err)
	}

	return Choice(value), nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
