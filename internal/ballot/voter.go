package ballot

import (
	"fmt"
	"slices"
)

// Voter is a queue of standing preferences, most preferred first.
type Voter struct {
	choices []Choice
}

func NewVoter(choices ...Choice) *Voter {
	return &Voter{
		choices: slices.Clone(choices),
	}
}

// FieldError reports the field that failed a ballot.
type FieldError struct {
	Index int
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %d: %s", e.Index+1, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

type parseOptions struct {
	extraction Extraction
}

type ParseOption func(*parseOptions)

func WithExtraction(extraction Extraction) ParseOption {
	return func(o *parseOptions) {
		o.extraction = extraction
	}
}

// Parse turns raw ballot fields into a voter, keeping their order. One malformed field fails the ballot.
func Parse(fields []string, opts ...ParseOption) (*Voter, error) {
	options := &parseOptions{
		extraction: ExtractNumber,
	}

	for _, opt := range opts {
		opt(options)
	}

	choices := make([]Choice, len(fields))

	for i, field := range fields {
		choice, err := ParseChoice(field, options.extraction)
		if err != nil {
			return nil, &FieldError{
				Index: i,
				Field: field,
				Err:   err,
			}
		}

		choices[i] = choice
	}

	return &Voter{choices: choices}, nil
}

// Front returns the current first preference, false when the ballot is exhausted.
func (v *Voter) Front() (Choice, bool) {
	if len(v.choices) == 0 {
		return 0, false
	}

	return v.choices[0], true
}

func (v *Voter) Exhausted() bool {
	return len(v.choices) == 0
}

func (v *Voter) Len() int {
	return len(v.choices)
}

func (v *Voter) Choices() []Choice {
	return slices.Clone(v.choices)
}

// Discard pops leading preferences while they are eliminated and returns how many were removed.
func (v *Voter) Discard(eliminated func(Choice) bool) int {
	removed := 0

	for len(v.choices) > 0 && eliminated(v.choices[0]) {
		v.choices = v.choices[1:]
		removed++
	}

	return removed
}
