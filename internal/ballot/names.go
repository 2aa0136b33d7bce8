package ballot

import (
	"fmt"
	"maps"
)

const UnknownName = "Unknown"

//nolint:gochecknoglobals
var defaultNames = Names{
	1: "Medieval Fantasy",
	2: "Alternate Universe",
	3: "Steampunk",
	4: "Vestiges",
	5: "Invasion",
}

// Names maps choices to human-readable names. It is built once at startup and only read afterwards.
type Names map[Choice]string

func DefaultNames() Names {
	return maps.Clone(defaultNames)
}

// NewNames builds a table from configured names, falling back to the default table when none are given.
func NewNames(names map[int]string) Names {
	if len(names) == 0 {
		return DefaultNames()
	}

	table := make(Names, len(names))

	for id, name := range names {
		table[Choice(id)] = name
	}

	return table
}

func (n Names) Name(choice Choice) string {
	name, ok := n[choice]
	if !ok {
		return UnknownName
	}

	return name
}

// Label is the name followed by the identifier, "Steampunk (3)".
func (n Names) Label(choice Choice) string {
	return fmt.Sprintf("%s (%d)", n.Name(choice), choice)
}
