package core

const (
	// StdinFileName makes the tabulator read CSV from standard input.
	StdinFileName = "-"

	FormatJSON = "json"

	RoundsStreamName = "runoff"

	ComponentNameTabulator = "tabulator"
)
