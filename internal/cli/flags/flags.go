package flags

import (
	"github.com/urfave/cli/v3"
)

const (
	FlagNameStart      = "start"
	FlagNameEnd        = "end"
	FlagNameFormat     = "format"
	FlagNameLogLevel   = "log-level"
	FlagNameExtraction = "extraction"
)

// Flags have no defaults of their own, unset flags keep the value from the environment.
var (
	Start = &cli.StringFlag{
		Name:    FlagNameStart,
		Aliases: []string{"s"},
		Usage:   "Top-left ballot cell `REF`, eg R3.",
	}

	End = &cli.StringFlag{
		Name:    FlagNameEnd,
		Aliases: []string{"e"},
		Usage:   "Bottom-right ballot cell `REF`, eg V18.",
	}

	Format = &cli.StringFlag{
		Name:    FlagNameFormat,
		Aliases: []string{"f"},
		Usage:   "Set output format to `FORMAT`: text or json.",
	}

	LogLevel = &cli.StringFlag{
		Name:    FlagNameLogLevel,
		Aliases: []string{"l"},
		Usage:   "Set log level to `LEVEL`.",
	}

	Extraction = &cli.StringFlag{
		Name:    FlagNameExtraction,
		Aliases: []string{"x"},
		Usage:   "Read choices from labels by `MODE`: number (whole trailing number) or digit (last digit).",
	}

	All = []cli.Flag{
		Start,
		End,
		Format,
		LogLevel,
		Extraction,
	}
)
