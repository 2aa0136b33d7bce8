package cli

import (
	"github.com/urfave/cli/v3"
	"github.com/zhulik/runoff/internal/cli/flags"
	"github.com/zhulik/runoff/internal/config"
)

// loadConfig reads the environment and lets explicitly set flags and the FILE argument override it.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	overrides := map[string]*string{
		flags.FlagNameStart:      &cfg.Start,
		flags.FlagNameEnd:        &cfg.End,
		flags.FlagNameFormat:     &cfg.OutputFormat,
		flags.FlagNameLogLevel:   &cfg.Loglevel,
		flags.FlagNameExtraction: &cfg.ChoiceExtraction,
	}

	for name, target := range overrides {
		if cmd.IsSet(name) {
			*target = cmd.String(name)
		}
	}

	if cmd.Args().Present() {
		cfg.File = cmd.Args().First()
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
