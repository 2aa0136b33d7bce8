package cli

import (
	"context"
	"log"
	"os"

	"github.com/samber/do"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/runoff/internal/cli/flags"
	"github.com/zhulik/runoff/internal/di"
)

const VERSION = "0.1.0"

var cmd = &cli.Command{
	Name:      "runoff",
	Usage:     "Tabulate an instant-runoff election from a CSV export. Reads FILE, or stdin when FILE is -.",
	Version:   VERSION,
	ArgsUsage: "[FILE]",
	Flags:     flags.All,
	Action:    tabulate,
}

func Run() {
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func tabulate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	return execute(ctx, di.New(ctx, cfg))
}

// execute shuts the injector down whatever happens, services built before a failure still get released.
func execute(ctx context.Context, injector *do.Injector) error {
	defer func() {
		err := injector.Shutdown()
		if err != nil {
			log.Printf("failed to shutdown: %s", err)
		}
	}()

	tabulator, err := NewTabulator(injector)
	if err != nil {
		return err
	}

	return tabulator.Run(ctx)
}
