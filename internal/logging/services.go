package logging

import (
	"fmt"
	"os"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/runoff/internal/core"
)

// Register provides the logger. It writes to stderr so reports on stdout stay machine-readable.
func Register(injector *do.Injector) {
	do.Provide(injector, func(injector *do.Injector) (logrus.FieldLogger, error) {
		config, err := do.Invoke[core.Config](injector)
		if err != nil {
			return nil, err
		}

		return New(config.LogLevel())
	})
}

func New(level string) (*logrus.Logger, error) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: failed parse loglevel: %w", core.ErrInvalidConfig, err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logLevel)

	return logger, nil
}
