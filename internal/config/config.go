package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/zhulik/runoff/internal/core"
)

var validate = validator.New() //nolint:gochecknoglobals

type Config struct {
	File  string `env:"RESPONSES_FILE" envDefault:"responses.csv" validate:"required"`
	Start string `env:"RANGE_START"    envDefault:"R3"            validate:"required,alphanum"`
	End   string `env:"RANGE_END"      envDefault:"V18"           validate:"required,alphanum"`

	Loglevel     string `env:"LOG_LEVEL"     envDefault:"info"   validate:"required"`
	OutputFormat string `env:"OUTPUT_FORMAT" envDefault:"text"   validate:"required,oneof=text json"`

	ChoiceExtraction string            `env:"CHOICE_EXTRACTION" envDefault:"number" validate:"required,oneof=number digit"`
	Names            map[string]string `env:"CANDIDATE_NAMES"   validate:"dive,keys,numeric,endkeys,required"`

	NatsURL string        `env:"NATS_URL"`
	Subject string        `env:"NATS_SUBJECT"         envDefault:"runoff" validate:"required"`
	Timeout time.Duration `env:"NATS_PUBLISH_TIMEOUT" envDefault:"2s"     validate:"gt=0"`
}

// Load reads the config from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the config from the given variables only, ignoring the process environment.
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}

	err := env.ParseWithOptions(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}

	return nil
}

func (c *Config) ResponsesFile() string {
	return c.File
}

func (c *Config) RangeStart() string {
	return c.Start
}

func (c *Config) RangeEnd() string {
	return c.End
}

func (c *Config) LogLevel() string {
	return c.Loglevel
}

func (c *Config) Format() string {
	return c.OutputFormat
}

func (c *Config) Extraction() string {
	return c.ChoiceExtraction
}

// CandidateNames returns nil when no names were configured, keys are validated to be numeric.
func (c *Config) CandidateNames() map[int]string {
	if len(c.Names) == 0 {
		return nil
	}

	names := make(map[int]string, len(c.Names))

	for key, name := range c.Names {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}

		names[id] = name
	}

	return names
}

func (c *Config) NATSURL() string {
	return c.NatsURL
}

func (c *Config) NATSSubject() string {
	return c.Subject
}

func (c *Config) PublishTimeout() time.Duration {
	return c.Timeout
}
