package core

import (
	"context"
	"time"
)

type Config interface {
	ResponsesFile() string
	RangeStart() string
	RangeEnd() string

	LogLevel() string
	Format() string

	Extraction() string
	CandidateNames() map[int]string

	NATSURL() string
	NATSSubject() string
	PublishTimeout() time.Duration
}

// Publisher sends a JSON-encoded message to a subject.
type Publisher interface {
	Publish(ctx context.Context, subject string, msg any) error
}
