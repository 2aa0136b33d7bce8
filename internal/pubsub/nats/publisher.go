package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/runoff/internal/core"
	"github.com/zhulik/runoff/pkg/json"
)

const (
	maxBytes = 10 * 1024 * 1024 // 10MB
	maxMsgs  = 1000
	maxAge   = 24 * time.Hour
)

// StreamConfig is the stream that captures every subject under the given prefix.
func StreamConfig(subject string) jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:      core.RoundsStreamName,
		Subjects:  []string{subject + ".>"},
		Storage:   jetstream.MemoryStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    maxAge,
		MaxMsgs:   maxMsgs,
		MaxBytes:  maxBytes,
		Replicas:  1,
	}
}

type Publisher struct {
	nats *Client

	logger logrus.FieldLogger
}

func NewPublisher(injector *do.Injector) (*Publisher, error) {
	ctx, err := do.Invoke[context.Context](injector)
	if err != nil {
		return nil, err
	}

	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	logger = logger.WithField("component", "pubsub.nats.Publisher")

	natsClient, err := do.Invoke[*Client](injector)
	if err != nil {
		return nil, err
	}

	publisher := &Publisher{
		nats:   natsClient,
		logger: logger,
	}

	ctx, cancel := context.WithTimeout(ctx, config.PublishTimeout())
	defer cancel()

	err = publisher.createOrUpdateStreams(ctx, StreamConfig(config.NATSSubject()))
	if err != nil {
		return nil, err
	}

	return publisher, nil
}

func (p Publisher) HealthCheck() error {
	p.logger.Debug("Publisher health check...")

	err := p.nats.HealthCheck()
	if err != nil {
		return fmt.Errorf("healthcheck failed: %w", err)
	}

	return nil
}

// Publish marshals msg to JSON and publishes it, []byte is sent as is.
func (p Publisher) Publish(ctx context.Context, subject string, msg any) error {
	payload, ok := msg.([]byte)
	if !ok {
		var err error

		payload, err = json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to marshal message: %w", err)
		}
	}

	_, err := p.nats.JetStream.Publish(ctx, subject, payload)
	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}

	p.logger.WithField("subject", subject).Debug("Message published")

	return nil
}

func (p Publisher) createOrUpdateStreams(ctx context.Context, streams ...jetstream.StreamConfig) error {
	for _, stream := range streams {
		logger := p.logger.WithField("streamName", stream.Name)

		_, err := p.nats.JetStream.CreateOrUpdateStream(ctx, stream)
		if err != nil {
			return fmt.Errorf("failed to create or update stream: %w", err)
		}

		logger.Info("Stream created or updated")
	}

	return nil
}
