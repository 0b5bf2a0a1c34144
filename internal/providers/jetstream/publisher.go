package jetstream

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	SigningSecret  string
}

type publisher struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	config Config
	json   adapter.JSON
}

// ConnectOptions returns the NATS options shared by every market connection
func ConnectOptions(cfg Config) []nats.Option {
	return []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	nc, js, err := natsJS.Connect(cfg.URL, ConnectOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &publisher{
		nc:     nc,
		js:     js,
		config: cfg,
		json:   jsonAdapter,
	}, nil
}

// PublishEvent publishes a market event to NATS JetStream.
// The event id doubles as the JetStream message id so retried publishes are deduplicated.
func (p *publisher) PublishEvent(ctx context.Context, event *domain.MarketEvent) error {
	logger.DebugCtx(ctx, "Publishing Nats event", zap.String("kind", string(event.Kind)), zap.String("id", event.ID))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := nats.NewMsg(p.buildSubject(event))
	msg.Data = data
	msg.Header.Set(messaging.HeaderEventID, event.ID)
	msg.Header.Set(messaging.HeaderEventKind, string(event.Kind))
	if p.config.SigningSecret != "" {
		timestamp := event.Timestamp.Unix()
		msg.Header.Set(messaging.HeaderTimestamp, strconv.FormatInt(timestamp, 10))
		msg.Header.Set(messaging.HeaderSignature, messaging.Sign(p.config.SigningSecret, timestamp, event.ID, data))
	}

	_, err = p.js.PublishMsg(ctx, msg, jetstream.WithMsgID(event.ID))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject based on the event
func (p *publisher) buildSubject(event *domain.MarketEvent) string {
	// Format: {prefix}.{routing_key}
	// e.g., market.listing.created, market.actor.{actor_id}.balance.changed
	return fmt.Sprintf("%s.%s", p.config.SubjectPrefix, messaging.RoutingKey(event))
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
