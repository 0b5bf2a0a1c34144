package bridge

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/host"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/market"
	"github.com/feral-file/ff-market/internal/messaging"
	natsprovider "github.com/feral-file/ff-market/internal/providers/jetstream"
)

// Config holds the configuration for the presence bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	Subject        string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
	// Secret verifies signed presence messages when set; unsigned messages are then rejected
	Secret string
}

// PresenceMessage is published by the host application when an actor joins or leaves
type PresenceMessage struct {
	ActorID uuid.UUID `json:"actor_id"`
	Name    string    `json:"name"`
	Present bool      `json:"present"`
}

// PresenceHandler reacts to actors joining and leaving
//
//go:generate mockgen -source=bridge.go -destination=../mocks/bridge.go -package=mocks -mock_names=PresenceHandler=MockPresenceHandler,Bridge=MockBridge
type PresenceHandler interface {
	OnActorPresent(ctx context.Context, actor domain.ActorID) (*market.Delivery, error)
	OnActorAbsent(ctx context.Context, actor domain.ActorID)
}

// Bridge defines the interface for the presence bridge
type Bridge interface {
	// Run consumes presence messages until the context is canceled
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc       adapter.NatsConn
	js       adapter.JetStream
	presence host.PresenceTracker
	handler  PresenceHandler
	json     adapter.JSON
	config   Config
}

// NewBridge connects to NATS and creates a presence bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	presence host.PresenceTracker,
	handler PresenceHandler,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	opts := natsprovider.ConnectOptions(natsprovider.Config{
		ConnectionName: cfg.ConnectionName,
		MaxReconnects:  cfg.MaxReconnects,
		ReconnectWait:  cfg.ReconnectWait,
	})

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:       nc,
		js:       js,
		presence: presence,
		handler:  handler,
		json:     jsonAdapter,
		config:   cfg,
	}, nil
}

// Run starts the presence bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting presence bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName),
		zap.String("subject", b.config.Subject),
	)

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: b.config.Subject,
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.InfoCtx(ctx, "Started consuming presence messages")

	// Messages of one actor must be applied in order, so they are handled one at a time
	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down presence bridge")
			return ctx.Err()
		case msg := <-msgChan:
			b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single NATS message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	if !b.verify(msg) {
		logger.WarnCtx(ctx, "Rejecting presence message with an invalid signature", zap.String("subject", msg.Subject()))
		terminate(msg)
		return
	}

	var presence PresenceMessage
	if err := b.json.Unmarshal(msg.Data(), &presence); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal presence message"))
		// Terminate message for unparseable data
		terminate(msg)
		return
	}
	if presence.ActorID == uuid.Nil {
		logger.WarnCtx(ctx, "Presence message without actor", zap.String("subject", msg.Subject()))
		terminate(msg)
		return
	}

	if err := b.apply(ctx, presence); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to apply presence change"), logger.Actor(presence.ActorID))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	// ACK message after successful processing
	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
	}
}

func (b *bridge) apply(ctx context.Context, presence PresenceMessage) error {
	if !presence.Present {
		b.presence.SetAbsent(presence.ActorID)
		b.handler.OnActorAbsent(ctx, presence.ActorID)
		return nil
	}

	if b.presence.SetPresent(domain.Actor{ID: presence.ActorID, Name: presence.Name}) {
		logger.InfoCtx(ctx, "Actor joined", logger.Actor(presence.ActorID), zap.String("name", presence.Name))
	}

	// Delivery is exactly-once, so redelivered messages are harmless
	delivery, err := b.handler.OnActorPresent(ctx, presence.ActorID)
	if err != nil {
		return err
	}
	if delivery != nil && len(delivery.Requeued) > 0 {
		logger.WarnCtx(ctx, "Some pending goods could not be delivered", logger.Actor(presence.ActorID), zap.Int("requeued", len(delivery.Requeued)))
	}
	return nil
}

// verify checks the message signature when a secret is configured
func (b *bridge) verify(msg adapter.Message) bool {
	if b.config.Secret == "" {
		return true
	}

	headers := msg.Headers()
	if headers == nil {
		return false
	}
	timestamp, err := strconv.ParseInt(headers.Get(messaging.HeaderTimestamp), 10, 64)
	if err != nil {
		return false
	}
	return messaging.Verify(b.config.Secret, timestamp, headers.Get(messaging.HeaderEventID), msg.Data(), headers.Get(messaging.HeaderSignature))
}

func terminate(msg adapter.Message) {
	if err := msg.Term(); err != nil {
		logger.Error(err, zap.String("message", "Failed to terminate message"))
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
