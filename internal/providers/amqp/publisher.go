package amqp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/messaging"
)

const exchangeKind = "topic"

var errPublisherClosed = errors.New("amqp publisher closed")

// Config holds the configuration for the RabbitMQ connection
type Config struct {
	URL           string
	Exchange      string
	SigningSecret string
}

type publisher struct {
	config Config
	dialer adapter.AMQPDialer
	json   adapter.JSON

	mu      sync.Mutex
	conn    adapter.AMQPConn
	channel adapter.AMQPChannel
	closed  bool
}

// NewPublisher connects to RabbitMQ and declares the durable topic exchange events are published to
func NewPublisher(cfg Config, dialer adapter.AMQPDialer, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	p := &publisher{
		config: cfg,
		dialer: dialer,
		json:   jsonAdapter,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connect(); err != nil {
		return nil, err
	}

	return p, nil
}

// connect dials and opens a channel; callers hold mu
func (p *publisher) connect() error {
	conn, err := p.dialer.Dial(p.config.URL)
	if err != nil {
		return fmt.Errorf("failed to dial RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		p.config.Exchange,
		exchangeKind,
		true,  // durable
		false, // delete when unused
		false, // internal
		false, // no-wait
		nil,   // arguments
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	p.conn = conn
	p.channel = ch

	logger.Info("Connected to RabbitMQ", zap.String("exchange", p.config.Exchange))

	go monitorConnection(conn.NotifyClose(make(chan *amqp.Error, 1)))
	return nil
}

func monitorConnection(notifyClose <-chan *amqp.Error) {
	if err, ok := <-notifyClose; ok && err != nil {
		logger.Error(err, zap.String("message", "RabbitMQ connection closed unexpectedly"))
	}
}

// ensureChannel reconnects after the connection was lost
func (p *publisher) ensureChannel() (adapter.AMQPChannel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, errPublisherClosed
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return p.channel, nil
	}

	logger.Info("Reconnecting to RabbitMQ")
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p.channel, nil
}

// PublishEvent publishes a market event to the exchange with the event routing key
func (p *publisher) PublishEvent(ctx context.Context, event *domain.MarketEvent) error {
	logger.DebugCtx(ctx, "Publishing AMQP event", zap.String("kind", string(event.Kind)), zap.String("id", event.ID))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ch, err := p.ensureChannel()
	if err != nil {
		return err
	}

	headers := amqp.Table{
		messaging.HeaderEventKind: string(event.Kind),
	}
	if p.config.SigningSecret != "" {
		timestamp := event.Timestamp.Unix()
		headers[messaging.HeaderTimestamp] = strconv.FormatInt(timestamp, 10)
		headers[messaging.HeaderSignature] = messaging.Sign(p.config.SigningSecret, timestamp, event.ID, data)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.Timestamp,
		Type:         string(event.Kind),
		Headers:      headers,
		Body:         data,
	}

	if err := ch.PublishWithContext(ctx, p.config.Exchange, messaging.RoutingKey(event), false, false, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Close closes the channel and the connection
func (p *publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			logger.Warn("Failed to close RabbitMQ channel", zap.Error(err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			logger.Warn("Failed to close RabbitMQ connection", zap.Error(err))
		}
	}
}
