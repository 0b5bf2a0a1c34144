package adapter

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPChannel defines the subset of an AMQP channel used for publishing, to enable mocking
//
//go:generate mockgen -source=amqp.go -destination=../mocks/amqp.go -package=mocks -mock_names=AMQPChannel=MockAMQPChannel,AMQPConn=MockAMQPConn,AMQPDialer=MockAMQPDialer
type AMQPChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPConn defines the subset of an AMQP connection used by publishers
type AMQPConn interface {
	Channel() (AMQPChannel, error)
	NotifyClose(receiver chan *amqp.Error) chan *amqp.Error
	IsClosed() bool
	Close() error
}

// AMQPDialer opens AMQP connections
type AMQPDialer interface {
	Dial(url string) (AMQPConn, error)
}

// RealAMQPDialer implements AMQPDialer using rabbitmq/amqp091-go
type RealAMQPDialer struct{}

// NewAMQPDialer creates a new real AMQP dialer
func NewAMQPDialer() AMQPDialer {
	return &RealAMQPDialer{}
}

func (d *RealAMQPDialer) Dial(url string) (AMQPConn, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return &amqpConnAdapter{conn: conn}, nil
}

// amqpConnAdapter adapts *amqp.Connection so Channel returns our interface
type amqpConnAdapter struct {
	conn *amqp.Connection
}

func (a *amqpConnAdapter) Channel() (AMQPChannel, error) {
	ch, err := a.conn.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (a *amqpConnAdapter) NotifyClose(receiver chan *amqp.Error) chan *amqp.Error {
	return a.conn.NotifyClose(receiver)
}

func (a *amqpConnAdapter) IsClosed() bool {
	return a.conn.IsClosed()
}

func (a *amqpConnAdapter) Close() error {
	return a.conn.Close()
}
