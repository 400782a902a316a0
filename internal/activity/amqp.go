package activity

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const DefaultQueue = "activity.records"

// Publisher sends journal lines to a durable RabbitMQ queue.
type Publisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewPublisher(url, queue string) (*Publisher, error) {
	if queue == "" {
		queue = DefaultQueue
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if _, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, queue: queue}, nil
}

func (p *Publisher) Publish(ctx context.Context, line string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "text/plain",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         []byte(line),
		},
	)
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

type linePublisher interface {
	Publish(ctx context.Context, line string) error
}

// MirrorJournal writes to a primary journal and forwards every stored line
// to a publisher. Forwarding is best effort; reads come from the primary.
type MirrorJournal struct {
	primary Journal
	pub     linePublisher
	logger  logger.Logger
}

func NewMirrorJournal(primary Journal, pub linePublisher, log logger.Logger) *MirrorJournal {
	return &MirrorJournal{primary: primary, pub: pub, logger: log}
}

func (j *MirrorJournal) Append(ctx context.Context, line string) error {
	if err := j.primary.Append(ctx, line); err != nil {
		return err
	}

	if err := j.pub.Publish(ctx, line); err != nil {
		j.logger.Error("failed to mirror activity record",
			logger.String("error", err.Error()),
		)
	}
	return nil
}

func (j *MirrorJournal) Tail(ctx context.Context, n int) ([]string, error) {
	return j.primary.Tail(ctx, n)
}
