// Package submit carries finalized sale documents to the fiscal submission
// queue. The register core only sees the Submitter interface; whether a
// broker is behind it is deployment configuration.
package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"ventapos/internal/pos"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes one persistent JSON message per confirmed sale to
// a durable queue.
type AMQPPublisher struct {
	conn  *amqp.Connection
	queue string
}

func DialAMQP(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	// Declare up front so the first sale of the day cannot race the queue.
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &AMQPPublisher{conn: conn, queue: queue}, nil
}

func (p *AMQPPublisher) Submit(ctx context.Context, doc pos.Document) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	err = ch.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key (queue name)
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("publish document: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error { return p.conn.Close() }

// LogPublisher is the no-broker fallback: the payload ends up in the log and
// nowhere else. Used in development and in tests.
type LogPublisher struct{}

func (LogPublisher) Submit(_ context.Context, doc pos.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	log.Printf("[submit] docType=%d total=%s payload=%s",
		doc.Header.DocType, doc.Totals.Total, string(b))
	return nil
}
