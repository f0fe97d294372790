package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

// Publisher sends domain events to a durable topic exchange.
// One connection is shared; every publish opens its own channel.
type Publisher struct {
	conn     connection
	exchange string
	timeout  time.Duration
	log      Logger
	now      func() time.Time
}

// NewPublisher dials the broker and declares the exchange
func NewPublisher(url, exchange string, timeout time.Duration, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	p, err := newPublisher(&amqpConnection{conn: conn}, exchange, timeout, log)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return p, nil
}

func newPublisher(conn connection, exchange string, timeout time.Duration, log Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	return &Publisher{
		conn:     conn,
		exchange: exchange,
		timeout:  timeout,
		log:      log,
		now:      time.Now,
	}, nil
}

func (p *Publisher) PublishReservationBooked(ctx context.Context, event ReservationBooked) error {
	return p.publish(ctx, RoutingReservationBooked, event)
}

func (p *Publisher) PublishReservationCancelled(ctx context.Context, event ReservationCancelled) error {
	return p.publish(ctx, RoutingReservationCancelled, event)
}

func (p *Publisher) PublishCouponIssued(ctx context.Context, event CouponIssued) error {
	return p.publish(ctx, RoutingCouponIssued, event)
}

// Close closes the broker connection
func (p *Publisher) Close() error {
	return p.conn.Close()
}

func (p *Publisher) publish(ctx context.Context, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMarshal, routingKey, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	ch, err := p.conn.Channel()
	if err != nil {
		p.log.Error("events: open channel for %s: %v", routingKey, err)
		return fmt.Errorf("%w: %s: open channel: %v", ErrPublish, routingKey, err)
	}
	defer func() { _ = ch.Close() }()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Type:         routingKey,
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		p.log.Error("events: publish %s: %v", routingKey, err)
		return fmt.Errorf("%w: %s: %v", ErrPublish, routingKey, err)
	}

	p.log.Info("events: published %s", routingKey)
	return nil
}
