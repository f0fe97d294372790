package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	declared   []string
	published  *[]published
	publishErr error
	closed     bool
}

func (c *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	c.declared = append(c.declared, name+":"+kind)
	return nil
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if c.publishErr != nil {
		return c.publishErr
	}
	*c.published = append(*c.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

type fakeConnection struct {
	channels   []*fakeChannel
	published  []published
	publishErr error
	channelErr error
}

func (c *fakeConnection) Channel() (channel, error) {
	if c.channelErr != nil {
		return nil, c.channelErr
	}
	ch := &fakeChannel{published: &c.published, publishErr: c.publishErr}
	c.channels = append(c.channels, ch)
	return ch, nil
}

func (c *fakeConnection) Close() error {
	return nil
}

func TestPublisher_DeclaresExchange(t *testing.T) {
	conn := &fakeConnection{}

	_, err := newPublisher(conn, "salon.events", time.Second, logger.Nop())
	require.NoError(t, err)

	require.Len(t, conn.channels, 1)
	assert.Equal(t, []string{"salon.events:topic"}, conn.channels[0].declared)
	assert.True(t, conn.channels[0].closed)
}

func TestPublisher_PublishReservationBooked(t *testing.T) {
	conn := &fakeConnection{}
	p, err := newPublisher(conn, "salon.events", time.Second, logger.Nop())
	require.NoError(t, err)

	staffID := int64(3)
	err = p.PublishReservationBooked(context.Background(), ReservationBooked{
		ReservationID: 40,
		CustomerID:    7,
		StaffID:       &staffID,
		Date:          "2025-05-10",
		TimeSlot:      "09:30",
		Menu:          "cut",
	})
	require.NoError(t, err)

	require.Len(t, conn.published, 1)
	got := conn.published[0]
	assert.Equal(t, "salon.events", got.exchange)
	assert.Equal(t, RoutingReservationBooked, got.key)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)

	var decoded ReservationBooked
	require.NoError(t, json.Unmarshal(got.msg.Body, &decoded))
	assert.Equal(t, int64(40), decoded.ReservationID)
	assert.Equal(t, "09:30", decoded.TimeSlot)
}

func TestPublisher_PublishFailure(t *testing.T) {
	conn := &fakeConnection{}
	p, err := newPublisher(conn, "salon.events", time.Second, logger.Nop())
	require.NoError(t, err)

	conn.channelErr = errors.New("connection closed")
	err = p.PublishCouponIssued(context.Background(), CouponIssued{CouponID: 1})
	assert.ErrorIs(t, err, ErrPublish)

	conn.channelErr = nil
	conn.publishErr = errors.New("nack")
	err = p.PublishReservationCancelled(context.Background(), ReservationCancelled{ReservationID: 1})
	assert.ErrorIs(t, err, ErrPublish)
}
