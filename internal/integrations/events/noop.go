package events

import "context"

// NoopPublisher drops every event. Used when [events] is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishReservationBooked(context.Context, ReservationBooked) error {
	return nil
}

func (NoopPublisher) PublishReservationCancelled(context.Context, ReservationCancelled) error {
	return nil
}

func (NoopPublisher) PublishCouponIssued(context.Context, CouponIssued) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
