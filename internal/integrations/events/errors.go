package events

import "errors"

var (
	// ErrConnect is returned when the broker cannot be reached
	ErrConnect = errors.New("events: failed to connect to broker")

	// ErrPublish is returned when an event cannot be delivered to the exchange
	ErrPublish = errors.New("events: failed to publish event")

	// ErrMarshal is returned when an event cannot be encoded
	ErrMarshal = errors.New("events: failed to encode event")
)
