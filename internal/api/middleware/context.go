package middleware

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	roleKey      contextKey = "role"
	requestIDKey contextKey = "request_id"
)

// WithActor stores the authenticated caller in ctx
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = context.WithValue(ctx, userIDKey, actor.UserID)
	return context.WithValue(ctx, roleKey, actor.Role)
}

// GetUserID returns the authenticated user id
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok && id > 0
}

// GetRole returns the canonical role of the authenticated user
func GetRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleKey).(domain.Role)
	return role, ok && role.IsValid()
}

// GetActor returns the authenticated caller
func GetActor(ctx context.Context) (domain.Actor, bool) {
	id, ok := GetUserID(ctx)
	if !ok {
		return domain.Actor{}, false
	}
	role, ok := GetRole(ctx)
	if !ok {
		return domain.Actor{}, false
	}
	return domain.Actor{UserID: id, Role: role}, true
}

// GetRequestID returns the id assigned by RequestID
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
