package context

import (
	"context"
)

// UserContext contains authenticated user information.
type UserContext struct {
	UserUID string
	Email   string
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetUserUID returns the authenticated user's uid from context or empty string.
func GetUserUID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.UserUID
	}
	return ""
}
