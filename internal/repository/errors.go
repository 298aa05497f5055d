package repository

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors surfaced at the repository boundary. Raw database errors
// are wrapped or logged by callers and never shown to end users.
var (
	ErrContentNotFound    = errors.New("content not found")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrUserNotFound       = errors.New("user not found")
	ErrCommunityNotFound  = errors.New("community not found")
	ErrRequestNotFound    = errors.New("request not found")
)

// withTimeout applies the repository query timeout unless the caller already
// set a deadline.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
