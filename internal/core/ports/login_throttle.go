package ports

import "context"

// LoginThrottle limits repeated failed login attempts per email.
type LoginThrottle interface {
	// TooMany reports whether the email has exhausted its attempt budget.
	TooMany(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt against the email.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email string) error
}
