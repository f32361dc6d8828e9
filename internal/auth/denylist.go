package auth

import (
	"context"
	"time"
)

// TokenDenylist records tokens revoked before their natural expiry, so a
// logged-out token stops working immediately.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, expiresAt time.Time) error

	IsRevoked(ctx context.Context, token string) (bool, error)
}
