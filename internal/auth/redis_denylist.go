package auth

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

type RedisDenylist struct {
	client rueidis.Client
	prefix string
}

func NewRedisDenylist(client rueidis.Client, prefix string) *RedisDenylist {
	return &RedisDenylist{
		client: client,
		prefix: prefix,
	}
}

func (d *RedisDenylist) key(token string) string {
	return d.prefix + ":" + token
}

// Revoke marks the token revoked until it would have expired anyway, so
// the denylist does not grow without bound.
func (d *RedisDenylist) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	cmd := d.client.B().Set().
		Key(d.key(token)).
		Value("1").
		Exat(expiresAt).
		Build()

	return d.client.Do(ctx, cmd).Error()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	cmd := d.client.B().Get().Key(d.key(token)).Build()

	if err := d.client.Do(ctx, cmd).Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
