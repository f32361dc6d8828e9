package config

import (
	"context"
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects to the denylist store and verifies the server is
// reachable before the API starts accepting logins.
func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	if err := redisClient.Do(
		context.Background(),
		redisClient.B().Ping().Build(),
	).Error(); err != nil {
		log.Fatalf("redis ping failed: %v", err)
	}

	return redisClient
}
