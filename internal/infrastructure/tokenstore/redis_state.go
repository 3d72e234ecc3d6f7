package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"

	"voice-commerce-gateway/internal/domain"
	"voice-commerce-gateway/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisStateStore keeps OAuth state nonces in Redis with a TTL, so an
// abandoned install flow cleans itself up.
type RedisStateStore struct {
	client *redis.Client
}

// NewRedisStateStore creates a Redis-backed OAuth state store.
func NewRedisStateStore(client *redis.Client) ports.StateStore {
	return &RedisStateStore{client: client}
}

func stateKey(state string) string {
	return "oauth:state:" + state
}

func (s *RedisStateStore) Save(ctx context.Context, state *domain.OAuthState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode oauth state: %w", err)
	}
	if err := s.client.Set(ctx, stateKey(state.State), data, domain.OAuthStateTTL).Err(); err != nil {
		return fmt.Errorf("failed to save oauth state: %w", err)
	}
	return nil
}

// Consume returns the nonce and deletes it in one round trip. A second
// callback with the same state finds nothing.
func (s *RedisStateStore) Consume(ctx context.Context, state string) (*domain.OAuthState, error) {
	data, err := s.client.GetDel(ctx, stateKey(state)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to consume oauth state: %w", err)
	}

	var parsed domain.OAuthState
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode oauth state: %w", err)
	}
	return &parsed, nil
}
