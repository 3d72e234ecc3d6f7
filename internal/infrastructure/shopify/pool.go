package shopify

import (
	"context"
	"fmt"
	"sync"

	"voice-commerce-gateway/internal/ports"

	"github.com/rs/zerolog"
)

// ClientPool hands out commerce clients keyed by store name. Requests for
// different shops get independent clients instead of overwriting a shared
// process-wide handle.
type ClientPool struct {
	mu         sync.RWMutex
	clients    map[string]ports.CommerceClient
	apiVersion string
	retry      RetryConfig
	logger     zerolog.Logger
}

// NewClientPool creates a pool creating clients against the given Admin API
// version.
func NewClientPool(apiVersion string, retry RetryConfig, logger zerolog.Logger) *ClientPool {
	return &ClientPool{
		clients:    make(map[string]ports.CommerceClient),
		apiVersion: apiVersion,
		retry:      retry,
		logger:     logger,
	}
}

// GetClient returns the cached client for a store, creating one on first use.
// The cache key includes the token so a reinstalled shop gets a fresh client.
func (p *ClientPool) GetClient(_ context.Context, storeName string, accessToken string) (ports.CommerceClient, error) {
	if storeName == "" {
		return nil, fmt.Errorf("store name is required")
	}
	if accessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}

	key := storeName + ":" + accessToken

	p.mu.RLock()
	client, ok := p.clients[key]
	p.mu.RUnlock()
	if ok {
		return client, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if client, ok := p.clients[key]; ok {
		return client, nil
	}

	client = NewClient(storeName, accessToken, p.apiVersion, p.retry, p.logger)
	p.clients[key] = client
	p.logger.Debug().Str("store", storeName).Msg("Created commerce client")
	return client, nil
}
