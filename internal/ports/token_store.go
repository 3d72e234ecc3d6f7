package ports

import (
	"context"

	"voice-commerce-gateway/internal/domain"
)

// TokenStore is the narrow keyed contract for persisted shop access tokens.
// Tokens arrive already encrypted; the store never sees plaintext.
type TokenStore interface {
	// Put saves or replaces the token for a shop domain.
	Put(ctx context.Context, shop *domain.Shop) error

	// Get returns the shop record, or nil when the shop is not installed.
	Get(ctx context.Context, shopDomain string) (*domain.Shop, error)

	// List returns all installed shops.
	List(ctx context.Context) ([]*domain.Shop, error)
}

// StateStore keeps short-lived OAuth state nonces for the install flow.
type StateStore interface {
	// Save stores the nonce for domain.OAuthStateTTL.
	Save(ctx context.Context, state *domain.OAuthState) error

	// Consume returns and deletes the nonce, or nil when absent or expired.
	Consume(ctx context.Context, state string) (*domain.OAuthState, error)
}

// EncryptionService encrypts access tokens before they reach a store.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}
