package domain

import "time"

// Shop is a storefront connected through the OAuth install flow. The access
// token is stored encrypted and only decrypted at the point of use.
type Shop struct {
	Domain      string    `json:"domain" bson:"domain"`
	AccessToken string    `json:"access_token" bson:"access_token"`
	InstalledAt time.Time `json:"installed_at" bson:"installed_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// OAuthState is the CSRF nonce issued when the install flow starts. It lives
// in the state store with a short TTL and is consumed by the callback.
type OAuthState struct {
	State     string    `json:"state"`
	Shop      string    `json:"shop"`
	CreatedAt time.Time `json:"created_at"`
}

// OAuthStateTTL bounds how long an install redirect may take.
const OAuthStateTTL = 10 * time.Minute
