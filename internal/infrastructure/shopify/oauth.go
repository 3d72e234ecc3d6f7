package shopify

import (
	"context"
	"fmt"
	"net/url"

	goshopify "github.com/bold-commerce/go-shopify/v4"
	"github.com/rs/zerolog"
)

// OAuth handles the storefront install flow: building the authorize URL and
// exchanging the callback code for an access token.
type OAuth struct {
	app         goshopify.App
	apiKey      string
	redirectURI string
	logger      zerolog.Logger
}

// NewOAuth creates the OAuth helper for this app's credentials.
func NewOAuth(apiKey, apiSecret, redirectURI string, logger zerolog.Logger) *OAuth {
	return &OAuth{
		app: goshopify.App{
			ApiKey:      apiKey,
			ApiSecret:   apiSecret,
			RedirectUrl: redirectURI,
		},
		apiKey:      apiKey,
		redirectURI: redirectURI,
		logger:      logger,
	}
}

// AuthorizeURL builds the embedded-app authorization redirect for a shop.
// Scopes are comma-separated without spaces, as the authorize endpoint
// expects.
func (o *OAuth) AuthorizeURL(shop, scopes, state string) string {
	return fmt.Sprintf(
		"https://%s/admin/oauth/authorize?client_id=%s&scope=%s&redirect_uri=%s&state=%s&embedded_app=true",
		shop,
		o.apiKey,
		url.QueryEscape(scopes),
		url.QueryEscape(o.redirectURI),
		url.QueryEscape(state),
	)
}

// ExchangeToken exchanges an authorization code for an access token.
func (o *OAuth) ExchangeToken(ctx context.Context, shop, code string) (string, error) {
	token, err := o.app.GetAccessToken(ctx, shop, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange token: %w", err)
	}
	return token, nil
}

// CanonicalDomain validates a fresh token and returns the canonical
// myshopify domain to store it under. Redirects through vanity domains mean
// the callback's shop parameter is not always the canonical one.
func (o *OAuth) CanonicalDomain(ctx context.Context, shopDomain, accessToken string) (string, error) {
	shop, err := o.ShopInfo(ctx, shopDomain, accessToken)
	if err != nil {
		return "", err
	}
	if shop.MyshopifyDomain == "" {
		return shopDomain, nil
	}
	return shop.MyshopifyDomain, nil
}

// ShopInfo fetches the shop record with a fresh token. It both validates the
// token and yields the canonical shop domain to store the token under.
func (o *OAuth) ShopInfo(ctx context.Context, shopDomain, accessToken string) (*goshopify.Shop, error) {
	client, err := goshopify.NewClient(o.app, shopDomain, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	shop, err := client.Shop.Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	return shop, nil
}
