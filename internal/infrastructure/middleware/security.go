package middleware

import "net/http"

// FrameEmbedding sets the headers that let the storefront pages render
// inside the Shopify admin iframe.
func FrameEmbedding(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "ALLOWALL")
		w.Header().Set("Content-Security-Policy",
			"frame-ancestors 'self' https://*.myshopify.com https://admin.shopify.com")
		next.ServeHTTP(w, r)
	})
}
