package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jdclothing/storefront-backend/pkg/logger"
)

const cartTokenHeader = "X-Cart-Token"

type cartTokenKey struct{}

// CartToken resolves the caller's cart token, minting one on first contact.
// The token is echoed on the response so the client can persist it.
func CartToken(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(cartTokenHeader)
			if token == "" {
				token = uuid.NewString()
			}

			w.Header().Set(cartTokenHeader, token)

			ctx := context.WithValue(r.Context(), cartTokenKey{}, token)
			if logg != nil {
				ctx = logg.WithCartToken(ctx, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartTokenFromContext returns the token resolved by CartToken.
func CartTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(cartTokenKey{}).(string)
	return token
}
