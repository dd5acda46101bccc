package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/skinflex/api/api/web"
	"github.com/skinflex/api/api/weberr"
)

const APIKeyHeader = "X-Api-Key"

// APIKey guards the admin surface with a static key. An empty
// configured key locks the surface entirely rather than opening it.
func APIKey(key string) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			got := r.Header.Get(APIKeyHeader)

			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				return weberr.NotAuthorized(errors.New("invalid or missing api key"))
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
