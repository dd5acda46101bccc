package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/skinflex/api/api/web"
	"github.com/skinflex/api/api/weberr"
	"github.com/skinflex/api/rate"
)

// RateLimit rejects clients exceeding the configured request rate,
// keyed by remote address. A nil limiter disables the check.
func RateLimit(lim *rate.Limiter) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			if lim == nil {
				return handler(ctx, w, r)
			}

			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !lim.Check(host) {
				err := errors.New("rate limit exceeded")
				return weberr.NewError(err, err.Error(), http.StatusTooManyRequests)
			}

			return handler(ctx, w, r)
		}
		return h
	}
	return m
}
