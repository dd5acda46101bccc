package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/skinflex/api/api/web"
)

const RequestIDHeader = "X-Request-Id"

// Inbound ids longer than this are truncated rather than trusted.
const requestIDLengthLimit = 128

type ctxKey int

const requestIDKey ctxKey = 1

var (
	requestCounter int64
	requestPrefix  string
)

func init() {
	var buf [6]byte
	_, _ = rand.Read(buf[:])
	requestPrefix = hex.EncodeToString(buf[:])
}

// RequestID tags every request with an id, honoring one supplied by
// the caller in the X-Request-Id header.
func RequestID() web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			id := r.Header.Get(RequestIDHeader)
			switch {
			case id == "":
				id = fmt.Sprintf("%s-%d", requestPrefix, atomic.AddInt64(&requestCounter, 1))
			case len(id) > requestIDLengthLimit:
				id = id[:requestIDLengthLimit]
			}

			ctx = context.WithValue(ctx, requestIDKey, id)
			return handler(ctx, w, r)
		}
		return h
	}
	return m
}

// ContextRequestID returns the request id stored by RequestID, or the
// empty string outside a request.
func ContextRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
