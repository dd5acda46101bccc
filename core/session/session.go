// Package session wires the scs session manager into the handler chain
// and hands out the per-session cart id. Sessions here carry no user
// identity, they only key the visitor's cart.
package session

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/skinflex/api/api/web"
	"github.com/skinflex/api/validate"
)

const cartIDKey = "cart_id"

// LoadAndSave adapts the scs middleware to the web.Handler chain.
func LoadAndSave(sm *scs.SessionManager) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			var err error

			sh := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				err = handler(r.Context(), w, r)
			}))
			sh.ServeHTTP(w, r)

			return err
		}
		return h
	}
	return m
}

// CartID returns the session's cart id, minting one on first use.
func CartID(ctx context.Context, sm *scs.SessionManager) string {
	id := sm.GetString(ctx, cartIDKey)
	if id == "" {
		id = validate.GenerateID()
		sm.Put(ctx, cartIDKey, id)
	}
	return id
}
