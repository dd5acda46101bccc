package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/skinflex/api/api/web"
	"github.com/skinflex/api/api/weberr"
)

// Errors turns handler errors into JSON responses. Errors carrying a
// decorated response answer with it; anything else is an opaque 500.
func Errors(log logrus.FieldLogger) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

			err := handler(ctx, w, r)
			if err == nil {
				return nil
			}

			fields := logrus.Fields{
				"req_id":  ContextRequestID(ctx),
				"message": err,
			}
			if extra, ok := weberr.Fields(err); ok {
				for k, v := range extra {
					fields[k] = v
				}
			}
			log.WithFields(fields).Error("ERROR")

			if body, status, ok := weberr.Response(err); ok {
				return web.Respond(ctx, w, body, status)
			}

			body := weberr.ErrorResponse{
				Error: http.StatusText(http.StatusInternalServerError),
			}
			return web.Respond(ctx, w, body, http.StatusInternalServerError)
		}
		return h
	}
	return m
}
