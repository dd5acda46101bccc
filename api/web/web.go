package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler func(ctx context.Context, w http.ResponseWriter, r *http.Request) error

type Middleware func(Handler) Handler

func WrapMiddleware(mw []Middleware, handler Handler) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h := mw[i]
		if h != nil {
			handler = h(handler)
		}
	}

	return handler
}

func Respond(ctx context.Context, w http.ResponseWriter, data interface{}, statusCode int) error {
	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("cannot marshal response data: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err := w.Write(jsonData); err != nil {
		return fmt.Errorf("cannot write response data to response writer: %w", err)
	}

	return nil
}

func Decode(w http.ResponseWriter, r *http.Request, val interface{}) error {
	maxBytes := 1048576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(val); err != nil {
		return err
	}

	return nil
}

func Param(r *http.Request, key string) string {
	m := mux.Vars(r)
	return m[key]
}

// ParamID extracts a numeric path parameter.
func ParamID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(Param(r, key), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q is not a valid id", key)
	}
	return id, nil
}

// QueryInts collects every occurrence of a repeated numeric query
// parameter, e.g. ?brand=1&brand=2. A malformed value is an error so
// that a mistyped filter never silently matches everything.
func QueryInts(r *http.Request, key string) ([]int64, error) {
	values := r.URL.Query()[key]
	if len(values) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("query parameter %q has non-numeric value %q", key, v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// QueryStrings collects every occurrence of a repeated query parameter.
func QueryStrings(r *http.Request, key string) []string {
	return r.URL.Query()[key]
}
