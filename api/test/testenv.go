package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/skinflex/api/api"
	"github.com/skinflex/api/api/middleware"
	"github.com/skinflex/api/core/carousel"
	"github.com/skinflex/api/core/cart"
	"github.com/skinflex/api/core/catalog"
)

const adminKey = "test-admin-key"

type TestEnv struct {
	t        *testing.T
	Server   *httptest.Server
	URL      string
	Catalog  *catalog.Store
	Carousel *carousel.Store
	Slot     cart.Slot

	client *http.Client
}

// NewTestEnv builds the full API over seeded in-memory stores and the
// memory cart slot. db may be nil when no order route is exercised.
func NewTestEnv(t *testing.T, db *sqlx.DB) *TestEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	sm := scs.New()

	catalogStore := catalog.NewStore()
	catalog.Seed(catalogStore)

	carouselStore := carousel.NewStore()
	carousel.Seed(carouselStore)

	slot := cart.NewMemorySlot()

	mux := api.APIMux(api.APIConfig{
		Log:         log,
		DB:          db,
		Session:     sm,
		Catalog:     catalogStore,
		Carousel:    carouselStore,
		CartSlot:    slot,
		AdminAPIKey: adminKey,
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("building cookie jar: %v", err)
	}

	return &TestEnv{
		t:        t,
		Server:   srv,
		URL:      srv.URL,
		Catalog:  catalogStore,
		Carousel: carouselStore,
		Slot:     slot,
		client:   &http.Client{Jar: jar},
	}
}

// Client returns an http client holding the session cookie, so
// consecutive requests hit the same cart.
func (env *TestEnv) Client() *http.Client {
	return env.client
}

// do issues a request, optionally JSON-encoding body, and decodes the
// response into out when out is non-nil.
func (env *TestEnv) do(method, path string, body interface{}, admin bool, out interface{}) int {
	env.t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			env.t.Fatalf("marshaling request body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}

	r, err := http.NewRequest(method, env.URL+path, buf)
	if err != nil {
		env.t.Fatal(err)
	}
	if admin {
		r.Header.Set(middleware.APIKeyHeader, adminKey)
	}

	w, err := env.client.Do(r)
	if err != nil {
		env.t.Fatal(err)
	}
	defer w.Body.Close()

	if out != nil && w.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			env.t.Fatalf("decoding %s %s response: %v", method, path, err)
		}
	}

	return w.StatusCode
}

func (env *TestEnv) get(path string, out interface{}) int {
	return env.do(http.MethodGet, path, nil, false, out)
}

func (env *TestEnv) adminDo(method, path string, body interface{}, out interface{}) int {
	return env.do(method, path, body, true, out)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
