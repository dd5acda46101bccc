package catalog

import (
	"context"
	"net/http"

	"github.com/skinflex/api/api/web"
	"github.com/skinflex/api/api/weberr"
)

// HandleList serves the composed catalog, filtered by the optional
// search, brand, model and color query facets.
func HandleList(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		brands, err := web.QueryInts(r, "brand")
		if err != nil {
			return weberr.BadRequest(err)
		}

		models, err := web.QueryInts(r, "model")
		if err != nil {
			return weberr.BadRequest(err)
		}

		q := Query{
			SearchText: r.URL.Query().Get("search"),
			BrandIDs:   brands,
			ModelIDs:   models,
			ColorHexes: web.QueryStrings(r, "color"),
		}

		return web.Respond(ctx, w, Filter(store.Catalog(), q), http.StatusOK)
	}
}

func HandleShow(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		ms, err := store.FindSkin(id)
		if err != nil {
			return weberr.NotFound(err)
		}

		return web.Respond(ctx, w, ms, http.StatusOK)
	}
}

func HandleFeatured(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, store.Featured(), http.StatusOK)
	}
}
