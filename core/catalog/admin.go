package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/skinflex/api/api/web"
	"github.com/skinflex/api/api/weberr"
	"github.com/skinflex/api/validate"
)

// storeErr maps the store's sentinel errors onto responses.
func storeErr(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return weberr.NotFound(err)
	case errors.Is(err, ErrReferenced):
		return weberr.NewError(err, err.Error(), http.StatusConflict)
	default:
		return err
	}
}

func HandleListBrands(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, store.Brands(), http.StatusOK)
	}
}

func HandleCreateBrand(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var nb BrandNew
		if err := web.Decode(w, r, &nb); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(nb); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		return web.Respond(ctx, w, store.CreateBrand(nb), http.StatusCreated)
	}
}

func HandleUpdateBrand(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		var ub BrandUp
		if err := web.Decode(w, r, &ub); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(ub); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		b, err := store.UpdateBrand(id, ub)
		if err != nil {
			return storeErr(err)
		}

		return web.Respond(ctx, w, b, http.StatusOK)
	}
}

func HandleDeleteBrand(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		if err := store.DeleteBrand(id); err != nil {
			return storeErr(err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleListModels(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, store.Models(), http.StatusOK)
	}
}

func HandleCreateModel(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var nm ModelNew
		if err := web.Decode(w, r, &nm); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(nm); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		m, err := store.CreateModel(nm)
		if err != nil {
			return storeErr(err)
		}

		return web.Respond(ctx, w, m, http.StatusCreated)
	}
}

func HandleUpdateModel(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		var um ModelUp
		if err := web.Decode(w, r, &um); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(um); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		m, err := store.UpdateModel(id, um)
		if err != nil {
			return storeErr(err)
		}

		return web.Respond(ctx, w, m, http.StatusOK)
	}
}

func HandleDeleteModel(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		if err := store.DeleteModel(id); err != nil {
			return storeErr(err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleListSkins(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, store.Catalog(), http.StatusOK)
	}
}

func HandleCreateSkin(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var ns SkinNew
		if err := web.Decode(w, r, &ns); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(ns); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		sk, err := store.CreateSkin(ns)
		if err != nil {
			return storeErr(err)
		}

		return web.Respond(ctx, w, sk, http.StatusCreated)
	}
}

func HandleUpdateSkin(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		var us SkinUp
		if err := web.Decode(w, r, &us); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(us); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		sk, err := store.UpdateSkin(id, us)
		if err != nil {
			return storeErr(err)
		}

		return web.Respond(ctx, w, sk, http.StatusOK)
	}
}

func HandleDeleteSkin(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		if err := store.DeleteSkin(id); err != nil {
			return storeErr(err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

func HandleListVariants(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, store.Variants(), http.StatusOK)
	}
}

func HandleCreateVariant(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var nv VariantNew
		if err := web.Decode(w, r, &nv); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(nv); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		v, err := store.CreateVariant(nv)
		if err != nil {
			return storeErr(err)
		}

		return web.Respond(ctx, w, v, http.StatusCreated)
	}
}

func HandleUpdateVariant(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		var uv VariantUp
		if err := web.Decode(w, r, &uv); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(uv); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		v, err := store.UpdateVariant(id, uv)
		if err != nil {
			return storeErr(err)
		}

		return web.Respond(ctx, w, v, http.StatusOK)
	}
}

func HandleDeleteVariant(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id, err := web.ParamID(r, "id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		if err := store.DeleteVariant(id); err != nil {
			return storeErr(err)
		}

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}

type featuredUpdate struct {
	IDs []int64 `json:"ids" validate:"required"`
}

func HandleShowFeaturedIDs(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return web.Respond(ctx, w, store.FeaturedIDs(), http.StatusOK)
	}
}

func HandleUpdateFeaturedIDs(store *Store) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var fu featuredUpdate
		if err := web.Decode(w, r, &fu); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(fu); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		if err := store.SetFeaturedIDs(fu.IDs); err != nil {
			return weberr.BadRequest(err)
		}

		return web.Respond(ctx, w, store.FeaturedIDs(), http.StatusOK)
	}
}
