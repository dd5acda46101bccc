package api

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/skinflex/api/api/middleware"
	"github.com/skinflex/api/api/web"
	"github.com/skinflex/api/core/carousel"
	"github.com/skinflex/api/core/cart"
	"github.com/skinflex/api/core/catalog"
	"github.com/skinflex/api/core/order"
	"github.com/skinflex/api/core/session"
	"github.com/skinflex/api/rate"
)

type APIConfig struct {
	CorsOrigin  string
	Log         logrus.FieldLogger
	DB          *sqlx.DB
	Session     *scs.SessionManager
	Catalog     *catalog.Store
	Carousel    *carousel.Store
	CartSlot    cart.Slot
	AdminAPIKey string
	Limiter     *rate.Limiter
}

type api struct {
	*mux.Router
	mw  []web.Middleware
	log logrus.FieldLogger
}

func APIMux(cfg APIConfig) http.Handler {
	a := &api{
		Router: mux.NewRouter(),
		log:    cfg.Log,
	}

	a.mw = append(a.mw, session.LoadAndSave(cfg.Session))
	a.mw = append(a.mw, middleware.RequestID())
	a.mw = append(a.mw, middleware.Logger(cfg.Log))
	a.mw = append(a.mw, middleware.Errors(cfg.Log))
	a.mw = append(a.mw, middleware.Panics())
	a.mw = append(a.mw, middleware.RateLimit(cfg.Limiter))

	if cfg.CorsOrigin != "" {
		a.mw = append(a.mw, middleware.Cors(cfg.CorsOrigin))

		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		a.Handle(http.MethodOptions, "/{path:.*}", h)
	}

	admin := middleware.APIKey(cfg.AdminAPIKey)

	a.Handle(http.MethodGet, "/products/featured", catalog.HandleFeatured(cfg.Catalog))
	a.Handle(http.MethodGet, "/products/{id}", catalog.HandleShow(cfg.Catalog))
	a.Handle(http.MethodGet, "/products", catalog.HandleList(cfg.Catalog))
	a.Handle(http.MethodGet, "/carousel", carousel.HandleList(cfg.Carousel))

	a.Handle(http.MethodGet, "/cart", cart.HandleShow(cfg.CartSlot, cfg.Session, cfg.Log))
	a.Handle(http.MethodDelete, "/cart", cart.HandleDelete(cfg.CartSlot, cfg.Session, cfg.Log))
	a.Handle(http.MethodPut, "/cart/items", cart.HandleCreateItem(cfg.Catalog, cfg.CartSlot, cfg.Session, cfg.Log))
	a.Handle(http.MethodPut, "/cart/items/{variant_id}", cart.HandleUpdateItem(cfg.CartSlot, cfg.Session, cfg.Log))
	a.Handle(http.MethodDelete, "/cart/items/{variant_id}", cart.HandleDeleteItem(cfg.CartSlot, cfg.Session, cfg.Log))

	a.Handle(http.MethodPost, "/checkout", order.HandleCheckout(cfg.DB, cfg.CartSlot, cfg.Session, cfg.Log))
	a.Handle(http.MethodGet, "/orders", order.HandleListOwn(cfg.DB, cfg.Session))

	a.Handle(http.MethodGet, "/admin/brands", catalog.HandleListBrands(cfg.Catalog), admin)
	a.Handle(http.MethodPost, "/admin/brands", catalog.HandleCreateBrand(cfg.Catalog), admin)
	a.Handle(http.MethodPut, "/admin/brands/{id}", catalog.HandleUpdateBrand(cfg.Catalog), admin)
	a.Handle(http.MethodDelete, "/admin/brands/{id}", catalog.HandleDeleteBrand(cfg.Catalog), admin)

	a.Handle(http.MethodGet, "/admin/models", catalog.HandleListModels(cfg.Catalog), admin)
	a.Handle(http.MethodPost, "/admin/models", catalog.HandleCreateModel(cfg.Catalog), admin)
	a.Handle(http.MethodPut, "/admin/models/{id}", catalog.HandleUpdateModel(cfg.Catalog), admin)
	a.Handle(http.MethodDelete, "/admin/models/{id}", catalog.HandleDeleteModel(cfg.Catalog), admin)

	a.Handle(http.MethodGet, "/admin/skins", catalog.HandleListSkins(cfg.Catalog), admin)
	a.Handle(http.MethodPost, "/admin/skins", catalog.HandleCreateSkin(cfg.Catalog), admin)
	a.Handle(http.MethodPut, "/admin/skins/{id}", catalog.HandleUpdateSkin(cfg.Catalog), admin)
	a.Handle(http.MethodDelete, "/admin/skins/{id}", catalog.HandleDeleteSkin(cfg.Catalog), admin)

	a.Handle(http.MethodGet, "/admin/variants", catalog.HandleListVariants(cfg.Catalog), admin)
	a.Handle(http.MethodPost, "/admin/variants", catalog.HandleCreateVariant(cfg.Catalog), admin)
	a.Handle(http.MethodPut, "/admin/variants/{id}", catalog.HandleUpdateVariant(cfg.Catalog), admin)
	a.Handle(http.MethodDelete, "/admin/variants/{id}", catalog.HandleDeleteVariant(cfg.Catalog), admin)

	a.Handle(http.MethodGet, "/admin/collections", catalog.HandleShowFeaturedIDs(cfg.Catalog), admin)
	a.Handle(http.MethodPut, "/admin/collections", catalog.HandleUpdateFeaturedIDs(cfg.Catalog), admin)

	a.Handle(http.MethodGet, "/admin/carousel", carousel.HandleList(cfg.Carousel), admin)
	a.Handle(http.MethodPost, "/admin/carousel", carousel.HandleCreate(cfg.Carousel), admin)
	a.Handle(http.MethodPut, "/admin/carousel/{id}", carousel.HandleUpdate(cfg.Carousel), admin)
	a.Handle(http.MethodDelete, "/admin/carousel/{id}", carousel.HandleDelete(cfg.Carousel), admin)

	a.Handle(http.MethodGet, "/admin/orders", order.HandleList(cfg.DB), admin)
	a.Handle(http.MethodPut, "/admin/orders/{id}", order.HandleUpdateStatus(cfg.DB), admin)

	return a.Router
}

func (a *api) Handle(method string, path string, handler web.Handler, mw ...web.Middleware) {

	handler = web.WrapMiddleware(mw, handler)

	handler = web.WrapMiddleware(a.mw, handler)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ctx := r.Context()

		if err := handler(ctx, w, r); err != nil {

			a.log.WithFields(logrus.Fields{
				"req_id":  middleware.ContextRequestID(ctx),
				"message": err,
			}).Error("ERROR")
		}
	})

	a.Router.Handle(path, h).Methods(method)
}
