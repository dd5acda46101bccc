package cart

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/sirupsen/logrus"
	"github.com/skinflex/api/api/web"
	"github.com/skinflex/api/api/weberr"
	"github.com/skinflex/api/core/catalog"
	"github.com/skinflex/api/core/session"
	"github.com/skinflex/api/validate"
)

// View is the response shape for every cart endpoint: the lines plus
// the total derived from them.
type View struct {
	Items []Line `json:"items"`
	Total int64  `json:"total"`
}

func view(l *Ledger) View {
	return View{Items: l.Lines(), Total: l.Total()}
}

type ItemNew struct {
	VariantID int64 `json:"variant_id" validate:"required,gt=0"`
	// Quantity defaults to 1 when omitted; zero or less is rejected.
	Quantity *int `json:"quantity" validate:"omitempty,gte=1"`
}

type ItemUp struct {
	Quantity int `json:"quantity"`
}

func HandleShow(slot Slot, sm *scs.SessionManager, log logrus.FieldLogger) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		ledger := Load(ctx, slot, session.CartID(ctx, sm), log)
		return web.Respond(ctx, w, view(ledger), http.StatusOK)
	}
}

func HandleCreateItem(store *catalog.Store, slot Slot, sm *scs.SessionManager, log logrus.FieldLogger) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var ni ItemNew
		if err := web.Decode(w, r, &ni); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(ni); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		quantity := 1
		if ni.Quantity != nil {
			quantity = *ni.Quantity
		}

		variant, skin, err := store.FindVariant(ni.VariantID)
		if err != nil {
			return weberr.NotFound(err)
		}

		ledger := Load(ctx, slot, session.CartID(ctx, sm), log)
		defer ledger.Persist(ctx)

		if err := ledger.Add(skin, variant, quantity); err != nil {
			if errors.Is(err, ErrQuantity) {
				return weberr.Unprocessable(err)
			}
			return err
		}

		return web.Respond(ctx, w, view(ledger), http.StatusOK)
	}
}

func HandleUpdateItem(slot Slot, sm *scs.SessionManager, log logrus.FieldLogger) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		variantID, err := web.ParamID(r, "variant_id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		var ui ItemUp
		if err := web.Decode(w, r, &ui); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		ledger := Load(ctx, slot, session.CartID(ctx, sm), log)
		defer ledger.Persist(ctx)

		ledger.UpdateQuantity(variantID, ui.Quantity)

		return web.Respond(ctx, w, view(ledger), http.StatusOK)
	}
}

func HandleDeleteItem(slot Slot, sm *scs.SessionManager, log logrus.FieldLogger) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		variantID, err := web.ParamID(r, "variant_id")
		if err != nil {
			return weberr.BadRequest(err)
		}

		ledger := Load(ctx, slot, session.CartID(ctx, sm), log)
		defer ledger.Persist(ctx)

		ledger.Remove(variantID)

		return web.Respond(ctx, w, view(ledger), http.StatusOK)
	}
}

func HandleDelete(slot Slot, sm *scs.SessionManager, log logrus.FieldLogger) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		ledger := Load(ctx, slot, session.CartID(ctx, sm), log)
		defer ledger.Persist(ctx)

		ledger.Clear()

		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}
}
