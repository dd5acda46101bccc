package order

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/skinflex/api/api/web"
	"github.com/skinflex/api/api/weberr"
	"github.com/skinflex/api/core/cart"
	"github.com/skinflex/api/core/session"
	"github.com/skinflex/api/database"
	"github.com/skinflex/api/validate"
)

// HandleCheckout freezes the session's ledger into an order. Payment
// capture is not implemented here: the order starts with a pending
// payment status and the cart is cleared once the snapshot is durable.
func HandleCheckout(db *sqlx.DB, slot cart.Slot, sm *scs.SessionManager, log logrus.FieldLogger) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var nc CheckoutNew
		if err := web.Decode(w, r, &nc); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(nc); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		cartID := session.CartID(ctx, sm)
		ledger := cart.Load(ctx, slot, cartID, log)

		lines := ledger.Lines()
		if len(lines) == 0 {
			err := errors.New("no items to checkout")
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		ord := FromLedger(validate.GenerateID(), cartID, nc, lines, time.Now().UTC())

		err := database.Transaction(db, func(tx sqlx.ExtContext) error {
			if err := Create(ctx, tx, ord); err != nil {
				return err
			}
			for _, it := range ord.Items {
				if err := CreateItem(ctx, tx, it); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			err = fmt.Errorf("storing order: %w", err)
			return weberr.Wrap(err, weberr.WithFields(map[string]interface{}{"cart_id": cartID}))
		}

		ledger.Clear()
		ledger.Persist(ctx)

		return web.Respond(ctx, w, ord, http.StatusCreated)
	}
}

// HandleListOwn lists the orders placed from the current session.
func HandleListOwn(db *sqlx.DB, sm *scs.SessionManager) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		orders, err := ListByCart(ctx, db, session.CartID(ctx, sm))
		if err != nil {
			return err
		}
		return web.Respond(ctx, w, orders, http.StatusOK)
	}
}

func HandleList(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		orders, err := List(ctx, db)
		if err != nil {
			return err
		}
		return web.Respond(ctx, w, orders, http.StatusOK)
	}
}

func HandleUpdateStatus(db *sqlx.DB) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		id := web.Param(r, "id")
		if err := validate.CheckID(id); err != nil {
			return weberr.BadRequest(err)
		}

		var up StatusUp
		if err := web.Decode(w, r, &up); err != nil {
			return weberr.BadRequest(fmt.Errorf("unable to decode payload: %w", err))
		}

		if err := validate.Check(up); err != nil {
			return weberr.NewError(err, err.Error(), http.StatusUnprocessableEntity)
		}

		ord, err := Fetch(ctx, db, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return weberr.NotFound(err)
			}
			return err
		}

		if up.PaymentStatus != nil {
			ord.PaymentStatus = *up.PaymentStatus
		}
		if up.ShippingStatus != nil {
			ord.ShippingStatus = *up.ShippingStatus
		}
		ord.UpdatedAt = time.Now().UTC()

		if err := UpdateStatus(ctx, db, ord); err != nil {
			return err
		}

		return web.Respond(ctx, w, ord, http.StatusOK)
	}
}
