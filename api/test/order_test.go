package test

import (
	"net/http"
	"testing"

	"github.com/skinflex/api/core/cart"
	"github.com/skinflex/api/core/order"
)

var checkoutBody = map[string]string{
	"customerName":  "Ada Lovelace",
	"customerPhone": "+1-555-0100",
	"shipName":      "Ada Lovelace",
	"shipAddress":   "12 Analytical Way",
	"shipCity":      "London",
	"shipState":     "LDN",
	"shipZip":       "E1 6AN",
}

func TestCheckoutFlow(t *testing.T) {
	env := NewTestEnv(t, startDB(t))

	add := func(variantID, quantity int) {
		t.Helper()
		body := map[string]int{"variant_id": variantID, "quantity": quantity}
		if code := env.do(http.MethodPut, "/cart/items", body, false, nil); code != http.StatusOK {
			t.Fatalf("PUT /cart/items: status %d", code)
		}
	}
	add(101, 2)
	add(301, 1)

	var ord order.Order
	if code := env.do(http.MethodPost, "/checkout", checkoutBody, false, &ord); code != http.StatusCreated {
		t.Fatalf("POST /checkout: expected 201, got %d", code)
	}

	if ord.ID == "" {
		t.Fatal("order must carry an id")
	}
	if want := int64(2*2499 + 1999); ord.Total != want {
		t.Fatalf("expected total %d, got %d", want, ord.Total)
	}
	if ord.PaymentStatus != order.PaymentPending || ord.ShippingStatus != order.ShipProcessing {
		t.Fatalf("fresh order statuses: %s/%s", ord.PaymentStatus, ord.ShippingStatus)
	}
	if len(ord.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(ord.Items))
	}
	for _, it := range ord.Items {
		if it.Name == "" || it.MasterName == "" || it.ModelName == "" || it.Price == 0 {
			t.Fatalf("item snapshot incomplete: %+v", it)
		}
	}

	// Checkout empties the cart.
	var view cart.View
	if code := env.get("/cart", &view); code != http.StatusOK {
		t.Fatalf("GET /cart: status %d", code)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart must be empty after checkout, got %+v", view.Items)
	}

	// The session sees its own order history.
	var own []order.Order
	if code := env.get("/orders", &own); code != http.StatusOK {
		t.Fatalf("GET /orders: status %d", code)
	}
	if len(own) != 1 || own[0].ID != ord.ID {
		t.Fatalf("expected own order %s, got %+v", ord.ID, own)
	}

	// Admin side: the order is listed and its statuses can move.
	var all []order.Order
	if code := env.adminDo(http.MethodGet, "/admin/orders", nil, &all); code != http.StatusOK {
		t.Fatalf("GET /admin/orders: status %d", code)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 order, got %d", len(all))
	}

	var updated order.Order
	up := map[string]string{"paymentStatus": "paid", "shippingStatus": "shipped"}
	if code := env.adminDo(http.MethodPut, "/admin/orders/"+ord.ID, up, &updated); code != http.StatusOK {
		t.Fatalf("PUT /admin/orders/{id}: status %d", code)
	}
	if updated.PaymentStatus != order.PaymentPaid || updated.ShippingStatus != order.ShipShipped {
		t.Fatalf("statuses not updated: %s/%s", updated.PaymentStatus, updated.ShippingStatus)
	}

	// Partial update touches only the named status.
	up = map[string]string{"shippingStatus": "delivered"}
	if code := env.adminDo(http.MethodPut, "/admin/orders/"+ord.ID, up, &updated); code != http.StatusOK {
		t.Fatalf("PUT /admin/orders/{id}: status %d", code)
	}
	if updated.PaymentStatus != order.PaymentPaid || updated.ShippingStatus != order.ShipDelivered {
		t.Fatalf("partial status update: %s/%s", updated.PaymentStatus, updated.ShippingStatus)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := NewTestEnv(t, startDB(t))

	if code := env.do(http.MethodPost, "/checkout", checkoutBody, false, nil); code != http.StatusUnprocessableEntity {
		t.Fatalf("empty cart checkout: expected 422, got %d", code)
	}
}

func TestCheckoutValidation(t *testing.T) {
	env := NewTestEnv(t, startDB(t))

	if code := env.do(http.MethodPut, "/cart/items", map[string]int{"variant_id": 101}, false, nil); code != http.StatusOK {
		t.Fatalf("PUT /cart/items: status %d", code)
	}

	body := map[string]string{"customerName": "Ada Lovelace"}
	if code := env.do(http.MethodPost, "/checkout", body, false, nil); code != http.StatusUnprocessableEntity {
		t.Fatalf("incomplete checkout: expected 422, got %d", code)
	}

	// A rejected checkout leaves the cart alone.
	var view cart.View
	if code := env.get("/cart", &view); code != http.StatusOK {
		t.Fatalf("GET /cart: status %d", code)
	}
	if len(view.Items) != 1 {
		t.Fatalf("cart must survive a rejected checkout, got %+v", view.Items)
	}
}

func TestOrderStatusUpdateErrors(t *testing.T) {
	env := NewTestEnv(t, startDB(t))

	up := map[string]string{"paymentStatus": "paid"}
	if code := env.adminDo(http.MethodPut, "/admin/orders/not-a-uuid", up, nil); code != http.StatusBadRequest {
		t.Fatalf("bad order id: expected 400, got %d", code)
	}
	if code := env.adminDo(http.MethodPut, "/admin/orders/6ba7b810-9dad-11d1-80b4-00c04fd430c8", up, nil); code != http.StatusNotFound {
		t.Fatalf("unknown order id: expected 404, got %d", code)
	}

	// An unknown status value never reaches the database.
	bad := map[string]string{"paymentStatus": "maybe"}
	if code := env.adminDo(http.MethodPut, "/admin/orders/6ba7b810-9dad-11d1-80b4-00c04fd430c8", bad, nil); code != http.StatusUnprocessableEntity {
		t.Fatalf("bad status value: expected 422, got %d", code)
	}
}
