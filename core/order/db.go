package order

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/skinflex/api/database"
)

func Create(ctx context.Context, db sqlx.ExtContext, ord Order) error {
	const q = `
	INSERT INTO orders
		(order_id, cart_id, customer_name, customer_phone, ship_name, ship_address,
		 ship_city, ship_state, ship_zip, total, payment_status, shipping_status,
		 created_at, updated_at)
	VALUES
		(:order_id, :cart_id, :customer_name, :customer_phone, :ship_name, :ship_address,
		 :ship_city, :ship_state, :ship_zip, :total, :payment_status, :shipping_status,
		 :created_at, :updated_at)`

	if err := database.NamedExec(ctx, db, q, ord); err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}
	return nil
}

func CreateItem(ctx context.Context, db sqlx.ExtContext, it Item) error {
	const q = `
	INSERT INTO order_items
		(order_id, variant_id, name, master_name, model_name, color_hex, image_url,
		 price, quantity, created_at)
	VALUES
		(:order_id, :variant_id, :name, :master_name, :model_name, :color_hex, :image_url,
		 :price, :quantity, :created_at)`

	if err := database.NamedExec(ctx, db, q, it); err != nil {
		return fmt.Errorf("inserting order item: %w", err)
	}
	return nil
}

func Fetch(ctx context.Context, db sqlx.ExtContext, id string) (Order, error) {
	const q = `SELECT * FROM orders WHERE order_id = :order_id`

	in := struct {
		ID string `db:"order_id"`
	}{ID: id}

	var ord Order
	if err := database.NamedQueryStruct(ctx, db, q, in, &ord); err != nil {
		return Order{}, fmt.Errorf("fetching order[%s]: %w", id, err)
	}

	items, err := FetchItems(ctx, db, id)
	if err != nil {
		return Order{}, err
	}
	ord.Items = items

	return ord, nil
}

func FetchItems(ctx context.Context, db sqlx.ExtContext, orderID string) ([]Item, error) {
	const q = `SELECT * FROM order_items WHERE order_id = :order_id ORDER BY variant_id`

	in := struct {
		ID string `db:"order_id"`
	}{ID: orderID}

	items := []Item{}
	if err := database.NamedQuerySlice(ctx, db, q, in, &items); err != nil {
		return nil, fmt.Errorf("fetching items of order[%s]: %w", orderID, err)
	}

	return items, nil
}

func List(ctx context.Context, db sqlx.ExtContext) ([]Order, error) {
	const q = `SELECT * FROM orders ORDER BY created_at DESC`

	orders := []Order{}
	if err := database.NamedQuerySlice(ctx, db, q, struct{}{}, &orders); err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	for i := range orders {
		items, err := FetchItems(ctx, db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func ListByCart(ctx context.Context, db sqlx.ExtContext, cartID string) ([]Order, error) {
	const q = `SELECT * FROM orders WHERE cart_id = :cart_id ORDER BY created_at DESC`

	in := struct {
		CartID string `db:"cart_id"`
	}{CartID: cartID}

	orders := []Order{}
	if err := database.NamedQuerySlice(ctx, db, q, in, &orders); err != nil {
		return nil, fmt.Errorf("listing orders of cart[%s]: %w", cartID, err)
	}

	for i := range orders {
		items, err := FetchItems(ctx, db, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func UpdateStatus(ctx context.Context, db sqlx.ExtContext, ord Order) error {
	const q = `
	UPDATE orders SET
		payment_status = :payment_status,
		shipping_status = :shipping_status,
		updated_at = :updated_at
	WHERE order_id = :order_id`

	if err := database.NamedExec(ctx, db, q, ord); err != nil {
		return fmt.Errorf("updating status of order[%s]: %w", ord.ID, err)
	}
	return nil
}
