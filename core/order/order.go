package order

import (
	"time"

	"github.com/skinflex/api/core/cart"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type ShippingStatus string

const (
	ShipProcessing ShippingStatus = "processing"
	ShipShipped    ShippingStatus = "shipped"
	ShipDelivered  ShippingStatus = "delivered"
	ShipCancelled  ShippingStatus = "cancelled"
)

// Order is an immutable snapshot of the cart lines plus shipping and
// payment state taken at checkout time.
type Order struct {
	ID             string         `json:"id" db:"order_id"`
	CartID         string         `json:"-" db:"cart_id"`
	CustomerName   string         `json:"customerName" db:"customer_name"`
	CustomerPhone  string         `json:"customerPhone" db:"customer_phone"`
	ShipName       string         `json:"shipName" db:"ship_name"`
	ShipAddress    string         `json:"shipAddress" db:"ship_address"`
	ShipCity       string         `json:"shipCity" db:"ship_city"`
	ShipState      string         `json:"shipState" db:"ship_state"`
	ShipZip        string         `json:"shipZip" db:"ship_zip"`
	Total          int64          `json:"total" db:"total"`
	PaymentStatus  PaymentStatus  `json:"paymentStatus" db:"payment_status"`
	ShippingStatus ShippingStatus `json:"shippingStatus" db:"shipping_status"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time      `json:"updatedAt" db:"updated_at"`
	Items          []Item         `json:"items" db:"-"`
}

// Item carries the variant snapshot of one cart line into the order.
type Item struct {
	OrderID    string    `json:"-" db:"order_id"`
	VariantID  int64     `json:"variant_id" db:"variant_id"`
	Name       string    `json:"name" db:"name"`
	MasterName string    `json:"master_name" db:"master_name"`
	ModelName  string    `json:"model_name" db:"model_name"`
	ColorHex   string    `json:"color_hex" db:"color_hex"`
	ImageURL   string    `json:"image_url" db:"image_url"`
	Price      int64     `json:"price" db:"price"`
	Quantity   int       `json:"quantity" db:"quantity"`
	CreatedAt  time.Time `json:"-" db:"created_at"`
}

type CheckoutNew struct {
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerPhone string `json:"customerPhone" validate:"required"`
	ShipName      string `json:"shipName" validate:"required"`
	ShipAddress   string `json:"shipAddress" validate:"required"`
	ShipCity      string `json:"shipCity" validate:"required"`
	ShipState     string `json:"shipState" validate:"required"`
	ShipZip       string `json:"shipZip" validate:"required"`
}

type StatusUp struct {
	PaymentStatus  *PaymentStatus  `json:"paymentStatus" validate:"omitempty,oneof=pending paid failed"`
	ShippingStatus *ShippingStatus `json:"shippingStatus" validate:"omitempty,oneof=processing shipped delivered cancelled"`
}

// FromLedger builds the order snapshot for a cart. The total is
// derived from the lines themselves, so it can never disagree with the
// items stored alongside it.
func FromLedger(id string, cartID string, nc CheckoutNew, lines []cart.Line, now time.Time) Order {
	ord := Order{
		ID:             id,
		CartID:         cartID,
		CustomerName:   nc.CustomerName,
		CustomerPhone:  nc.CustomerPhone,
		ShipName:       nc.ShipName,
		ShipAddress:    nc.ShipAddress,
		ShipCity:       nc.ShipCity,
		ShipState:      nc.ShipState,
		ShipZip:        nc.ShipZip,
		PaymentStatus:  PaymentPending,
		ShippingStatus: ShipProcessing,
		CreatedAt:      now,
		UpdatedAt:      now,
		Items:          make([]Item, 0, len(lines)),
	}

	for _, ln := range lines {
		var imageURL string
		if len(ln.ImageURLs) > 0 {
			imageURL = ln.ImageURLs[0]
		}

		ord.Items = append(ord.Items, Item{
			OrderID:    id,
			VariantID:  ln.VariantID,
			Name:       ln.Name,
			MasterName: ln.MasterName,
			ModelName:  ln.ModelName,
			ColorHex:   ln.ColorHex,
			ImageURL:   imageURL,
			Price:      ln.Price,
			Quantity:   ln.Quantity,
			CreatedAt:  now,
		})

		ord.Total += ln.Price * int64(ln.Quantity)
	}

	return ord
}
