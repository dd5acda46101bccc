// Package cart owns the per-session cart ledger: the authoritative
// list of (variant, quantity) lines with prices and display names
// snapshotted at add time, persisted to a key-value slot on every
// mutation.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/skinflex/api/core/catalog"
)

// ErrQuantity rejects an add with a non-positive quantity.
var ErrQuantity = errors.New("quantity must be at least 1")

// Line is one cart entry. Price and the display names are snapshots
// taken when the line was created; later catalog edits never alter an
// open cart.
type Line struct {
	VariantID  int64    `json:"variant_id"`
	Name       string   `json:"name"`
	MasterName string   `json:"master_name"`
	ModelName  string   `json:"model_name"`
	ColorHex   string   `json:"color_hex"`
	ImageURLs  []string `json:"image_urls"`
	Price      int64    `json:"price"`
	Quantity   int      `json:"quantity"`
}

// Ledger is the cart of a single session. It is loaded from the slot
// per request and is not shared across goroutines.
type Ledger struct {
	key   string
	lines []Line
	slot  Slot
	log   logrus.FieldLogger
}

// Load restores the ledger for key from the slot. A missing, corrupt
// or unreadable blob degrades to an empty cart; the condition is
// logged and never surfaces to the caller.
func Load(ctx context.Context, slot Slot, key string, log logrus.FieldLogger) *Ledger {
	l := &Ledger{key: key, slot: slot, log: log}

	blob, err := slot.Load(ctx, key)
	switch {
	case errors.Is(err, ErrNoCart):
		return l
	case err != nil:
		log.WithField("cart_id", key).Warnf("loading cart: %v", err)
		return l
	}

	if err := json.Unmarshal(blob, &l.lines); err != nil {
		log.WithField("cart_id", key).Warnf("corrupt cart blob, starting empty: %v", err)
		l.lines = nil
	}

	return l
}

// Add creates a line snapshotting the variant's price and display
// names, or increments the quantity of the line already holding this
// variant. Non-positive quantities are rejected without mutating state.
func (l *Ledger) Add(skin catalog.MasterSkin, v catalog.Variant, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("adding variant[%d]: %w", v.ID, ErrQuantity)
	}

	for i := range l.lines {
		if l.lines[i].VariantID == v.ID {
			l.lines[i].Quantity += quantity
			return nil
		}
	}

	l.lines = append(l.lines, Line{
		VariantID:  v.ID,
		Name:       v.Name,
		MasterName: skin.Name,
		ModelName:  skin.ModelName,
		ColorHex:   v.ColorHex,
		ImageURLs:  v.ImageURLs,
		Price:      v.Price,
		Quantity:   quantity,
	})
	return nil
}

// UpdateQuantity overwrites a line's quantity, leaving its snapshots
// untouched. A quantity of zero or less removes the line. Unknown
// variant ids are a no-op.
func (l *Ledger) UpdateQuantity(variantID int64, quantity int) {
	if quantity <= 0 {
		l.Remove(variantID)
		return
	}

	for i := range l.lines {
		if l.lines[i].VariantID == variantID {
			l.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line holding variantID, a no-op when absent.
func (l *Ledger) Remove(variantID int64) {
	for i := range l.lines {
		if l.lines[i].VariantID == variantID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the ledger, called after a successful checkout.
func (l *Ledger) Clear() {
	l.lines = nil
}

// Lines returns a copy of the current lines.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// Total recomputes the cart total from the line list on every call.
func (l *Ledger) Total() int64 {
	var total int64
	for _, ln := range l.lines {
		total += ln.Price * int64(ln.Quantity)
	}
	return total
}

// Persist writes the full line list to the slot. Failures are logged
// and absorbed: the ledger keeps serving its in-memory state.
func (l *Ledger) Persist(ctx context.Context) {
	blob, err := json.Marshal(l.lines)
	if err != nil {
		l.log.WithField("cart_id", l.key).Errorf("marshaling cart: %v", err)
		return
	}

	if err := l.slot.Save(ctx, l.key, blob); err != nil {
		l.log.WithField("cart_id", l.key).Errorf("persisting cart: %v", err)
	}
}
