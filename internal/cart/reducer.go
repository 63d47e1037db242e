package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one cart entry. It snapshots the catalog fields at add time; later
// catalog edits do not touch lines already in the cart.
type Line struct {
	ItemID   uuid.UUID       `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// State is the full cart for one user. All reducer operations treat it as an
// immutable value and return a fresh state.
type State struct {
	Items []Line `json:"items"`
}

// Empty returns a cart with no lines.
func Empty() State {
	return State{Items: []Line{}}
}

// Add increments the quantity of an existing line or appends a new line with
// quantity one. Insertion order is preserved.
func Add(state State, item Line) State {
	items := make([]Line, 0, len(state.Items)+1)
	found := false
	for _, line := range state.Items {
		if line.ItemID == item.ItemID {
			line.Quantity++
			found = true
		}
		items = append(items, line)
	}
	if !found {
		item.Quantity = 1
		items = append(items, item)
	}
	return State{Items: items}
}

// Remove drops the line matching the item id. Unknown ids are a no-op.
func Remove(state State, itemID uuid.UUID) State {
	items := make([]Line, 0, len(state.Items))
	for _, line := range state.Items {
		if line.ItemID != itemID {
			items = append(items, line)
		}
	}
	return State{Items: items}
}

// SetQuantity replaces the quantity of the matching line. A quantity of zero
// or less removes the line entirely.
func SetQuantity(state State, itemID uuid.UUID, quantity int) State {
	if quantity <= 0 {
		return Remove(state, itemID)
	}
	items := make([]Line, 0, len(state.Items))
	for _, line := range state.Items {
		if line.ItemID == itemID {
			line.Quantity = quantity
		}
		items = append(items, line)
	}
	return State{Items: items}
}

// Clear empties the cart.
func Clear(State) State {
	return Empty()
}

// TotalItems sums the quantities across all lines.
func TotalItems(state State) int {
	total := 0
	for _, line := range state.Items {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums price times quantity across all lines.
func TotalPrice(state State) decimal.Decimal {
	total := decimal.Zero
	for _, line := range state.Items {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
