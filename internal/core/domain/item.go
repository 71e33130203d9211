package domain

import "math"

// LineItemRole marks synthetic cart lines added at checkout.
type LineItemRole string

const (
	RoleTax      LineItemRole = "TAX"
	RoleShipping LineItemRole = "SHIPPING"
)

// Item is a product line: the currently viewed bike, or an entry in the cart.
type Item struct {
	ID          string       `json:"id,omitempty" validate:"max=128"`
	Description string       `json:"description" validate:"max=512"`
	Quantity    int          `json:"quantity,omitempty" validate:"gte=0"`
	UnitPrice   float64      `json:"unitPrice,omitempty" validate:"gte=0"`
	TotalPrice  float64      `json:"totalPrice" validate:"gte=0"`
	Role        LineItemRole `json:"role,omitempty" validate:"omitempty,oneof=TAX SHIPPING"`
}

// NewItem builds an item with TotalPrice = quantity * unitPrice.
func NewItem(id, description string, quantity int, unitPrice float64) Item {
	return Item{
		ID:          id,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  roundCents(float64(quantity) * unitPrice),
	}
}

// NewAdjustment builds a TAX or SHIPPING line with a fixed total.
func NewAdjustment(role LineItemRole, description string, total float64) Item {
	return Item{
		Description: description,
		TotalPrice:  total,
		Role:        role,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
