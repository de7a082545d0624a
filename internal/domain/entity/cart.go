package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one product entry in a customer's cart. PriceSnapshot is
// captured when the line is first added and is what checkout charges,
// regardless of later catalog price changes.
type CartLine struct {
	ProductID     uuid.UUID       `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"` // Always > 0; a line at zero is removed, not kept.
	PriceSnapshot decimal.Decimal `json:"price_snapshot"`
}

// Subtotal returns PriceSnapshot multiplied by Quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.PriceSnapshot.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the per-customer working set of lines. It lives in the
// session store only and is cleared on successful checkout.
type Cart struct {
	CustomerID uuid.UUID  `json:"customer_id"`
	Lines      []CartLine `json:"lines"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Lines) == 0
}

// Total sums the subtotals of all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	if c == nil {
		return total
	}
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal())
	}

	return total
}
