package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a purchasable catalog record. Mutated only by admin
// operations; orders keep their own price snapshots, so editing or
// deleting a product never alters past orders.
type Product struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"` // Non-negative; validated at the boundary.
	Image     string          `json:"image"` // Path or URL of the product image.
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
