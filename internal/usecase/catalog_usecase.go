package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to add a catalog product.
type CreateProductInput struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
}

// EditProductInput applies a partial update; nil fields are left unchanged.
type EditProductInput struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Image    *string          `json:"image"`
	Category *string          `json:"category"`
}

// CatalogUsecase defines catalog operations. List is public; the
// mutations are reached only through the admin surface.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	EditProduct(ctx context.Context, id uuid.UUID, input *EditProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
