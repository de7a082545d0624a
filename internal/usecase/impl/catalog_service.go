package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// ListProducts returns the full catalog.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateProduct adds a product to the catalog. A negative price is rejected.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Price.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPrice, "price must not be negative")
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New(),
		Name:      input.Name,
		Price:     input.Price,
		Image:     input.Image,
		Category:  input.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created",
		slog.Any("productID", product.ID),
		slog.String("name", product.Name),
		slog.String("price", product.Price.StringFixed(2)))

	return product, nil
}

// EditProduct applies a partial update; nil fields stay as they were.
// The merge runs inside the collection lock, so concurrent edits of
// different fields both land. Orders and carts carry their own price
// snapshots, so an edit never touches them.
func (srv *catalogService) EditProduct(ctx context.Context, id uuid.UUID, input *usecase.EditProductInput) (*entity.Product, error) {
	if input.Price != nil && input.Price.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPrice, "price must not be negative")
	}

	product, err := srv.productRepo.Apply(ctx, id, func(product *entity.Product) error {
		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Category != nil {
			product.Category = *input.Category
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product does not exist")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.logger.Info("Product updated", slog.Any("productID", product.ID))

	return product, nil
}

// DeleteProduct removes a product from the catalog. Deleting an absent
// product reports not found.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product does not exist")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("Product deleted", slog.Any("productID", id))

	return nil
}
