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

// cartService implements the CartUsecase interface on top of the
// session cart store. The store serializes Put calls per customer, so
// each mutation here is a read-modify-write of one customer's cart.
type cartService struct {
	cartStore   repository.CartStore
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartStore   repository.CartStore
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartStore:   params.CartStore,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// Get returns the customer's current cart.
func (srv *cartService) Get(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartStore.Get(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// Add puts one unit of the product into the cart. The catalog price is
// snapshotted on first add; adding an existing line bumps its quantity
// and keeps the original snapshot.
func (srv *cartService) Add(ctx context.Context, customerID, productID uuid.UUID) (*entity.Cart, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			// Unknown product leaves the cart exactly as it was.
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product does not exist")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	cart, err := srv.cartStore.Get(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if line := findLine(cart, productID); line != nil {
		line.Quantity++
	} else {
		cart.Lines = append(cart.Lines, entity.CartLine{
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      1,
			PriceSnapshot: product.Price,
		})
	}
	cart.UpdatedAt = time.Now()

	if err := srv.cartStore.Put(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to store cart")
	}

	srv.logger.Debug("Product added to cart",
		slog.Any("customerID", customerID), slog.Any("productID", productID))

	return cart, nil
}

// Increase bumps an existing line's quantity by one.
func (srv *cartService) Increase(ctx context.Context, customerID, productID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartStore.Get(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	line := findLine(cart, productID)
	if line == nil {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product is not in the cart")
	}

	line.Quantity++
	cart.UpdatedAt = time.Now()

	if err := srv.cartStore.Put(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to store cart")
	}

	return cart, nil
}

// Decrease lowers a line's quantity by one; at zero the line is removed
// rather than kept around empty.
func (srv *cartService) Decrease(ctx context.Context, customerID, productID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartStore.Get(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	for i := range cart.Lines {
		if cart.Lines[i].ProductID != productID {
			continue
		}

		cart.Lines[i].Quantity--
		if cart.Lines[i].Quantity <= 0 {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
		}
		cart.UpdatedAt = time.Now()

		if err := srv.cartStore.Put(ctx, cart); err != nil {
			return nil, errors.Wrap(err, "failed to store cart")
		}

		return cart, nil
	}

	return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product is not in the cart")
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context, customerID uuid.UUID) error {
	if err := srv.cartStore.Clear(ctx, customerID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func findLine(cart *entity.Cart, productID uuid.UUID) *entity.CartLine {
	for i := range cart.Lines {
		if cart.Lines[i].ProductID == productID {
			return &cart.Lines[i]
		}
	}

	return nil
}
