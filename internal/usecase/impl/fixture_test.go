package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/jsonfile"
	"storefront/internal/infra/session"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeConfirmer is a canned PaymentConfirmer for lifecycle tests.
type fakeConfirmer struct {
	confirmed bool
	err       error
	calls     int
}

func (f *fakeConfirmer) Confirm(_ context.Context, _ *entity.Order) (bool, error) {
	f.calls++

	return f.confirmed, f.err
}

// fixture wires the services against a real JSON-file store in a temp
// directory, so tests exercise the same persistence path as production.
type fixture struct {
	cfg *config.Config

	orderRepo        repository.OrderRepository
	productRepo      repository.ProductRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	supportRepo      repository.SupportMessageRepository
	cartStore        repository.CartStore
	confirmer        *fakeConfirmer

	users         usecase.UserUsecase
	catalog       usecase.CatalogUsecase
	carts         usecase.CartUsecase
	orders        usecase.OrderUsecase
	support       usecase.SupportUsecase
	notifications usecase.NotificationUsecase
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth:  &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		Admin: &config.AdminConfig{Name: "Root", Email: "admin@example.com", Password: "admin-password"},
		Cart:  &config.CartConfig{TTL: time.Hour},
		Orders: &config.OrdersConfig{
			PendingMaxAge: time.Hour,
			SweepInterval: time.Minute,
		},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := jsonfile.NewStore(t.TempDir())
	require.NoError(t, err)

	f := &fixture{
		cfg:              cfg,
		orderRepo:        jsonfile.NewOrderRepository(store),
		productRepo:      jsonfile.NewProductRepository(store),
		userRepo:         jsonfile.NewUserRepository(store),
		notificationRepo: jsonfile.NewNotificationRepository(store),
		supportRepo:      jsonfile.NewSupportMessageRepository(store),
		cartStore:        session.NewCartStore(cfg.Cart.TTL),
		confirmer:        &fakeConfirmer{confirmed: true},
	}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	countryRepo := jsonfile.NewCountryRepository(store)

	f.users = NewUserService(UserServiceParams{
		UserRepo: f.userRepo,
		Hasher:   auth.NewBcryptHasher(cfg),
		Tokens:   tokens,
		Config:   cfg,
		Logger:   logger,
	})
	f.catalog = NewCatalogService(CatalogServiceParams{
		ProductRepo: f.productRepo,
		Logger:      logger,
	})
	f.carts = NewCartService(CartServiceParams{
		CartStore:   f.cartStore,
		ProductRepo: f.productRepo,
		Logger:      logger,
	})
	f.orders = NewOrderService(OrderServiceParams{
		OrderRepo:        f.orderRepo,
		NotificationRepo: f.notificationRepo,
		CountryRepo:      countryRepo,
		CartStore:        f.cartStore,
		Confirmer:        f.confirmer,
		Config:           cfg,
		Logger:           logger,
	})
	f.support = NewSupportService(SupportServiceParams{
		SupportRepo: f.supportRepo,
		Logger:      logger,
	})
	f.notifications = NewNotificationService(NotificationServiceParams{
		NotificationRepo: f.notificationRepo,
		Logger:           logger,
	})

	return f
}

// seedProduct adds a catalog product with the given price.
func (f *fixture) seedProduct(t *testing.T, name, price string) *entity.Product {
	t.Helper()

	product, err := f.catalog.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:  name,
		Price: decimal.RequireFromString(price),
	})
	require.NoError(t, err)

	return product
}

// fillCart adds quantity units of the product to the customer's cart.
func (f *fixture) fillCart(t *testing.T, customerID, productID uuid.UUID, quantity int) {
	t.Helper()

	for i := 0; i < quantity; i++ {
		var err error
		if i == 0 {
			_, err = f.carts.Add(context.Background(), customerID, productID)
		} else {
			_, err = f.carts.Increase(context.Background(), customerID, productID)
		}
		require.NoError(t, err)
	}
}

// checkout places an order for the customer with standard shipping details.
func (f *fixture) checkout(t *testing.T, customerID uuid.UUID, email string) *entity.Order {
	t.Helper()

	order, err := f.orders.Checkout(context.Background(), customerID, &usecase.CheckoutInput{
		FullName:      "Ada Lovelace",
		Phone:         "+1 555 0100",
		Email:         email,
		Address:       "12 Analytical Way",
		Country:       "United Kingdom",
		City:          "London",
		PaymentMethod: "crypto",
	})
	require.NoError(t, err)

	return order
}

// notificationsMentioning counts the recipient's notifications whose
// message references the given order id.
func (f *fixture) notificationsMentioning(t *testing.T, recipient string, orderID uuid.UUID) int {
	t.Helper()

	items, err := f.notificationRepo.FindByRecipient(context.Background(), recipient)
	require.NoError(t, err)

	count := 0
	for _, n := range items {
		if strings.Contains(n.Message, orderID.String()) {
			count++
		}
	}

	return count
}
