// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultConfirmTimeout = 5 * time.Second

// orderService implements the OrderUsecase interface: the state machine
// from cart checkout through approval and customer notification.
type orderService struct {
	orderRepo        repository.OrderRepository
	notificationRepo repository.NotificationRepository
	countryRepo      repository.CountryRepository
	cartStore        repository.CartStore
	confirmer        service.PaymentConfirmer
	confirmTimeout   time.Duration
	pendingMaxAge    time.Duration
	logger           *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo        repository.OrderRepository
	NotificationRepo repository.NotificationRepository
	CountryRepo      repository.CountryRepository
	CartStore        repository.CartStore
	Confirmer        service.PaymentConfirmer `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewOrderService is the constructor for orderService. It receives all dependencies as interfaces.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	confirmTimeout := defaultConfirmTimeout
	if params.Config != nil && params.Config.Payment != nil && params.Config.Payment.Timeout > 0 {
		confirmTimeout = params.Config.Payment.Timeout
	}

	pendingMaxAge := time.Duration(0)
	if params.Config != nil && params.Config.Orders != nil {
		pendingMaxAge = params.Config.Orders.PendingMaxAge
	}

	return &orderService{
		orderRepo:        params.OrderRepo,
		notificationRepo: params.NotificationRepo,
		countryRepo:      params.CountryRepo,
		cartStore:        params.CartStore,
		confirmer:        params.Confirmer,
		confirmTimeout:   confirmTimeout,
		pendingMaxAge:    pendingMaxAge,
		logger:           params.Logger,
	}
}

// CheckoutView returns the current cart together with the country lookup.
func (srv *orderService) CheckoutView(ctx context.Context, customerID uuid.UUID) (*usecase.CheckoutView, error) {
	cart, err := srv.cartStore.Get(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	countries, err := srv.countryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load countries")
	}

	return &usecase.CheckoutView{Cart: cart, Countries: countries}, nil
}

// Checkout turns a non-empty cart into a pending order and clears the cart.
// The order total is the sum of the cart's price snapshots, locked in
// here and never recomputed from live catalog prices.
func (srv *orderService) Checkout(ctx context.Context, customerID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	cart, err := srv.cartStore.Get(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if cart.IsEmpty() {
		srv.logger.Warn("Checkout attempted with empty cart", slog.Any("customerID", customerID))

		return nil, errors.Wrap(domainerrors.ErrCartEmpty, "checkout requires a non-empty cart")
	}

	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Shipping: entity.ShippingInfo{
			FullName: input.FullName,
			Phone:    input.Phone,
			Email:    input.Email,
			Address:  input.Address,
			Country:  input.Country,
			City:     input.City,
		},
		Lines:         cart.Lines,
		Total:         cart.Total(),
		PaymentMethod: input.PaymentMethod,
		Status:        entity.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to persist order")
	}

	if err := srv.cartStore.Clear(ctx, customerID); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart after checkout")
	}

	// The thank-you message deliberately omits the order id: only the
	// approval transition references it, so the feed carries exactly
	// one message per order that does.
	thanks := fmt.Sprintf("Thank you for your order, %s! Total: %s. We will notify you once it is approved.",
		order.Shipping.FullName, order.Total.StringFixed(2))
	if err := srv.notify(ctx, order.Shipping.Email, thanks); err != nil {
		// The order is already persisted; a failed thank-you message is
		// logged rather than failing the checkout.
		srv.logger.Error("Failed to append checkout notification", slog.Any("orderID", order.ID), slog.Any("error", err))
	}

	srv.logger.Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("customerID", customerID),
		slog.String("total", order.Total.StringFixed(2)))

	return order, nil
}

// ContinueCheckout acknowledges a pending order without mutating it.
func (srv *orderService) ContinueCheckout(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.CustomerID != customerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order belongs to another customer")
	}

	return order, nil
}

// GetActiveOrder returns the customer's most recent pending order.
func (srv *orderService) GetActiveOrder(ctx context.Context, customerID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindActiveByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "no pending order for customer")
		}

		return nil, errors.Wrap(err, "failed to find active order")
	}

	return order, nil
}

// ListOrders returns the customer's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

// ListAllOrders returns every order for the admin dashboard.
func (srv *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Approve transitions a pending order to approved. When a payment
// confirmer is configured and the check is not skipped, the external
// ledger must answer an affirmative true first; a timeout, error or
// negative answer leaves the order pending.
func (srv *orderService) Approve(ctx context.Context, input *usecase.ApproveInput) (*entity.Order, error) {
	order, err := srv.loadOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if order.Status != entity.OrderStatusPending {
		srv.logger.Warn("Approve on non-pending order",
			slog.Any("orderID", order.ID), slog.String("status", order.Status.String()))

		return nil, errors.Wrap(domainerrors.ErrOrderNotPending, "order cannot be approved twice")
	}

	if srv.confirmer != nil && !input.SkipPaymentCheck {
		if err := srv.confirmPayment(ctx, order); err != nil {
			return nil, err
		}
	}

	updated, err := srv.transition(ctx, order.ID, entity.OrderStatusApproved)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Your order %s has been approved. Thank you for shopping with us!", updated.ID)
	if err := srv.notify(ctx, updated.Shipping.Email, message); err != nil {
		return nil, errors.Wrap(err, "failed to append approval notification")
	}

	srv.logger.Info("Order approved", slog.Any("orderID", updated.ID))

	return updated, nil
}

// Reject transitions a pending order to rejected.
func (srv *orderService) Reject(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	updated, err := srv.transition(ctx, orderID, entity.OrderStatusRejected)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Your order %s was rejected. Please contact support if you believe this is a mistake.", updated.ID)
	if err := srv.notify(ctx, updated.Shipping.Email, message); err != nil {
		return nil, errors.Wrap(err, "failed to append rejection notification")
	}

	srv.logger.Info("Order rejected", slog.Any("orderID", updated.ID))

	return updated, nil
}

// ExpirePending transitions stale pending orders to expired.
func (srv *orderService) ExpirePending(ctx context.Context) (int, error) {
	if srv.pendingMaxAge <= 0 {
		return 0, nil
	}

	cutoff := time.Now().Add(-srv.pendingMaxAge)
	stale, err := srv.orderRepo.FindPendingOlderThan(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find stale pending orders")
	}

	expired := 0
	for _, order := range stale {
		updated, err := srv.transition(ctx, order.ID, entity.OrderStatusExpired)
		if err != nil {
			// Lost the race against a concurrent approval; skip.
			if errors.Is(err, domainerrors.ErrOrderNotPending) {
				continue
			}

			return expired, err
		}

		message := fmt.Sprintf("Your order %s expired before payment was confirmed.", updated.ID)
		if err := srv.notify(ctx, updated.Shipping.Email, message); err != nil {
			return expired, errors.Wrap(err, "failed to append expiry notification")
		}
		expired++
	}

	if expired > 0 {
		srv.logger.Info("Expired stale pending orders", slog.Int("count", expired))
	}

	return expired, nil
}

func (srv *orderService) confirmPayment(ctx context.Context, order *entity.Order) error {
	confirmCtx, cancel := context.WithTimeout(ctx, srv.confirmTimeout)
	defer cancel()

	confirmed, err := srv.confirmer.Confirm(confirmCtx, order)
	if err != nil {
		srv.logger.Warn("Payment confirmation failed",
			slog.Any("orderID", order.ID), slog.Any("error", err))

		// Collaborator failure degrades to unconfirmed, never to approved.
		return errors.Wrap(domainerrors.ErrPaymentUnconfirmed, "payment confirmation unavailable")
	}
	if !confirmed {
		return errors.Wrap(domainerrors.ErrPaymentUnconfirmed, "no cleared payment found for order")
	}

	return nil
}

// transition performs the pending -> status change atomically: the
// guard runs inside the collection lock, so a second caller observing
// a non-pending order always gets a conflict.
func (srv *orderService) transition(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	updated, err := srv.orderRepo.UpdateStatus(ctx, orderID, status, func(current *entity.Order) error {
		if current.Status != entity.OrderStatusPending {
			return errors.Wrap(domainerrors.ErrOrderNotPending, "order already left the pending state")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order does not exist")
		}

		return nil, errors.Wrapf(err, "failed to transition order to %s", status)
	}

	return updated, nil
}

func (srv *orderService) loadOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order does not exist")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

func (srv *orderService) notify(ctx context.Context, recipient, message string) error {
	return srv.notificationRepo.Append(ctx, &entity.Notification{
		ID:        uuid.New(),
		Recipient: recipient,
		Message:   message,
		CreatedAt: time.Now(),
	})
}
