package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for checkout and order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// CheckoutView handles the checkout form data request.
func (h *OrderHandler) CheckoutView(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	view, err := h.uc.CheckoutView(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Checkout handles the order creation request.
func (h *OrderHandler) Checkout(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Checkout(c.Request().Context(), customerID, input)
	middleware.RecordOrderOperation("checkout", err == nil)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ContinueCheckout handles the confirm-intent request on a pending order.
func (h *OrderHandler) ContinueCheckout(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input *usecase.ContinueInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.ContinueCheckout(c.Request().Context(), customerID, input.OrderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ListOrders handles the customer's own order listing request.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetActiveOrder handles the customer's active pending order request.
func (h *OrderHandler) GetActiveOrder(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetActiveOrder(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ListAllOrders handles the admin order listing request.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Approve handles the admin approval request. The skip_payment_check
// query parameter bypasses the external payment lookup for manual
// approvals.
func (h *OrderHandler) Approve(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	input := &usecase.ApproveInput{
		OrderID:          orderID,
		SkipPaymentCheck: c.QueryParam("skip_payment_check") == "true",
	}

	order, err := h.uc.Approve(c.Request().Context(), input)
	middleware.RecordOrderOperation("approve", err == nil)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order approved")
}

// Reject handles the admin rejection request.
func (h *OrderHandler) Reject(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.Reject(c.Request().Context(), orderID)
	middleware.RecordOrderOperation("reject", err == nil)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order rejected")
}
