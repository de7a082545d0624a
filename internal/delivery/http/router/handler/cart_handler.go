package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for session cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// Get handles the current cart request.
func (h *CartHandler) Get(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.uc.Get(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem handles adding one unit of a product to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input *addItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.Add(c.Request().Context(), customerID, input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Product added to cart")
}

// IncreaseItem handles bumping a line's quantity by one.
func (h *CartHandler) IncreaseItem(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product id")
	}

	cart, err := h.uc.Increase(c.Request().Context(), customerID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// DecreaseItem handles lowering a line's quantity by one.
func (h *CartHandler) DecreaseItem(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product id")
	}

	cart, err := h.uc.Decrease(c.Request().Context(), customerID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// Clear handles emptying the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Clear(c.Request().Context(), customerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
