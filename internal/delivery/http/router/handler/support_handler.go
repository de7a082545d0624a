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

// SupportHandler holds dependencies for support messaging handlers.
type SupportHandler struct {
	uc     usecase.SupportUsecase
	logger *slog.Logger
}

// NewSupportHandler is the constructor for SupportHandler, injected by Fx.
func NewSupportHandler(uc usecase.SupportUsecase, logger *slog.Logger) *SupportHandler {
	return &SupportHandler{
		uc:     uc,
		logger: logger,
	}
}

// Send handles a customer support message.
func (h *SupportHandler) Send(c echo.Context) error {
	email, err := currentEmail(c)
	if err != nil {
		return err
	}

	var input *usecase.SendSupportInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid support message input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.Send(c.Request().Context(), email, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Support message sent")
}

// ListMine handles the customer's own support thread request.
func (h *SupportHandler) ListMine(c echo.Context) error {
	email, err := currentEmail(c)
	if err != nil {
		return err
	}

	messages, err := h.uc.ListForSender(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// ListAll handles the admin support message listing request.
func (h *SupportHandler) ListAll(c echo.Context) error {
	messages, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// Reply handles the admin reply request.
func (h *SupportHandler) Reply(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid support message id")
	}

	var input *usecase.ReplySupportInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reply input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.Reply(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Reply sent")
}
