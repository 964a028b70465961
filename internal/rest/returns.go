package rest

import (
	"context"
	"errors"
	"myCardVault/domain"
	"net/http"
	"strconv"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ReturnService interface {
	RequestReturn(ctx context.Context, userID uint, orderID int, reason string) (domain.Return, error)
	GetReturnsByUser(ctx context.Context, userID uint) ([]domain.Return, error)
	UpdateStatus(ctx context.Context, id uint, status string) (domain.Return, error)
}

type ReturnHandler struct {
	returnService ReturnService
	validate      *validator.Validate
}

func NewReturnHandler(returnService ReturnService) *ReturnHandler {
	return &ReturnHandler{
		returnService: returnService,
		validate:      validator.New(),
	}
}

type ReturnRequest struct {
	OrderID int    `json:"order_id" validate:"required"`
	Reason  string `json:"reason" validate:"required"`
}

type ReturnStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *ReturnHandler) RequestReturn(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ReturnRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ret, err := h.returnService.RequestReturn(c.Request().Context(), userID, req.OrderID, req.Reason)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(ret))
}

func (h *ReturnHandler) GetMyReturns(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	returns, err := h.returnService.GetReturnsByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(returns))
}

func (h *ReturnHandler) UpdateReturnStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid return id"})
	}

	var req ReturnStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ret, err := h.returnService.UpdateStatus(c.Request().Context(), uint(id), req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrReturnNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(ret))
}
