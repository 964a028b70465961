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

type SetService interface {
	CreateSet(ctx context.Context, set *domain.CardSet) error
	GetSetByID(ctx context.Context, id uint64) (domain.CardSet, error)
	GetAllSets(ctx context.Context) ([]domain.CardSet, error)
	UpdateSet(ctx context.Context, set *domain.CardSet) error
	DeleteSet(ctx context.Context, id uint64) error
}

type SetHandler struct {
	setService SetService
	validate   *validator.Validate
}

func NewSetHandler(setService SetService) *SetHandler {
	return &SetHandler{
		setService: setService,
		validate:   validator.New(),
	}
}

type SetRequest struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	ReleaseYear int    `json:"release_year" validate:"required"`
}

func (h *SetHandler) CreateSet(c echo.Context) error {
	var req SetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	set := domain.CardSet{
		Name:        req.Name,
		Code:        req.Code,
		ReleaseYear: req.ReleaseYear,
	}

	if err := h.setService.CreateSet(c.Request().Context(), &set); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(set))
}

func (h *SetHandler) GetSetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid set id"})
	}

	set, err := h.setService.GetSetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSetNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(set))
}

func (h *SetHandler) GetAllSets(c echo.Context) error {
	sets, err := h.setService.GetAllSets(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(sets))
}

func (h *SetHandler) UpdateSet(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid set id"})
	}

	var req SetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	set := domain.CardSet{
		ID:          id,
		Name:        req.Name,
		Code:        req.Code,
		ReleaseYear: req.ReleaseYear,
	}

	if err := h.setService.UpdateSet(c.Request().Context(), &set); err != nil {
		if errors.Is(err, domain.ErrSetNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(set))
}

func (h *SetHandler) DeleteSet(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid set id"})
	}

	if err := h.setService.DeleteSet(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrSetNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("set deleted"))
}
