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

type FeaturedService interface {
	GetSlot(ctx context.Context, slot string, limit int) ([]domain.ScoredCard, error)
	UpsertPick(ctx context.Context, pick *domain.FeaturedCard) error
}

type FeaturedHandler struct {
	featuredService FeaturedService
	validate        *validator.Validate
}

func NewFeaturedHandler(featuredService FeaturedService) *FeaturedHandler {
	return &FeaturedHandler{
		featuredService: featuredService,
		validate:        validator.New(),
	}
}

type FeaturedPickRequest struct {
	Slot   string  `json:"slot" validate:"required"`
	CardID uint64  `json:"card_id" validate:"required"`
	Score  float64 `json:"score"`
}

func (h *FeaturedHandler) GetSlot(c echo.Context) error {
	slot := c.QueryParam("slot")
	if slot == "" {
		slot = "home"
	}

	limit := 10
	if n := c.QueryParam("n"); n != "" {
		parsed, err := strconv.Atoi(n)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
		limit = parsed
	}

	picks, err := h.featuredService.GetSlot(c.Request().Context(), slot, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(picks))
}

func (h *FeaturedHandler) UpsertPick(c echo.Context) error {
	var req FeaturedPickRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	pick := domain.FeaturedCard{
		Slot:   req.Slot,
		CardID: req.CardID,
		Score:  req.Score,
	}

	if err := h.featuredService.UpsertPick(c.Request().Context(), &pick); err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(pick))
}
