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

type CardService interface {
	CreateCard(ctx context.Context, card *domain.Card) error
	GetCardByID(ctx context.Context, id uint64) (domain.Card, error)
	GetAllCards(ctx context.Context) ([]domain.Card, error)
	UpdateCard(ctx context.Context, card *domain.Card) error
	DeleteCard(ctx context.Context, id uint64) error
}

type CardHandler struct {
	cardService CardService
	validate    *validator.Validate
}

func NewCardHandler(cardService CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
		validate:    validator.New(),
	}
}

type CardRequest struct {
	Name        string  `json:"name" validate:"required"`
	CardType    string  `json:"card_type" validate:"required"`
	Rarity      string  `json:"rarity" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Description string  `json:"description"`
	SetID       uint64  `json:"set_id"`
}

func (h *CardHandler) CreateCard(c echo.Context) error {
	var req CardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	card := domain.Card{
		Name:        req.Name,
		CardType:    req.CardType,
		Rarity:      req.Rarity,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		SetID:       req.SetID,
	}

	if err := h.cardService.CreateCard(c.Request().Context(), &card); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(card))
}

func (h *CardHandler) GetCardByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid card id"})
	}

	card, err := h.cardService.GetCardByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(card))
}

func (h *CardHandler) GetAllCards(c echo.Context) error {
	cards, err := h.cardService.GetAllCards(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cards))
}

func (h *CardHandler) UpdateCard(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid card id"})
	}

	var req CardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	card := domain.Card{
		ID:          id,
		Name:        req.Name,
		CardType:    req.CardType,
		Rarity:      req.Rarity,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		SetID:       req.SetID,
	}

	if err := h.cardService.UpdateCard(c.Request().Context(), &card); err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(card))
}

func (h *CardHandler) DeleteCard(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid card id"})
	}

	if err := h.cardService.DeleteCard(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("card deleted"))
}
