package rest

import (
	"context"
	"myCardVault/domain"
	"myCardVault/pkg/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RecommendService interface {
	GetRecommendations(ctx context.Context, userID uint, strategy string, refCardID uint64, limit int) ([]domain.ScoredCard, error)
	DebugRecommend(ctx context.Context, userID uint, limit int) ([]domain.DebugRecommendation, error)
}

type RecommendHandler struct {
	recommendService RecommendService
	validate         *validator.Validate
}

func NewRecommendHandler(recommendService RecommendService) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
		validate:         validator.New(),
	}
}

type RecommendQuery struct {
	Strategy string `query:"strategy" validate:"required,oneof=content collaborative history popular hybrid generative"`
	N        int    `query:"n" validate:"omitempty,gt=0,lte=100"`
	CardID   uint64 `query:"card_id"`
}

func (h *RecommendHandler) GetRecommendations(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.N == 0 {
		q.N = 10
	}

	start := time.Now()
	recs, err := h.recommendService.GetRecommendations(c.Request().Context(), userID, q.Strategy, q.CardID, q.N)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// DebugRecommend inspects the hybrid fusion for the calling user, or
// for any user via the user_id query parameter.
func (h *RecommendHandler) DebugRecommend(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}
	if raw := c.QueryParam("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
		}
		userID = uint(parsed)
	}

	limit := 10
	if n := c.QueryParam("n"); n != "" {
		parsed, err := strconv.Atoi(n)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
		limit = parsed
	}

	rows, err := h.recommendService.DebugRecommend(c.Request().Context(), userID, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rows))
}
