package rest

import (
	"context"
	"myCardVault/domain"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RecommendConfigStore interface {
	GetConfig(ctx context.Context) (domain.RecommendConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.RecommendConfig) error
}

type RecommendAdminHandler struct {
	store    RecommendConfigStore
	validate *validator.Validate
}

func NewRecommendAdminHandler(store RecommendConfigStore) *RecommendAdminHandler {
	return &RecommendAdminHandler{
		store:    store,
		validate: validator.New(),
	}
}

type RecommendConfigRequest struct {
	WHistory            float64 `json:"w_history" validate:"gte=0"`
	WCollaborative      float64 `json:"w_collaborative" validate:"gte=0"`
	WPopularity         float64 `json:"w_popularity" validate:"gte=0"`
	MaxNeighbors        int     `json:"max_neighbors" validate:"gte=0"`
	CandidateMultiplier int     `json:"candidate_multiplier" validate:"gte=0"`
	MaxPromptHistory    int     `json:"max_prompt_history" validate:"gte=0"`
	MaxPromptCandidates int     `json:"max_prompt_candidates" validate:"gte=0"`
}

func (h *RecommendAdminHandler) GetConfig(c echo.Context) error {
	cfg, found, err := h.store.GetConfig(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	if !found {
		cfg = domain.RecommendConfig{
			WHistory:            0.5,
			WCollaborative:      0.3,
			WPopularity:         0.2,
			MaxNeighbors:        5,
			CandidateMultiplier: 2,
			MaxPromptHistory:    10,
			MaxPromptCandidates: 50,
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cfg))
}

func (h *RecommendAdminHandler) UpdateConfig(c echo.Context) error {
	var req RecommendConfigRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	cfg := domain.RecommendConfig{
		WHistory:            req.WHistory,
		WCollaborative:      req.WCollaborative,
		WPopularity:         req.WPopularity,
		MaxNeighbors:        req.MaxNeighbors,
		CandidateMultiplier: req.CandidateMultiplier,
		MaxPromptHistory:    req.MaxPromptHistory,
		MaxPromptCandidates: req.MaxPromptCandidates,
	}

	if err := h.store.UpsertConfig(c.Request().Context(), cfg); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cfg))
}
