package recommend

import (
	"context"
	"fmt"
	"myCardVault/domain"
	"myCardVault/pkg/logger"
	"myCardVault/pkg/metrics"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StrategyContent       = "content"
	StrategyCollaborative = "collaborative"
	StrategyHistory       = "history"
	StrategyPopular       = "popular"
	StrategyHybrid        = "hybrid"
	StrategyGenerative    = "generative"
)

// ---- Repository interfaces ----

type CardRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Card, error)
	// FindInStock lists cards with stock > 0, optionally excluding ids.
	FindInStock(ctx context.Context, exclude []uint64) ([]domain.Card, error)
}

type OrderHistoryRepository interface {
	// FindByUser returns a customer's order lines newest-first.
	FindByUser(ctx context.Context, userID uint) ([]domain.Orders, error)
	FindAll(ctx context.Context) ([]domain.Orders, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.RecommendationEvent) error
}

// TextCompleter is the generative-text collaborator: prompt in, text
// out, no guarantees on format or determinism.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ---- Usecase / Service ----

type Service struct {
	cardRepo   CardRepository
	orderRepo  OrderHistoryRepository
	userRepo   UserRepository
	cfgRepo    ConfigRepository
	eventRepo  EventRepository
	completer  TextCompleter
	defaultCfg Config
}

func NewService(
	cardRepo CardRepository,
	orderRepo OrderHistoryRepository,
	userRepo UserRepository,
	cfgRepo ConfigRepository,
	eventRepo EventRepository,
	completer TextCompleter,
	defaultCfg Config,
) *Service {
	return &Service{
		cardRepo:   cardRepo,
		orderRepo:  orderRepo,
		userRepo:   userRepo,
		cfgRepo:    cfgRepo,
		eventRepo:  eventRepo,
		completer:  completer,
		defaultCfg: defaultCfg,
	}
}

// GetRecommendations ranks catalog cards for a shopper using the
// requested strategy. Content needs refCardID; collaborative, history,
// hybrid and generative use userID.
func (s *Service) GetRecommendations(
	ctx context.Context,
	userID uint,
	strategy string,
	refCardID uint64,
	limit int,
) ([]domain.ScoredCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = 10
	}

	cfg := s.loadConfig(ctx)
	start := time.Now()

	var (
		recs []domain.ScoredCard
		err  error
	)

	switch strategy {
	case StrategyContent:
		recs, err = s.recommendContent(ctx, refCardID, limit)
	case StrategyCollaborative:
		recs, err = s.recommendCollaborative(ctx, userID, limit, cfg)
	case StrategyHistory:
		recs, err = s.recommendHistory(ctx, userID, limit)
	case StrategyPopular:
		recs, err = s.recommendPopular(ctx, limit)
	case StrategyHybrid:
		recs, err = s.recommendHybrid(ctx, userID, limit, cfg)
	case StrategyGenerative:
		recs, err = s.recommendGenerative(ctx, userID, limit, cfg)
	default:
		return nil, fmt.Errorf("unknown strategy: %s", strategy)
	}
	if err != nil {
		return nil, err
	}

	s.recordEvent(ctx, userID, strategy, refCardID, limit, len(recs), time.Since(start))
	metrics.RecommendRequests.WithLabelValues(strategy).Inc()

	return recs, nil
}

// recordEvent persists a serving event, best-effort. A save failure is
// logged and never surfaced.
func (s *Service) recordEvent(
	ctx context.Context,
	userID uint,
	strategy string,
	refCardID uint64,
	limit, returned int,
	took time.Duration,
) {
	if s.eventRepo == nil {
		return
	}

	event := domain.RecommendationEvent{
		TraceID:    uuid.NewString(),
		UserID:     userID,
		Strategy:   strategy,
		Limit:      limit,
		Returned:   returned,
		DurationMS: took.Milliseconds(),
		Context:    datatypes.JSONMap{},
	}
	if refCardID != 0 {
		event.Context["ref_card_id"] = refCardID
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		logger.Error("failed to save recommendation event", "error", err, "trace_id", event.TraceID)
	}
}

// sortScored orders by score descending, then card id ascending so
// equal scores stay deterministic.
func sortScored(items []domain.ScoredCard) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Card.ID < items[j].Card.ID
	})
}

func truncateScored(items []domain.ScoredCard, limit int) []domain.ScoredCard {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
