package recommend

import (
	"context"
	"myCardVault/domain"
)

// Config holds the runtime knobs of the engine. Strategy weights are
// named per strategy and tunable through the admin config endpoint.
type Config struct {
	WHistory       float64
	WCollaborative float64
	WPopularity    float64

	// collaborative filtering
	MaxNeighbors int

	// how many candidates each hybrid sub-strategy is asked for,
	// as a multiple of the requested limit
	CandidateMultiplier int

	// generative prompt bounds
	MaxPromptHistory    int
	MaxPromptCandidates int
}

const (
	defaultWHistory            = 0.5
	defaultWCollaborative      = 0.3
	defaultWPopularity         = 0.2
	defaultMaxNeighbors        = 5
	defaultCandidateMultiplier = 2
	defaultMaxPromptHistory    = 10
	defaultMaxPromptCandidates = 50
)

func DefaultConfig() Config {
	return Config{
		WHistory:            defaultWHistory,
		WCollaborative:      defaultWCollaborative,
		WPopularity:         defaultWPopularity,
		MaxNeighbors:        defaultMaxNeighbors,
		CandidateMultiplier: defaultCandidateMultiplier,
		MaxPromptHistory:    defaultMaxPromptHistory,
		MaxPromptCandidates: defaultMaxPromptCandidates,
	}
}

// read engine config from DB.
type ConfigRepository interface {
	GetConfig(ctx context.Context) (domain.RecommendConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.RecommendConfig) error
}

// loadConfig reads the stored config, falling back to defaults on a
// miss or error, and per-field for values left at zero.
func (s *Service) loadConfig(ctx context.Context) Config {
	if s.cfgRepo == nil {
		return s.defaultCfg
	}

	dbCfg, ok, err := s.cfgRepo.GetConfig(ctx)
	if err != nil || !ok {
		return s.defaultCfg
	}

	cfg := s.defaultCfg

	if dbCfg.WHistory > 0 {
		cfg.WHistory = dbCfg.WHistory
	}
	if dbCfg.WCollaborative > 0 {
		cfg.WCollaborative = dbCfg.WCollaborative
	}
	if dbCfg.WPopularity > 0 {
		cfg.WPopularity = dbCfg.WPopularity
	}
	if dbCfg.MaxNeighbors > 0 {
		cfg.MaxNeighbors = dbCfg.MaxNeighbors
	}
	if dbCfg.CandidateMultiplier > 0 {
		cfg.CandidateMultiplier = dbCfg.CandidateMultiplier
	}
	if dbCfg.MaxPromptHistory > 0 {
		cfg.MaxPromptHistory = dbCfg.MaxPromptHistory
	}
	if dbCfg.MaxPromptCandidates > 0 {
		cfg.MaxPromptCandidates = dbCfg.MaxPromptCandidates
	}

	return cfg
}
