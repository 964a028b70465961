package recommend

import (
	"context"
	"errors"
	"myCardVault/domain"
	"testing"
)

type fakeConfigRepo struct {
	cfg   domain.RecommendConfig
	found bool
	err   error
}

func (f *fakeConfigRepo) GetConfig(ctx context.Context) (domain.RecommendConfig, bool, error) {
	return f.cfg, f.found, f.err
}

func (f *fakeConfigRepo) UpsertConfig(ctx context.Context, cfg domain.RecommendConfig) error {
	f.cfg, f.found = cfg, true
	return nil
}

func TestLoadConfigDefaultsWithoutRepo(t *testing.T) {
	svc := newTestService(&fakeCardRepo{}, &fakeOrderRepo{}, nil)

	cfg := svc.loadConfig(context.Background())
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverridesPerField(t *testing.T) {
	repo := &fakeConfigRepo{
		cfg: domain.RecommendConfig{
			WHistory:     0.7,
			MaxNeighbors: 9,
			// everything else left at zero keeps its default
		},
		found: true,
	}
	svc := NewService(&fakeCardRepo{}, &fakeOrderRepo{}, &fakeUserRepo{}, repo, nil, nil, DefaultConfig())

	cfg := svc.loadConfig(context.Background())

	if cfg.WHistory != 0.7 {
		t.Errorf("WHistory = %v, want 0.7", cfg.WHistory)
	}
	if cfg.MaxNeighbors != 9 {
		t.Errorf("MaxNeighbors = %v, want 9", cfg.MaxNeighbors)
	}
	if cfg.WCollaborative != defaultWCollaborative {
		t.Errorf("WCollaborative = %v, want default %v", cfg.WCollaborative, defaultWCollaborative)
	}
	if cfg.CandidateMultiplier != defaultCandidateMultiplier {
		t.Errorf("CandidateMultiplier = %v, want default", cfg.CandidateMultiplier)
	}
}

func TestLoadConfigErrorFallsBackToDefaults(t *testing.T) {
	repo := &fakeConfigRepo{err: errors.New("db gone")}
	svc := NewService(&fakeCardRepo{}, &fakeOrderRepo{}, &fakeUserRepo{}, repo, nil, nil, DefaultConfig())

	cfg := svc.loadConfig(context.Background())
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults on repo error", cfg)
	}
}

func TestLoadConfigMissRowFallsBackToDefaults(t *testing.T) {
	repo := &fakeConfigRepo{found: false}
	svc := NewService(&fakeCardRepo{}, &fakeOrderRepo{}, &fakeUserRepo{}, repo, nil, nil, DefaultConfig())

	cfg := svc.loadConfig(context.Background())
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults on a missing row", cfg)
	}
}
