package postgres

import (
	"context"
	"errors"
	"myCardVault/business/recommend"
	"myCardVault/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecommendConfigRepository struct {
	DB *gorm.DB
}

var _ recommend.ConfigRepository = (*RecommendConfigRepository)(nil)

func NewRecommendConfigRepository(db *gorm.DB) *RecommendConfigRepository {
	return &RecommendConfigRepository{DB: db}
}

func (r *RecommendConfigRepository) GetConfig(ctx context.Context) (domain.RecommendConfig, bool, error) {
	var cfg domain.RecommendConfig

	err := r.DB.WithContext(ctx).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RecommendConfig{}, false, nil
	}
	if err != nil {
		return domain.RecommendConfig{}, false, err
	}

	return cfg, true, nil
}

func (r *RecommendConfigRepository) UpsertConfig(ctx context.Context, cfg domain.RecommendConfig) error {
	// single row of engine knobs
	cfg.ID = 1

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"w_history",
				"w_collaborative",
				"w_popularity",
				"max_neighbors",
				"candidate_multiplier",
				"max_prompt_history",
				"max_prompt_candidates",
			}),
		}).
		Create(&cfg).Error
}
