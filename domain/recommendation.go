package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ScoredCard is a ranked catalog card; never persisted.
type ScoredCard struct {
	Card    Card     `json:"card"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// DebugRecommendation exposes how each strategy contributed to the
// hybrid score of one card.
type DebugRecommendation struct {
	CardID            uint64  `json:"card_id"`
	HistoryScore      float64 `json:"history_score"`
	CollabScore       float64 `json:"collab_score"`
	PopularityScore   float64 `json:"popularity_score"`
	HistoryWeighted   float64 `json:"history_weighted"`
	CollabWeighted    float64 `json:"collab_weighted"`
	PopWeighted       float64 `json:"pop_weighted"`
	FinalScore        float64 `json:"final_score"`
	AppearedInSignals int     `json:"appeared_in_signals"`
}

type RecommendationEvent struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	TraceID    string            `gorm:"column:trace_id;not null" json:"trace_id"`
	UserID     uint              `gorm:"column:user_id;not null" json:"user_id"`
	Strategy   string            `gorm:"column:strategy;not null" json:"strategy"`
	Limit      int               `gorm:"column:request_limit" json:"limit"`
	Returned   int               `gorm:"column:returned" json:"returned"`
	DurationMS int64             `gorm:"column:duration_ms" json:"duration_ms"`
	Context    datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RecommendationEvent) TableName() string {
	return "recommendation_events"
}

// RecommendConfig holds the runtime-tunable knobs of the hybrid blend.
type RecommendConfig struct {
	ID                  uint    `gorm:"primaryKey" json:"-"`
	WHistory            float64 `json:"w_history" gorm:"column:w_history"`
	WCollaborative      float64 `json:"w_collaborative" gorm:"column:w_collaborative"`
	WPopularity         float64 `json:"w_popularity" gorm:"column:w_popularity"`
	MaxNeighbors        int     `json:"max_neighbors" gorm:"column:max_neighbors"`
	CandidateMultiplier int     `json:"candidate_multiplier" gorm:"column:candidate_multiplier"`
	MaxPromptHistory    int     `json:"max_prompt_history" gorm:"column:max_prompt_history"`
	MaxPromptCandidates int     `json:"max_prompt_candidates" gorm:"column:max_prompt_candidates"`
}

func (RecommendConfig) TableName() string {
	return "recommend_configs"
}
