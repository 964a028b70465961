package recommend

import (
	"context"
	"errors"
	"myCardVault/domain"
	"testing"
)

func TestRecommendHybridRespectsLimit(t *testing.T) {
	orders := &fakeOrderRepo{lines: []domain.Orders{
		{ID: 1, UserID: 1, CardID: 2, Quantity: 1, PriceEach: 10},
		{ID: 2, UserID: 2, CardID: 2, Quantity: 1, PriceEach: 10},
		{ID: 3, UserID: 2, CardID: 7, Quantity: 2, PriceEach: 45},
	}}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, orders, nil)

	recs, err := svc.recommendHybrid(context.Background(), 1, 2, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recs) > 2 {
		t.Errorf("got %d results, want at most 2", len(recs))
	}
	for _, rec := range recs {
		if rec.Score < 0 {
			t.Errorf("card %d has negative fused score %v", rec.Card.ID, rec.Score)
		}
		if rec.Card.Stock <= 0 {
			t.Errorf("card %d is out of stock", rec.Card.ID)
		}
	}
}

func TestRecommendHybridSubStrategyFailureFailsFusion(t *testing.T) {
	orders := &fakeOrderRepo{
		lines: []domain.Orders{
			{ID: 1, UserID: 1, CardID: 2, Quantity: 1, PriceEach: 10},
		},
		allErr: errors.New("orders table is on fire"),
	}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, orders, nil)

	_, err := svc.recommendHybrid(context.Background(), 1, 5, DefaultConfig())
	if err == nil {
		t.Fatal("expected fusion to fail when a sub-strategy fails")
	}
}

func TestAccumulateFusesScoresAndReasons(t *testing.T) {
	fused := make(map[uint64]*domain.ScoredCard)

	accumulate(fused, []domain.ScoredCard{
		{Card: domain.Card{ID: 1}, Score: 4, Reasons: []string{"a"}},
	}, 0.5)
	accumulate(fused, []domain.ScoredCard{
		{Card: domain.Card{ID: 1}, Score: 2, Reasons: []string{"a", "b"}},
	}, 0.3)

	entry := fused[1]
	if entry == nil {
		t.Fatal("card 1 missing from fusion")
	}
	if entry.Score != 4*0.5+2*0.3 {
		t.Errorf("fused score = %v, want %v", entry.Score, 4*0.5+2*0.3)
	}
	if len(entry.Reasons) != 2 {
		t.Errorf("reasons should be deduplicated, got %v", entry.Reasons)
	}
}

func TestRecommendHybridWeightsApplied(t *testing.T) {
	// no history for user 9 anywhere: all three sub-strategies resolve
	// to the popularity ranking, so the fused score is the popularity
	// score times the summed weights
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, &fakeOrderRepo{}, nil)

	cfg := DefaultConfig()
	recs, err := svc.recommendHybrid(context.Background(), 9, 3, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("expected results")
	}

	// top static pick is the mythic card at rarity rank 5
	wantTop := 5 * (cfg.WHistory + cfg.WCollaborative + cfg.WPopularity)
	if diff := recs[0].Score - wantTop; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("top fused score = %v, want %v", recs[0].Score, wantTop)
	}
}

func TestDebugRecommendExposesPerStrategyScores(t *testing.T) {
	orders := &fakeOrderRepo{lines: []domain.Orders{
		{ID: 1, UserID: 1, CardID: 2, Quantity: 1, PriceEach: 10},
		{ID: 2, UserID: 2, CardID: 2, Quantity: 1, PriceEach: 10},
		{ID: 3, UserID: 2, CardID: 7, Quantity: 1, PriceEach: 45},
	}}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, orders, nil)

	rows, err := svc.DebugRecommend(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("expected debug rows")
	}

	cfg := DefaultConfig()
	for _, row := range rows {
		wantFinal := row.HistoryScore*cfg.WHistory +
			row.CollabScore*cfg.WCollaborative +
			row.PopularityScore*cfg.WPopularity
		if diff := row.FinalScore - wantFinal; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("card %d: final score %v does not match weighted parts %v", row.CardID, row.FinalScore, wantFinal)
		}
		if row.AppearedInSignals < 1 || row.AppearedInSignals > 3 {
			t.Errorf("card %d: appeared in %d signals", row.CardID, row.AppearedInSignals)
		}
	}

	for i := 1; i < len(rows); i++ {
		if rows[i].FinalScore > rows[i-1].FinalScore {
			t.Error("debug rows should be ordered by final score descending")
		}
	}
}
