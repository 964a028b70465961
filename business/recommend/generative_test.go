package recommend

import (
	"context"
	"errors"
	"myCardVault/domain"
	"strings"
	"testing"
)

func TestRecommendGenerativePicksModelIDs(t *testing.T) {
	completer := &fakeCompleter{reply: "IDs: 4,5"}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, &fakeOrderRepo{}, completer)

	recs, err := svc.recommendGenerative(context.Background(), 1, 2, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d results, want 2", len(recs))
	}

	if recs[0].Card.ID != 4 || recs[1].Card.ID != 5 {
		t.Errorf("got cards %d, %d, want 4, 5 in model order", recs[0].Card.ID, recs[1].Card.ID)
	}
	if recs[0].Score != 2 || recs[1].Score != 1 {
		t.Errorf("scores = %v, %v, want descending from limit", recs[0].Score, recs[1].Score)
	}

	foundAI := false
	for _, reason := range recs[0].Reasons {
		if reason == "personalized AI recommendation" {
			foundAI = true
		}
	}
	if !foundAI {
		t.Errorf("missing AI reason, got %v", recs[0].Reasons)
	}
}

func TestRecommendGenerativeExcludesPurchased(t *testing.T) {
	orders := &fakeOrderRepo{lines: []domain.Orders{
		{ID: 1, UserID: 1, CardID: 4, Quantity: 1, PriceEach: 120},
	}}
	// the model insists on an already-purchased card
	completer := &fakeCompleter{reply: "IDs: 4"}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, orders, completer)

	recs, err := svc.recommendGenerative(context.Background(), 1, 3, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, rec := range recs {
		if rec.Card.ID == 4 {
			t.Error("purchased card leaked into generative picks")
		}
	}
}

func TestRecommendGenerativeTransportFailureFallsBackToHybrid(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("upstream 503")}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, &fakeOrderRepo{}, completer)

	recs, err := svc.recommendGenerative(context.Background(), 1, 3, DefaultConfig())
	if err != nil {
		t.Fatalf("fallback should absorb the transport failure, got: %v", err)
	}

	hybrid, err := svc.recommendHybrid(context.Background(), 1, 3, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recs) != len(hybrid) {
		t.Fatalf("got %d results, hybrid gave %d", len(recs), len(hybrid))
	}
	for i := range recs {
		if recs[i].Card.ID != hybrid[i].Card.ID {
			t.Errorf("position %d: got card %d, hybrid gave %d", i, recs[i].Card.ID, hybrid[i].Card.ID)
		}
	}
}

func TestRecommendGenerativeNilCompleterFallsBackToHybrid(t *testing.T) {
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, &fakeOrderRepo{}, nil)

	recs, err := svc.recommendGenerative(context.Background(), 1, 3, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) == 0 {
		t.Error("expected hybrid fallback results")
	}
}

func TestRecommendGenerativeGarbageReplyUsesRarityFallback(t *testing.T) {
	completer := &fakeCompleter{reply: "As an assistant I am unable to answer that."}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, &fakeOrderRepo{}, completer)

	recs, err := svc.recommendGenerative(context.Background(), 1, 3, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d results, want exactly 3", len(recs))
	}

	// rarity descending: mythic, legendary, then the cheapest-id rare
	wantOrder := []uint64{5, 4, 1}
	for i, want := range wantOrder {
		if recs[i].Card.ID != want {
			t.Errorf("position %d: got card %d, want %d", i, recs[i].Card.ID, want)
		}
	}
}

func TestRecommendGenerativeBackfillsShortReplies(t *testing.T) {
	// model names one valid card, the rest comes from the hybrid ranking
	completer := &fakeCompleter{reply: "IDs: 2"}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, &fakeOrderRepo{}, completer)

	recs, err := svc.recommendGenerative(context.Background(), 1, 4, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("got %d results, want 4", len(recs))
	}

	if recs[0].Card.ID != 2 {
		t.Errorf("model pick should lead, got card %d", recs[0].Card.ID)
	}

	seen := make(map[uint64]bool)
	for _, rec := range recs {
		if seen[rec.Card.ID] {
			t.Errorf("card %d appears twice", rec.Card.ID)
		}
		seen[rec.Card.ID] = true
	}
}

func TestBuildRecommendPromptShape(t *testing.T) {
	completer := &fakeCompleter{reply: "IDs: 1"}
	orders := &fakeOrderRepo{lines: []domain.Orders{
		{ID: 1, UserID: 1, CardID: 2, Quantity: 2, PriceEach: 10},
	}}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, orders, completer)

	_, err := svc.recommendGenerative(context.Background(), 1, 3, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(completer.prompts) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(completer.prompts))
	}

	prompt := completer.prompts[0]
	if !strings.Contains(prompt, "Recent purchases:") {
		t.Error("prompt should list recent purchases")
	}
	if !strings.Contains(prompt, "id | name | type | rarity | price | stock") {
		t.Error("prompt should describe the candidate columns")
	}
	if !strings.Contains(prompt, `"IDs: id1,id2,..."`) {
		t.Error("prompt should pin the expected answer format")
	}
	if strings.Contains(prompt, "Tidal Serpent") {
		t.Error("purchased cards should not be in the candidate list")
	}
}

func TestRarityFallbackOrdering(t *testing.T) {
	ids := rarityFallback(testCatalog(), 3)

	// includes the out-of-stock card only if it was passed in; here the
	// full catalog goes in, so ordering is purely rarity then id
	want := []uint64{5, 4, 1}
	if len(ids) != 3 {
		t.Fatalf("got %d ids, want 3", len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d: got %d, want %d", i, ids[i], want[i])
		}
	}
}
