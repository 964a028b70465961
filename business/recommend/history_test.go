package recommend

import (
	"context"
	"myCardVault/domain"
	"testing"
)

func TestRecommendHistoryNoHistoryFallsBackToPopularity(t *testing.T) {
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, &fakeOrderRepo{}, nil)

	recs, err := svc.recommendHistory(context.Background(), 42, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	popular, err := svc.recommendPopular(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recs) != len(popular) {
		t.Fatalf("got %d results, want %d", len(recs), len(popular))
	}
	for i := range recs {
		if recs[i].Card.ID != popular[i].Card.ID {
			t.Errorf("position %d: got card %d, popularity gave %d", i, recs[i].Card.ID, popular[i].Card.ID)
		}
	}
}

func TestRecommendHistoryNeverRecommendsPurchased(t *testing.T) {
	orders := &fakeOrderRepo{lines: []domain.Orders{
		{ID: 1, UserID: 1, CardID: 2, Quantity: 1, PriceEach: 10},
		{ID: 2, UserID: 1, CardID: 7, Quantity: 1, PriceEach: 45},
	}}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, orders, nil)

	recs, err := svc.recommendHistory(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, rec := range recs {
		if rec.Card.ID == 2 || rec.Card.ID == 7 {
			t.Errorf("card %d was already purchased", rec.Card.ID)
		}
	}
}

func TestRecommendHistoryFavoriteTypeScoring(t *testing.T) {
	// two water purchases make water the favorite type
	orders := &fakeOrderRepo{lines: []domain.Orders{
		{ID: 1, UserID: 1, CardID: 2, Quantity: 2, PriceEach: 10},
		{ID: 2, UserID: 1, CardID: 1, Quantity: 1, PriceEach: 50},
	}}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, orders, nil)

	recs, err := svc.recommendHistory(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}

	// Coral Maiden is the unbought water card in the price band
	if recs[0].Card.ID != 7 {
		t.Fatalf("top pick = card %d, want 7", recs[0].Card.ID)
	}

	foundTypeReason := false
	for _, reason := range recs[0].Reasons {
		if reason == "matches your favorite type water" {
			foundTypeReason = true
		}
	}
	if !foundTypeReason {
		t.Errorf("missing favorite-type reason, got %v", recs[0].Reasons)
	}
}

func TestRecommendHistoryCandidateBandFilter(t *testing.T) {
	// history pinned at cheap water commons; the expensive psychic
	// mythic matches neither type, rarity nor band and must be dropped
	orders := &fakeOrderRepo{lines: []domain.Orders{
		{ID: 1, UserID: 1, CardID: 2, Quantity: 1, PriceEach: 10},
	}}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, orders, nil)

	recs, err := svc.recommendHistory(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, rec := range recs {
		if rec.Card.ID == 5 {
			t.Error("card outside type, rarity and price band should be filtered out")
		}
	}
}

func TestTopEntryTieBreaks(t *testing.T) {
	freq := map[string]int{"water": 2, "fire": 2}

	// fire seen first wins the tie
	got := topEntry(freq, map[string]int{"fire": 0, "water": 1})
	if got != "fire" {
		t.Errorf("tie should go to first seen, got %q", got)
	}

	// same first-seen index resolves lexically
	got = topEntry(freq, map[string]int{"fire": 0, "water": 0})
	if got != "fire" {
		t.Errorf("tie should resolve lexically, got %q", got)
	}
}

func TestBuildCustomerProfileSkipsMissingCards(t *testing.T) {
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, &fakeOrderRepo{}, nil)

	lines := []domain.Orders{
		{ID: 1, UserID: 1, CardID: 999, Quantity: 1, PriceEach: 5},
		{ID: 2, UserID: 1, CardID: 2, Quantity: 1, PriceEach: 10},
	}

	profile, err := svc.buildCustomerProfile(context.Background(), lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := profile.purchased[999]; ok {
		t.Error("deleted card should not enter the profile")
	}
	if profile.favoriteType != "water" {
		t.Errorf("favorite type = %q, want water", profile.favoriteType)
	}
	if profile.minPrice != 10 || profile.maxPrice != 10 {
		t.Errorf("price band = [%v, %v], want [10, 10]", profile.minPrice, profile.maxPrice)
	}
}
