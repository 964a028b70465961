package recommend

import (
	"context"
	"myCardVault/domain"
	"testing"
)

func TestRecommendPopularOrdersByUnitsSold(t *testing.T) {
	orders := &fakeOrderRepo{lines: []domain.Orders{
		{ID: 1, UserID: 1, CardID: 2, Quantity: 3, PriceEach: 10},
		{ID: 2, UserID: 2, CardID: 2, Quantity: 2, PriceEach: 10},
		{ID: 3, UserID: 2, CardID: 7, Quantity: 1, PriceEach: 45},
	}}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, orders, nil)

	recs, err := svc.recommendPopular(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d results, want 3", len(recs))
	}

	if recs[0].Card.ID != 2 || recs[0].Score != 5 {
		t.Errorf("top pick = card %d score %v, want card 2 score 5", recs[0].Card.ID, recs[0].Score)
	}
	if recs[1].Card.ID != 7 || recs[1].Score != 1 {
		t.Errorf("second pick = card %d score %v, want card 7 score 1", recs[1].Card.ID, recs[1].Score)
	}
	if recs[0].Reasons[0] != "5 units sold" {
		t.Errorf("reason = %q, want %q", recs[0].Reasons[0], "5 units sold")
	}
}

func TestRecommendPopularStaticFallback(t *testing.T) {
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, &fakeOrderRepo{}, nil)

	recs, err := svc.recommendPopular(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// no sales anywhere: rarity tier descending, price descending, id ascending
	wantOrder := []uint64{5, 4, 1, 7, 3, 2}
	if len(recs) != len(wantOrder) {
		t.Fatalf("got %d results, want %d", len(recs), len(wantOrder))
	}
	for i, want := range wantOrder {
		if recs[i].Card.ID != want {
			t.Errorf("position %d: got card %d, want %d", i, recs[i].Card.ID, want)
		}
	}

	for _, rec := range recs {
		if rec.Reasons[0] != "popular in catalog" {
			t.Errorf("fallback reason = %q", rec.Reasons[0])
		}
	}
}

func TestRecommendPopularSkipsOutOfStock(t *testing.T) {
	orders := &fakeOrderRepo{lines: []domain.Orders{
		// card 6 sold well but is out of stock now
		{ID: 1, UserID: 1, CardID: 6, Quantity: 50, PriceEach: 8},
		{ID: 2, UserID: 1, CardID: 2, Quantity: 1, PriceEach: 10},
	}}
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, orders, nil)

	recs, err := svc.recommendPopular(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, rec := range recs {
		if rec.Card.ID == 6 {
			t.Error("out-of-stock card should never be recommended")
		}
	}
}
