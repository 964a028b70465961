package chat

import (
	"context"
	"errors"
	"myCardVault/domain"
	"sort"
	"testing"
)

type fakeCardRepo struct {
	cards []domain.Card
	err   error
}

func (f *fakeCardRepo) FindInStock(ctx context.Context, exclude []uint64) ([]domain.Card, error) {
	if f.err != nil {
		return nil, f.err
	}

	excluded := make(map[uint64]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	var out []domain.Card
	for _, card := range f.cards {
		if card.Stock <= 0 {
			continue
		}
		if _, skip := excluded[card.ID]; skip {
			continue
		}
		out = append(out, card)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

type fakeCompleter struct {
	reply string
	err   error
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func chatCatalog() []domain.Card {
	return []domain.Card{
		{ID: 1, Name: "Ember Drake", CardType: "fire", Rarity: "rare", Price: 45, Stock: 10},
		{ID: 2, Name: "Flame Imp", CardType: "fire", Rarity: "common", Price: 8, Stock: 5},
		{ID: 3, Name: "Inferno Lord", CardType: "fire", Rarity: "legendary", Price: 180, Stock: 2},
		{ID: 4, Name: "Storm Fox", CardType: "electric", Rarity: "legendary", Price: 120, Stock: 2},
		{ID: 5, Name: "Tidal Serpent", CardType: "water", Rarity: "common", Price: 10, Stock: 5},
		{ID: 6, Name: "Coral Maiden", CardType: "water", Rarity: "rare", Price: 30, Stock: 6},
		{ID: 7, Name: "Mind Wraith", CardType: "psychic", Rarity: "mythic", Price: 200, Stock: 1},
	}
}

func TestResolveEnforcesPriceAndTypeConstraints(t *testing.T) {
	// the model confidently picks an expensive electric card for a
	// Portuguese request for fire cards up to 50
	completer := &fakeCompleter{reply: `{"text":"Tenho uma ótima sugestão!","cardIds":["4"]}`}
	svc := NewService(&fakeCardRepo{cards: chatCatalog()}, completer)

	reply, err := svc.Resolve(context.Background(), "quero cartas de fogo até 50 reais", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reply.Items) == 0 {
		t.Fatal("expected items")
	}

	for _, item := range reply.Items {
		if item.Card.CardType != "fire" {
			t.Errorf("card %d is %s, want fire only", item.Card.ID, item.Card.CardType)
		}
		if item.Card.Price > 50 {
			t.Errorf("card %d costs %.2f, above the stated cap", item.Card.ID, item.Card.Price)
		}
	}

	// fire cards at or under 50: Ember Drake and Flame Imp
	if len(reply.Items) != 2 || reply.Items[0].Card.ID != 1 || reply.Items[1].Card.ID != 2 {
		t.Errorf("unexpected item set: %+v", reply.Items)
	}
}

func TestResolveKeepsValidModelPicks(t *testing.T) {
	completer := &fakeCompleter{reply: `{"text":"How about this one","cardIds":["2"]}`}
	svc := NewService(&fakeCardRepo{cards: chatCatalog()}, completer)

	reply, err := svc.Resolve(context.Background(), "fire cards under 50 please", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reply.Items) != 1 || reply.Items[0].Card.ID != 2 {
		t.Errorf("an in-constraint model pick should survive untouched, got %+v", reply.Items)
	}
	if reply.Text != "How about this one" {
		t.Errorf("text = %q", reply.Text)
	}
}

func TestResolveModelFailureStillAnswers(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("upstream timeout")}
	svc := NewService(&fakeCardRepo{cards: chatCatalog()}, completer)

	reply, err := svc.Resolve(context.Background(), "cartas de água abaixo de 40", 1)
	if err != nil {
		t.Fatalf("model failure must not surface: %v", err)
	}
	if len(reply.Items) == 0 {
		t.Fatal("deterministic passes should still produce items")
	}

	for _, item := range reply.Items {
		if item.Card.CardType != "water" || item.Card.Price > 40 {
			t.Errorf("card %d (%s, %.2f) violates the constraints", item.Card.ID, item.Card.CardType, item.Card.Price)
		}
	}
	if reply.Text != "Here is what I found in the catalog." {
		t.Errorf("expected the default text, got %q", reply.Text)
	}
}

func TestResolveNilCompleterFallsBackToCatalogSlice(t *testing.T) {
	svc := NewService(&fakeCardRepo{cards: chatCatalog()}, nil)

	reply, err := svc.Resolve(context.Background(), "what do you have today", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reply.Items) != fallbackCatalogSize {
		t.Errorf("got %d items, want the %d-card catalog slice", len(reply.Items), fallbackCatalogSize)
	}
}

func TestResolveRarityFallback(t *testing.T) {
	// no type in the catalog matches, but rarity does
	completer := &fakeCompleter{reply: `{"text":"hmm","cardIds":[]}`}
	svc := NewService(&fakeCardRepo{cards: chatCatalog()}, completer)

	reply, err := svc.Resolve(context.Background(), "any mythic cards?", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reply.Items) != 1 || reply.Items[0].Card.Rarity != "mythic" {
		t.Errorf("expected the mythic card, got %+v", reply.Items)
	}
}

func TestResolveItemsOrderedAndScored(t *testing.T) {
	completer := &fakeCompleter{reply: `{"text":"fire picks","cardIds":["3","1","2"]}`}
	svc := NewService(&fakeCardRepo{cards: chatCatalog()}, completer)

	reply, err := svc.Resolve(context.Background(), "show me fire cards", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reply.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(reply.Items))
	}

	for i, item := range reply.Items {
		wantID := uint64(i + 1)
		if item.Card.ID != wantID {
			t.Errorf("position %d: card %d, want %d (id ascending)", i, item.Card.ID, wantID)
		}
		wantScore := float64(len(reply.Items) - i)
		if item.Score != wantScore {
			t.Errorf("position %d: score %v, want %v", i, item.Score, wantScore)
		}
		if len(item.Reasons) != 1 || item.Reasons[0] != "matches your request" {
			t.Errorf("position %d: reasons %v", i, item.Reasons)
		}
	}

	if reply.MessageID == "" {
		t.Error("reply should carry a message id")
	}
}

func TestResolveCatalogErrorSurfaces(t *testing.T) {
	svc := NewService(&fakeCardRepo{err: errors.New("db down")}, nil)

	_, err := svc.Resolve(context.Background(), "anything", 1)
	if err == nil {
		t.Fatal("a catalog load failure should surface")
	}
}
