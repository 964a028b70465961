package recommend

import (
	"context"
	"myCardVault/domain"
	"sort"
	"testing"
)

// ---- in-memory fakes ----

type fakeCardRepo struct {
	cards      []domain.Card
	findErr    error
	stockErr   error
	stockCalls int
}

func (f *fakeCardRepo) FindByID(ctx context.Context, id uint64) (domain.Card, error) {
	if f.findErr != nil {
		return domain.Card{}, f.findErr
	}
	for _, card := range f.cards {
		if card.ID == id {
			return card, nil
		}
	}
	return domain.Card{}, domain.ErrCardNotFound
}

func (f *fakeCardRepo) FindInStock(ctx context.Context, exclude []uint64) ([]domain.Card, error) {
	f.stockCalls++
	if f.stockErr != nil {
		return nil, f.stockErr
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

type fakeOrderRepo struct {
	lines   []domain.Orders
	userErr error
	allErr  error
}

func (f *fakeOrderRepo) FindByUser(ctx context.Context, userID uint) ([]domain.Orders, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	var out []domain.Orders
	for _, line := range f.lines {
		if line.UserID == int(userID) {
			out = append(out, line)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]domain.Orders, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.lines, nil
}

type fakeUserRepo struct {
	users map[uint]domain.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return domain.User{}, domain.ErrUserNotFound
}

type fakeCompleter struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeEventRepo struct {
	events []domain.RecommendationEvent
}

func (f *fakeEventRepo) SaveEvent(ctx context.Context, event domain.RecommendationEvent) error {
	f.events = append(f.events, event)
	return nil
}

func testCatalog() []domain.Card {
	return []domain.Card{
		{ID: 1, Name: "Ember Drake", CardType: "fire", Rarity: "rare", Price: 50, Stock: 10},
		{ID: 2, Name: "Tidal Serpent", CardType: "water", Rarity: "common", Price: 10, Stock: 5},
		{ID: 3, Name: "Vine Golem", CardType: "grass", Rarity: "uncommon", Price: 20, Stock: 8},
		{ID: 4, Name: "Storm Fox", CardType: "electric", Rarity: "legendary", Price: 120, Stock: 2},
		{ID: 5, Name: "Mind Wraith", CardType: "psychic", Rarity: "mythic", Price: 200, Stock: 1},
		{ID: 6, Name: "Flame Imp", CardType: "fire", Rarity: "common", Price: 8, Stock: 0},
		{ID: 7, Name: "Coral Maiden", CardType: "water", Rarity: "rare", Price: 45, Stock: 6},
	}
}

func newTestService(cardRepo *fakeCardRepo, orderRepo *fakeOrderRepo, completer TextCompleter) *Service {
	return NewService(cardRepo, orderRepo, &fakeUserRepo{}, nil, nil, completer, DefaultConfig())
}

// ---- dispatch ----

func TestGetRecommendationsUnknownStrategy(t *testing.T) {
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, &fakeOrderRepo{}, nil)

	_, err := svc.GetRecommendations(context.Background(), 1, "psychic-hotline", 0, 5)
	if err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestGetRecommendationsDefaultsLimit(t *testing.T) {
	svc := newTestService(&fakeCardRepo{cards: testCatalog()}, &fakeOrderRepo{}, nil)

	recs, err := svc.GetRecommendations(context.Background(), 1, StrategyPopular, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) == 0 || len(recs) > 10 {
		t.Errorf("limit<=0 should default to 10, got %d results", len(recs))
	}
}

func TestGetRecommendationsRecordsEvent(t *testing.T) {
	events := &fakeEventRepo{}
	svc := NewService(&fakeCardRepo{cards: testCatalog()}, &fakeOrderRepo{}, &fakeUserRepo{}, nil, events, nil, DefaultConfig())

	_, err := svc.GetRecommendations(context.Background(), 9, StrategyContent, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	ev := events.events[0]
	if ev.Strategy != StrategyContent || ev.UserID != 9 || ev.Limit != 3 {
		t.Errorf("event fields wrong: %+v", ev)
	}
	if ev.TraceID == "" {
		t.Error("event should carry a trace id")
	}
	if ev.Context["ref_card_id"] != uint64(1) {
		t.Errorf("event context ref_card_id = %v, want 1", ev.Context["ref_card_id"])
	}
}

func TestSortScoredDeterministic(t *testing.T) {
	items := []domain.ScoredCard{
		{Card: domain.Card{ID: 3}, Score: 1},
		{Card: domain.Card{ID: 1}, Score: 1},
		{Card: domain.Card{ID: 2}, Score: 5},
	}

	sortScored(items)

	wantOrder := []uint64{2, 1, 3}
	for i, want := range wantOrder {
		if items[i].Card.ID != want {
			t.Fatalf("position %d: got card %d, want %d", i, items[i].Card.ID, want)
		}
	}
}
