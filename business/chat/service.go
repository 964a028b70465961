package chat

import (
	"context"
	"fmt"
	"myCardVault/domain"
	"myCardVault/pkg/logger"
	"myCardVault/pkg/metrics"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const fallbackCatalogSize = 5

type CardRepository interface {
	FindInStock(ctx context.Context, exclude []uint64) ([]domain.Card, error)
}

type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	cardRepo  CardRepository
	completer TextCompleter
}

func NewService(cardRepo CardRepository, completer TextCompleter) *Service {
	return &Service{
		cardRepo:  cardRepo,
		completer: completer,
	}
}

// Resolve answers a free-text shopping question with a reply text and a
// set of matching catalog cards. The generative reply is advisory: when
// the message carries explicit price/type/rarity constraints, the model
// picks are validated against them and replaced outright on violation.
// A generative failure degrades to the deterministic passes and never
// reaches the caller as an error.
func (s *Service) Resolve(
	ctx context.Context,
	message string,
	customerID uint,
) (domain.ChatReply, error) {
	if err := ctx.Err(); err != nil {
		return domain.ChatReply{}, fmt.Errorf("context error: %w", err)
	}

	metrics.ChatRequests.Inc()

	catalog, err := s.cardRepo.FindInStock(ctx, nil)
	if err != nil {
		return domain.ChatReply{}, fmt.Errorf("load catalog: %w", err)
	}

	reply := s.askModel(ctx, message, catalog, customerID)

	byID := make(map[uint64]domain.Card, len(catalog))
	for _, card := range catalog {
		byID[card.ID] = card
	}

	candidates := make([]domain.Card, 0, len(reply.CardIDs))
	for _, id := range reply.CardIDs {
		if card, ok := byID[id]; ok {
			candidates = append(candidates, card)
		}
	}

	priceR, hasPrice := detectPriceRange(message)
	wantType, hasType := detectCardType(message)

	// (a) price pass: a single out-of-range pick (or nothing usable from
	// the model while a range is stated) discards the whole set
	if hasPrice && violatesPrice(candidates, priceR) {
		candidates = filterCatalog(catalog, func(c domain.Card) bool {
			if !priceR.contains(c.Price) {
				return false
			}
			if hasType && !strings.EqualFold(c.CardType, wantType) {
				return false
			}
			return true
		})
	}

	// (b) type pass, same discard-and-replace behavior
	if hasType && violatesType(candidates, wantType) {
		candidates = filterCatalog(catalog, func(c domain.Card) bool {
			if !strings.EqualFold(c.CardType, wantType) {
				return false
			}
			if hasPrice && !priceR.contains(c.Price) {
				return false
			}
			return true
		})
	}

	if len(candidates) == 0 {
		candidates = s.fallbackCandidates(message, catalog)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})

	items := make([]domain.ScoredCard, 0, len(candidates))
	for i, card := range candidates {
		items = append(items, domain.ScoredCard{
			Card:    card,
			Score:   float64(len(candidates) - i),
			Reasons: []string{"matches your request"},
		})
	}

	text := reply.Text
	if text == "" {
		text = "Here is what I found in the catalog."
	}

	return domain.ChatReply{
		MessageID: uuid.NewString(),
		Text:      text,
		Items:     items,
	}, nil
}

func (s *Service) askModel(
	ctx context.Context,
	message string,
	catalog []domain.Card,
	customerID uint,
) parsedReply {
	if s.completer == nil {
		return parsedReply{}
	}

	raw, err := s.completer.Complete(ctx, s.buildPrompt(message, catalog))
	if err != nil {
		logger.Warn("chat completion failed, using deterministic passes", "error", err, "user_id", customerID)
		return parsedReply{}
	}

	return parseReply(raw)
}

func (s *Service) buildPrompt(message string, catalog []domain.Card) string {
	var b strings.Builder

	b.WriteString("You are the assistant of a collectible trading card shop.\n")
	b.WriteString("Card types include fire, water, grass, electric, psychic, dragon and normal.\n")
	b.WriteString("Rarities from lowest to highest: Common, Uncommon, Rare, Legendary, Mythic, Secret.\n\n")

	b.WriteString("Catalog (id | name | type | rarity | price):\n")
	for _, card := range catalog {
		fmt.Fprintf(&b, "%d | %s | %s | %s | %.2f\n",
			card.ID, card.Name, card.CardType, card.Rarity, card.Price)
	}

	fmt.Fprintf(&b, "\nCustomer message: %s\n\n", message)
	b.WriteString(`Reply with a single line of JSON, no markdown fencing, shaped exactly as {"text":"...","cardIds":["..."]} where cardIds are ids from the catalog above.`)

	return b.String()
}

func violatesPrice(candidates []domain.Card, r priceRange) bool {
	if len(candidates) == 0 {
		return true
	}
	for _, card := range candidates {
		if !r.contains(card.Price) {
			return true
		}
	}
	return false
}

func violatesType(candidates []domain.Card, wantType string) bool {
	if len(candidates) == 0 {
		return true
	}
	for _, card := range candidates {
		if !strings.EqualFold(card.CardType, wantType) {
			return true
		}
	}
	return false
}

func filterCatalog(catalog []domain.Card, keep func(domain.Card) bool) []domain.Card {
	var out []domain.Card
	for _, card := range catalog {
		if keep(card) {
			out = append(out, card)
		}
	}
	return out
}

// fallbackCandidates is the zero-result chain: type keyword search,
// then rarity keyword search, then a slice of the catalog.
func (s *Service) fallbackCandidates(message string, catalog []domain.Card) []domain.Card {
	if wantType, ok := detectCardType(message); ok {
		if matches := filterCatalog(catalog, func(c domain.Card) bool {
			return strings.EqualFold(c.CardType, wantType)
		}); len(matches) > 0 {
			return matches
		}
	}

	if wantRarity, ok := detectRarity(message); ok {
		if matches := filterCatalog(catalog, func(c domain.Card) bool {
			return strings.EqualFold(c.Rarity, wantRarity)
		}); len(matches) > 0 {
			return matches
		}
	}

	if len(catalog) > fallbackCatalogSize {
		return catalog[:fallbackCatalogSize]
	}
	return catalog
}
