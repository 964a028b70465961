package recommend

import (
	"hash/fnv"
	"math"
	"myCardVault/domain"
	"strings"
)

const featureDim = 4

// Rarity tiers in ascending order; Secret is the store tier above Mythic.
var rarityRanks = map[string]float64{
	"common":    1,
	"uncommon":  2,
	"rare":      3,
	"legendary": 4,
	"mythic":    5,
	"secret":    6,
}

var typeRanks = map[string]float64{
	"normal":   1,
	"fire":     2,
	"water":    3,
	"grass":    4,
	"electric": 5,
	"psychic":  6,
	"dragon":   7,
}

func rarityRank(rarity string) float64 {
	if r, ok := rarityRanks[strings.ToLower(rarity)]; ok {
		return r
	}
	return 0
}

func typeRank(cardType string) float64 {
	if r, ok := typeRanks[strings.ToLower(cardType)]; ok {
		return r
	}
	// unknown types still get a stable, distinct rank
	return float64(len(typeRanks)) + hashToUnit("type:"+strings.ToLower(cardType))
}

// hashToUnit deterministically hashes a string into [0, 1].
func hashToUnit(s string) float64 {
	if s == "" {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return float64(h.Sum32()) / float64(^uint32(0))
}

// buildFeatureVector derives the fixed-order numeric features of a card:
// rarity rank, type rank, log-compressed price, clamped stock ratio.
// Same card, same vector.
func buildFeatureVector(card domain.Card) [featureDim]float64 {
	var x [featureDim]float64

	x[0] = rarityRank(card.Rarity)
	x[1] = typeRank(card.CardType)
	x[2] = math.Log10(card.Price + 1)

	stockRatio := float64(card.Stock) / 100.0
	if stockRatio > 1 {
		stockRatio = 1
	}
	x[3] = stockRatio

	return x
}
