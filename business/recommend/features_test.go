package recommend

import (
	"math"
	"myCardVault/domain"
	"testing"
)

func TestBuildFeatureVector(t *testing.T) {
	card := domain.Card{
		ID:       1,
		CardType: "Fire",
		Rarity:   "Rare",
		Price:    99,
		Stock:    40,
	}

	vec := buildFeatureVector(card)

	if vec[0] != 3 {
		t.Errorf("rarity rank = %v, want 3", vec[0])
	}
	if vec[1] != 2 {
		t.Errorf("type rank = %v, want 2", vec[1])
	}
	if math.Abs(vec[2]-2) > 1e-9 {
		t.Errorf("price feature = %v, want 2 (log10(100))", vec[2])
	}
	if vec[3] != 0.4 {
		t.Errorf("stock feature = %v, want 0.4", vec[3])
	}
}

func TestBuildFeatureVectorDeterministic(t *testing.T) {
	card := domain.Card{ID: 7, CardType: "shadow", Rarity: "Mythic", Price: 12.5, Stock: 3}

	a := buildFeatureVector(card)
	b := buildFeatureVector(card)

	if a != b {
		t.Errorf("same card produced different vectors: %v vs %v", a, b)
	}
}

func TestBuildFeatureVectorStockClamped(t *testing.T) {
	card := domain.Card{Stock: 500}

	vec := buildFeatureVector(card)
	if vec[3] != 1 {
		t.Errorf("stock ratio = %v, want clamped to 1", vec[3])
	}
}

func TestRarityRankCaseInsensitive(t *testing.T) {
	if rarityRank("LEGENDARY") != 4 {
		t.Errorf("rarityRank(LEGENDARY) = %v, want 4", rarityRank("LEGENDARY"))
	}
	if rarityRank("unknown-tier") != 0 {
		t.Errorf("unknown rarity should rank 0, got %v", rarityRank("unknown-tier"))
	}
}

func TestTypeRankUnknownTypesDistinct(t *testing.T) {
	known := typeRank("dragon")
	shadow := typeRank("shadow")
	steel := typeRank("steel")

	if shadow <= float64(len(typeRanks))-1 {
		t.Errorf("unknown type rank %v should sit above the known table", shadow)
	}
	if shadow == steel {
		t.Error("distinct unknown types should get distinct ranks")
	}
	if shadow == known {
		t.Error("unknown type collided with a known rank")
	}
	if typeRank("shadow") != shadow {
		t.Error("unknown type rank should be stable across calls")
	}
}
