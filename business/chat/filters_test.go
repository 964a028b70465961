package chat

import "testing"

func TestDetectPriceRange(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantMin float64
		wantMax float64
		hasMin  bool
		hasMax  bool
		found   bool
	}{
		{"up to english", "show me cards up to 50", 0, 50, false, true, true},
		{"under english", "anything under 30 dollars", 0, 30, false, true, true},
		{"at most english", "cards at most 12.50", 0, 12.5, false, true, true},
		{"ate portuguese", "cartas até 50 reais", 0, 50, false, true, true},
		{"ate without accent", "cartas ate 50 reais", 0, 50, false, true, true},
		{"abaixo de portuguese", "quero cartas abaixo de 25", 0, 25, false, true, true},
		{"menos de portuguese", "algo de menos de 100", 0, 100, false, true, true},
		{"no maximo portuguese", "no máximo 80 por carta", 0, 80, false, true, true},
		{"above english", "rare cards above 100", 100, 0, true, false, true},
		{"acima de portuguese", "cartas acima de 150", 150, 0, true, false, true},
		{"between english", "between 20 and 60 please", 20, 60, true, true, true},
		{"entre portuguese", "entre 10 e 40", 10, 40, true, true, true},
		{"between reversed bounds", "between 60 and 20", 20, 60, true, true, true},
		{"comma decimal", "até 49,90", 0, 49.9, false, true, true},
		{"no constraint", "what do you have today", 0, 0, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, found := detectPriceRange(tt.message)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if !found {
				return
			}
			if r.hasMin != tt.hasMin || r.hasMax != tt.hasMax {
				t.Fatalf("bounds = (min %v, max %v), want (min %v, max %v)", r.hasMin, r.hasMax, tt.hasMin, tt.hasMax)
			}
			if r.hasMin && r.min != tt.wantMin {
				t.Errorf("min = %v, want %v", r.min, tt.wantMin)
			}
			if r.hasMax && r.max != tt.wantMax {
				t.Errorf("max = %v, want %v", r.max, tt.wantMax)
			}
		})
	}
}

func TestPriceRangeContains(t *testing.T) {
	r := priceRange{min: 10, max: 50, hasMin: true, hasMax: true}

	if !r.contains(10) || !r.contains(50) || !r.contains(30) {
		t.Error("bounds are inclusive")
	}
	if r.contains(9.99) || r.contains(50.01) {
		t.Error("values outside the range must be rejected")
	}

	open := priceRange{}
	if !open.contains(1e9) {
		t.Error("an unconstrained range contains everything")
	}
}

func TestDetectCardType(t *testing.T) {
	tests := []struct {
		message string
		want    string
		found   bool
	}{
		{"show me fire cards", "fire", true},
		{"cartas de fogo", "fire", true},
		{"water decks please", "water", true},
		{"cartas de água", "water", true},
		{"cartas de agua", "water", true},
		{"algo de planta", "grass", true},
		{"electric types", "electric", true},
		{"cartas elétricas", "electric", true},
		{"psychic stuff", "psychic", true},
		{"um dragão forte", "dragon", true},
		{"dragao", "dragon", true},
		{"hello there", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, found := detectCardType(tt.message)
			if found != tt.found || got != tt.want {
				t.Errorf("detectCardType(%q) = (%q, %v), want (%q, %v)", tt.message, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestDetectRarity(t *testing.T) {
	tests := []struct {
		message string
		want    string
		found   bool
	}{
		{"rare cards only", "rare", true},
		{"cartas raras", "rare", true},
		{"something legendary", "legendary", true},
		{"uma carta lendária", "legendary", true},
		{"mythic tier", "mythic", true},
		{"secret rares", "secret", true},
		{"common cards", "common", true},
		{"cartas comuns", "common", true},
		// "uncommon" must not be swallowed by the "common" substring
		{"uncommon cards", "uncommon", true},
		{"cartas incomuns", "uncommon", true},
		{"no rarity here", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, found := detectRarity(tt.message)
			if found != tt.found || got != tt.want {
				t.Errorf("detectRarity(%q) = (%q, %v), want (%q, %v)", tt.message, got, found, tt.want, tt.found)
			}
		})
	}
}
