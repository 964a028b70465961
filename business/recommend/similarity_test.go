package recommend

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical vectors", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"scaled copy", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"zero vector", []float64{0, 0, 0}, []float64{1, 2, 3}, 0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func idSet(ids ...uint64) map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestJaccardSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b map[uint64]struct{}
		want float64
	}{
		{"identical sets", idSet(1, 2, 3), idSet(1, 2, 3), 1},
		{"disjoint sets", idSet(1, 2), idSet(3, 4), 0},
		{"half overlap", idSet(1, 2), idSet(2, 3), 1.0 / 3.0},
		{"both empty", idSet(), idSet(), 0},
		{"one empty", idSet(1), idSet(), 0},
		{"subset", idSet(1, 2), idSet(1, 2, 3, 4), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JaccardSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("JaccardSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJaccardSimilaritySymmetric(t *testing.T) {
	a := idSet(1, 2, 3, 7)
	b := idSet(2, 7, 9)

	if JaccardSimilarity(a, b) != JaccardSimilarity(b, a) {
		t.Error("jaccard similarity should be symmetric")
	}
}
