package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// Deterministic constraint detection over the user's message, English
// and Portuguese phrasings. These passes are the actual correctness
// guarantee; the generative output is advisory only.

type priceRange struct {
	min    float64
	max    float64
	hasMin bool
	hasMax bool
}

func (r priceRange) contains(price float64) bool {
	if r.hasMin && price < r.min {
		return false
	}
	if r.hasMax && price > r.max {
		return false
	}
	return true
}

const number = `(\d+(?:[.,]\d+)?)`

var (
	betweenPatterns = []*regexp.Regexp{
		regexp.MustCompile(`between\s+` + number + `\s+and\s+` + number),
		regexp.MustCompile(`entre\s+` + number + `\s+e\s+` + number),
	}
	maxPatterns = []*regexp.Regexp{
		regexp.MustCompile(`up\s+to\s+` + number),
		regexp.MustCompile(`at\s+most\s+` + number),
		regexp.MustCompile(`under\s+` + number),
		regexp.MustCompile(`below\s+` + number),
		regexp.MustCompile(`at[ée]\s+` + number),
		regexp.MustCompile(`abaixo\s+de\s+` + number),
		regexp.MustCompile(`menos\s+de\s+` + number),
		regexp.MustCompile(`no\s+m[áa]ximo\s+` + number),
	}
	minPatterns = []*regexp.Regexp{
		regexp.MustCompile(`above\s+` + number),
		regexp.MustCompile(`over\s+` + number),
		regexp.MustCompile(`acima\s+de\s+` + number),
		regexp.MustCompile(`mais\s+de\s+` + number),
	}
)

func detectPriceRange(message string) (priceRange, bool) {
	lowered := strings.ToLower(message)

	for _, p := range betweenPatterns {
		if m := p.FindStringSubmatch(lowered); m != nil {
			lo, okLo := parsePrice(m[1])
			hi, okHi := parsePrice(m[2])
			if okLo && okHi {
				if lo > hi {
					lo, hi = hi, lo
				}
				return priceRange{min: lo, max: hi, hasMin: true, hasMax: true}, true
			}
		}
	}

	var r priceRange
	found := false
	for _, p := range maxPatterns {
		if m := p.FindStringSubmatch(lowered); m != nil {
			if v, ok := parsePrice(m[1]); ok {
				r.max, r.hasMax = v, true
				found = true
				break
			}
		}
	}
	for _, p := range minPatterns {
		if m := p.FindStringSubmatch(lowered); m != nil {
			if v, ok := parsePrice(m[1]); ok {
				r.min, r.hasMin = v, true
				found = true
				break
			}
		}
	}

	return r, found
}

func parsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type keywordEntry struct {
	value string
	words []string
}

var typeKeywords = []keywordEntry{
	{"fire", []string{"fire", "fogo"}},
	{"water", []string{"water", "água", "agua"}},
	{"grass", []string{"grass", "planta"}},
	{"electric", []string{"electric", "elétric", "eletric"}},
	{"psychic", []string{"psychic", "psíquic", "psiquic"}},
	{"dragon", []string{"dragon", "dragão", "dragao"}},
	{"normal", []string{"normal"}},
}

// "uncommon"/"incomum" listed before "common"/"comum" so the longer
// keyword wins the substring match.
var rarityKeywords = []keywordEntry{
	{"uncommon", []string{"uncommon", "incomum"}},
	{"common", []string{"common", "comum"}},
	{"legendary", []string{"legendary", "lendári", "lendari"}},
	{"mythic", []string{"mythic", "mít", "mitic"}},
	{"secret", []string{"secret"}},
	{"rare", []string{"rare", "rara", "raro"}},
}

func detectKeyword(message string, table []keywordEntry) (string, bool) {
	lowered := strings.ToLower(message)
	for _, entry := range table {
		for _, word := range entry.words {
			if strings.Contains(lowered, word) {
				return entry.value, true
			}
		}
	}
	return "", false
}

func detectCardType(message string) (string, bool) {
	return detectKeyword(message, typeKeywords)
}

func detectRarity(message string) (string, bool) {
	return detectKeyword(message, rarityKeywords)
}
