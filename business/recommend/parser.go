package recommend

import (
	"myCardVault/domain"
	"regexp"
	"strconv"
	"strings"
)

// The generative collaborator gives no format guarantees, so ids are
// pulled out of raw text through an ordered cascade of extractors. Each
// stage runs only when every earlier stage produced no id that survives
// candidate validation.

var (
	labeledIDsPattern      = regexp.MustCompile(`(?i)IDs?:\s*([\d,]+)`)
	labeledIDsLoosePattern = regexp.MustCompile(`(?i)IDs?:\s*([\d,\s]+)`)
	numberRunPattern       = regexp.MustCompile(`\d+(?:\s*,\s*\d+){2,}`)
	standaloneNumberPattern = regexp.MustCompile(`\d+`)
)

type idExtractor func(raw string) []uint64

var idExtractors = []idExtractor{
	extractLabeledIDs,
	extractLabeledIDsLoose,
	extractNumberRun,
	extractStandaloneNumbers,
}

func extractLabeledIDs(raw string) []uint64 {
	m := labeledIDsPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	return parseIDList(m[1])
}

func extractLabeledIDsLoose(raw string) []uint64 {
	m := labeledIDsLoosePattern.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	return parseIDList(m[1])
}

func extractNumberRun(raw string) []uint64 {
	run := numberRunPattern.FindString(raw)
	if run == "" {
		return nil
	}
	return parseIDList(run)
}

func extractStandaloneNumbers(raw string) []uint64 {
	tokens := standaloneNumberPattern.FindAllString(raw, -1)
	ids := make([]uint64, 0, len(tokens))
	for _, tok := range tokens {
		if id, err := strconv.ParseUint(tok, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func parseIDList(s string) []uint64 {
	parts := strings.Split(s, ",")
	ids := make([]uint64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseUint(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// extractCandidateIDs runs the cascade and keeps only ids present in the
// candidate set, deduplicated in extraction order. Invented ids are
// dropped silently.
func extractCandidateIDs(raw string, candidates map[uint64]struct{}) []uint64 {
	for _, extract := range idExtractors {
		valid := filterCandidateIDs(extract(raw), candidates)
		if len(valid) > 0 {
			return valid
		}
	}
	return nil
}

func filterCandidateIDs(ids []uint64, candidates map[uint64]struct{}) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := candidates[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// matchNamesInText finds candidate cards whose names appear in the raw
// text, case-insensitive. Used when no numeric id survived the cascade.
func matchNamesInText(raw string, candidates []domain.Card) []uint64 {
	lowered := strings.ToLower(raw)
	var ids []uint64
	for _, card := range candidates {
		if card.Name == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(card.Name)) {
			ids = append(ids, card.ID)
		}
	}
	return ids
}
