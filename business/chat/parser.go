package chat

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// parsedReply is the {text, cardIds} shape the model is asked for.
type parsedReply struct {
	Text    string
	CardIDs []uint64
}

type rawReply struct {
	Text    string            `json:"text"`
	CardIDs []json.RawMessage `json:"cardIds"`
}

var (
	textFieldPattern = regexp.MustCompile(`"text"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	idsFieldPattern  = regexp.MustCompile(`"cardIds"\s*:\s*\[([^\]]*)\]`)
	digitPattern     = regexp.MustCompile(`\d+`)
)

// parseReply extracts the reply text and card ids from whatever the
// model produced: fenced or bare JSON first, a narrow regex pass
// second, and as a last resort the whole raw text with no ids.
func parseReply(raw string) parsedReply {
	cleaned := stripCodeFences(raw)

	if reply, ok := tryParseJSON(cleaned); ok {
		return reply
	}

	// the object may be embedded in surrounding prose
	if start, end := strings.Index(cleaned, "{"), strings.LastIndex(cleaned, "}"); start >= 0 && end > start {
		if reply, ok := tryParseJSON(cleaned[start : end+1]); ok {
			return reply
		}
	}

	if reply, ok := tryRegexExtract(cleaned); ok {
		return reply
	}

	return parsedReply{Text: strings.TrimSpace(raw)}
}

func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}

func tryParseJSON(s string) (parsedReply, bool) {
	var raw rawReply
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return parsedReply{}, false
	}
	if raw.Text == "" && len(raw.CardIDs) == 0 {
		return parsedReply{}, false
	}

	reply := parsedReply{Text: raw.Text}
	for _, rawID := range raw.CardIDs {
		// ids arrive as strings or bare numbers depending on the model's mood
		token := strings.Trim(string(rawID), `" `)
		if id, err := strconv.ParseUint(token, 10, 64); err == nil {
			reply.CardIDs = append(reply.CardIDs, id)
		}
	}

	return reply, true
}

func tryRegexExtract(s string) (parsedReply, bool) {
	textMatch := textFieldPattern.FindStringSubmatch(s)
	idsMatch := idsFieldPattern.FindStringSubmatch(s)
	if textMatch == nil && idsMatch == nil {
		return parsedReply{}, false
	}

	var reply parsedReply
	if textMatch != nil {
		reply.Text = textMatch[1]
	}
	if idsMatch != nil {
		for _, token := range digitPattern.FindAllString(idsMatch[1], -1) {
			if id, err := strconv.ParseUint(token, 10, 64); err == nil {
				reply.CardIDs = append(reply.CardIDs, id)
			}
		}
	}

	return reply, true
}
