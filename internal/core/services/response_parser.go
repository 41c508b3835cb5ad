package services

import (
	"encoding/json"
	"regexp"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

var (
	fencedJSONPattern      = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")
	bareObjectPattern      = regexp.MustCompile(`(?s)\{.*\}`)
	trailingBracePattern   = regexp.MustCompile(`,\s*\}`)
	trailingBracketPattern = regexp.MustCompile(`,\s*\]`)
)

// ParseModelJSON recovers a JSON object from model output. A ```json fenced
// block wins; otherwise the text from the first '{' to the last '}' is used.
// Trailing commas before a closing brace or bracket are dropped.
func ParseModelJSON(text string) (map[string]any, error) {
	var candidate string
	if m := fencedJSONPattern.FindStringSubmatch(text); m != nil {
		candidate = m[1]
	} else if m := bareObjectPattern.FindString(text); m != "" {
		candidate = m
	} else {
		return nil, domain.ErrUnparsableResponse
	}

	candidate = trailingBracePattern.ReplaceAllString(candidate, "}")
	candidate = trailingBracketPattern.ReplaceAllString(candidate, "]")

	var parsed map[string]any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil || parsed == nil {
		return nil, domain.ErrUnparsableResponse
	}
	return parsed, nil
}
