// README: Slot extraction for locations and booking identifiers.
package chatbot

import (
	"regexp"
	"strings"
)

var pickupPatterns = compileAll(
	`from\s+([^\.]+?)(?:\s+to|\s*$)`,
	`at\s+([^\.]+?)(?:\s+to|\s*$)`,
	`pickup(?:\s+(?:from|at))?\s+([^\.]+?)(?:\s+to|\s*$)`,
	`pick me up (?:from|at)?\s+([^\.]+?)(?:\s+to|\s*$)`,
)

var dropoffPatterns = compileAll(
	`to\s+([^\.]+?)(?:\s*$|\s*\.)`,
	`destination(?:\s+(?:is|at))?\s+([^\.]+?)(?:\s*$|\s*\.)`,
	`take me to\s+([^\.]+?)(?:\s*$|\s*\.)`,
)

// bookingIDPatterns are tried in order; the compound form first so that
// "cancel booking id ABC123" captures the token, not the word "id".
var bookingIDPatterns = compileAll(
	`\b(?:booking|reference)\s+(?:id|number|ref)\s*(?:is|:|#)?\s*([a-zA-Z0-9_]+)`,
	`\b(?:id|booking|reference)\s*(?:is|:|#)?\s*([a-zA-Z0-9_]+)`,
)

// leading words stripped from split-window candidates before acceptance.
var locationStopwords = map[string]bool{
	"from": true,
	"at":   true,
	"in":   true,
	"the":  true,
}

// ExtractLocations pulls pickup/dropoff phrases out of free text.
//
// The " to " split is tried first: up to three whitespace tokens either side
// of the first " to " become the candidates, with leading prepositions
// stripped. A candidate is accepted only when it is longer than two
// characters and contains an internal space. When the split yields both
// slots the regex pass is skipped; otherwise each slot is searched
// independently with its own ordered pattern list, first match wins.
func ExtractLocations(text string) LocationSlots {
	lower := strings.ToLower(text)
	var slots LocationSlots

	if idx := strings.Index(lower, " to "); idx >= 0 {
		before := strings.Fields(lower[:idx])
		after := strings.Fields(lower[idx+len(" to "):])

		if n := len(before); n > 3 {
			before = before[n-3:]
		}
		if len(after) > 3 {
			after = after[:3]
		}

		if c := locationCandidate(before); c != "" {
			slots.Pickup = c
		}
		if c := locationCandidate(after); c != "" {
			slots.Dropoff = c
		}
		if slots.Pickup != "" && slots.Dropoff != "" {
			return slots
		}
	}

	// The two slot searches are independent; a pickup match does not block
	// trying all dropoff patterns.
	if slots.Pickup == "" {
		slots.Pickup = firstMatch(pickupPatterns, lower)
	}
	if slots.Dropoff == "" {
		slots.Dropoff = firstMatch(dropoffPatterns, lower)
	}
	return slots
}

// ExtractBookingID finds a booking identifier in the raw message, preserving
// its case. Returns "" when no identifier is present.
func ExtractBookingID(text string) string {
	for _, p := range bookingIDPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

func locationCandidate(tokens []string) string {
	for len(tokens) > 0 && locationStopwords[tokens[0]] {
		tokens = tokens[1:]
	}
	candidate := strings.Join(tokens, " ")
	if len(candidate) > 2 && strings.Contains(candidate, " ") {
		return candidate
	}
	return ""
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
