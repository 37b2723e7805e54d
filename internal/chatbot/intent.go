// README: Ordered-regex intent classification.
package chatbot

import (
	"regexp"
	"strings"
)

// intentGroup is one priority tier of the classifier. Groups are evaluated
// in table order and the first group with any matching pattern wins; the
// table is priority-ordered, not confidence-ranked.
type intentGroup struct {
	intent   Intent
	patterns []*regexp.Regexp
}

var intentTable = []intentGroup{
	{IntentBooking, compileAll(
		`\b(book|order|get|need|want|request|schedule)\s+.*\b(ride|car|taxi|vehicle|transportation)\b`,
		`\btake me to\b`,
		`\bpick me up\b`,
		`\bfrom\s+.+\s+to\s+.+\b`,
	)},
	{IntentCancellation, compileAll(
		`\b(cancel|stop|abort|terminate)\s+.*\b(ride|booking|trip|order)\b`,
		`\bi want to cancel\b`,
		`\bdon't need the ride\b`,
	)},
	{IntentRecommendations, compileAll(
		`\b(recommend|suggest|advise|what should|propose)\b`,
		`\bwhat's good\b`,
		`\bwhat do you recommend\b`,
	)},
	{IntentSafety, compileAll(
		`\b(safety|safe|security|secure)\b`,
		`\bcheck safety\b`,
		`\bhow safe\b`,
	)},
	{IntentCarpool, compileAll(
		`\b(carpool|pool|share|car sharing|shared ride)\b`,
		`\bshare a ride\b`,
		`\bsplit the cost\b`,
	)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

// ClassifyIntent maps a message to an Intent. Pure function of the text.
func ClassifyIntent(message string) Intent {
	message = strings.ToLower(message)
	for _, group := range intentTable {
		for _, p := range group.patterns {
			if p.MatchString(message) {
				return group.intent
			}
		}
	}
	return IntentUnknown
}
