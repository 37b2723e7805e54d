// README: Core chatbot domain types (intents, slots, safety report, recommendations).
package chatbot

// Intent is the coarse action category a user message maps to.
type Intent string

const (
	IntentBooking         Intent = "booking"
	IntentCancellation    Intent = "cancellation"
	IntentRecommendations Intent = "recommendations"
	IntentSafety          Intent = "safety"
	IntentCarpool         Intent = "carpool"
	IntentUnknown         Intent = "unknown"
)

// LocationSlots holds pickup/dropoff phrases pulled out of free text.
// Either field may be empty; a partial extraction is a valid result that
// drives a clarifying follow-up, not an error.
type LocationSlots struct {
	Pickup  string
	Dropoff string
}

// Bilingual pairs the English and Arabic renderings of a text.
type Bilingual struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// SafetyReport is the outcome of a safety check.
type SafetyReport struct {
	Status          string    `json:"status"`
	Issues          []string  `json:"issues"`
	Recommendations Bilingual `json:"recommendations"`
}

// Recommendation is one personalized suggestion.
type Recommendation struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
