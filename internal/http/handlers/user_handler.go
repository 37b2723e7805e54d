// README: Per-user feature endpoints (recommendations, safety check, carpool).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cruise/internal/chatbot"
)

type UserHandler struct {
	chatbot *chatbot.Service
}

func NewUserHandler(svc *chatbot.Service) *UserHandler {
	return &UserHandler{chatbot: svc}
}

// Recommendations handles GET /api/users/:id/recommendations.
func (h *UserHandler) Recommendations(c *gin.Context) {
	recs, err := h.chatbot.GetRecommendations(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBackendError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"recommendations": recs})
}

// SafetyCheck handles GET /api/users/:id/safety-check.
func (h *UserHandler) SafetyCheck(c *gin.Context) {
	report, err := h.chatbot.PerformSafetyCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBackendError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, report)
}

// CarpoolOpportunities handles GET /api/users/:id/carpool-opportunities.
func (h *UserHandler) CarpoolOpportunities(c *gin.Context) {
	matches, err := h.chatbot.GetCarpoolOpportunities(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBackendError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"matches": matches})
}
