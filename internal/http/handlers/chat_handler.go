// README: Chat endpoint; hands messages to the chatbot core.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cruise/internal/chatbot"
	"cruise/internal/types"
)

type ChatHandler struct {
	chatbot *chatbot.Service
}

func NewChatHandler(svc *chatbot.Service) *ChatHandler {
	return &ChatHandler{chatbot: svc}
}

type chatReq struct {
	Message  string `json:"message"`
	UserID   string `json:"user_id"`
	Language string `json:"language"`
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	req.UserID = strings.TrimSpace(req.UserID)
	if req.Message == "" || req.UserID == "" {
		writeError(c, http.StatusBadRequest, "missing message or user_id")
		return
	}

	response := h.chatbot.ProcessMessage(
		c.Request.Context(),
		req.Message,
		req.UserID,
		types.ParseLanguage(req.Language),
	)
	writeJSON(c, http.StatusOK, gin.H{"response": response})
}
