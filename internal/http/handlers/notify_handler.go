// README: Push notification endpoint.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cruise/internal/notify"
)

type NotifyHandler struct {
	notify *notify.Service
}

func NewNotifyHandler(svc *notify.Service) *NotifyHandler {
	return &NotifyHandler{notify: svc}
}

type notifyReq struct {
	UserID string            `json:"user_id"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data"`
}

// Send handles POST /api/notify.
func (h *NotifyHandler) Send(c *gin.Context) {
	var req notifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || req.Title == "" {
		writeError(c, http.StatusBadRequest, "missing user_id or title")
		return
	}

	err := h.notify.SendToUser(c.Request.Context(), req.UserID, req.Title, req.Body, req.Data)
	if errors.Is(err, notify.ErrNoToken) {
		writeError(c, http.StatusNotFound, "user has no registered device")
		return
	}
	if err != nil {
		writeBackendError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "sent"})
}
