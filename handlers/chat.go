package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"casaherenia/services/concierge"
	"casaherenia/utils"
)

// ChatHandler exposes the virtual concierge.
type ChatHandler struct {
	Service *concierge.Service
}

type chatRequest struct {
	Question string `json:"question" binding:"required"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "question is required", err.Error())
		return
	}

	answer, err := h.Service.Ask(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, concierge.ErrNotConfigured) {
			utils.JSONError(c, http.StatusServiceUnavailable, "concierge is not available", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "concierge could not answer", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
