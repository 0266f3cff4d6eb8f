package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"casaherenia/services/notification"
	"casaherenia/utils"
)

// ContactHandler forwards contact-form messages to the owner.
type ContactHandler struct {
	Notifier notification.NotificationService
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SendMessage handles POST /api/contact. Delivery is best-effort; the form
// always acknowledges so guests are not bounced by a mail hiccup.
func (h *ContactHandler) SendMessage(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name, email and message are required", err.Error())
		return
	}

	h.Notifier.ContactMessage(c.Request.Context(),
		strings.TrimSpace(req.Name), strings.TrimSpace(req.Email), strings.TrimSpace(req.Message))

	c.JSON(http.StatusAccepted, gin.H{"message": "thanks, we will get back to you soon"})
}
