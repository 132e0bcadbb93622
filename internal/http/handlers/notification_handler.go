// README: Notification endpoints — owner-scoped reads and read flags.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodbridge/internal/http/middleware"
	"foodbridge/internal/modules/notify"
	"foodbridge/internal/types"
)

type NotificationHandler struct {
	notifications *notify.Service
}

func NewNotificationHandler(svc *notify.Service) *NotificationHandler {
	return &NotificationHandler{notifications: svc}
}

func (h *NotificationHandler) Latest(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)
	list, err := h.notifications.Latest(c.Request.Context(), actor.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeList(c, list, len(list))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)
	if err := h.notifications.MarkRead(c.Request.Context(), actor.ID, types.ID(c.Param("id"))); err != nil {
		writeDomainError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)
	n, err := h.notifications.MarkAllRead(c.Request.Context(), actor.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "All notifications marked as read", gin.H{"updated": n})
}
