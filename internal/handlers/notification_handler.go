package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NovaCampusApps/principal-scheduler/internal/httperr"
	"github.com/NovaCampusApps/principal-scheduler/internal/httpresp"
	"github.com/NovaCampusApps/principal-scheduler/internal/notify"
)

type NotificationHandler struct {
	store *notify.Store
}

func NewNotificationHandler(store *notify.Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, _, ok := callerFromContext(c)
	if !ok {
		return
	}

	out, err := h.store.ListForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, _, ok := callerFromContext(c)
	if !ok {
		return
	}

	if err := h.store.MarkAllRead(c.Request.Context(), userID); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
