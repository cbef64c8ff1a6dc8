package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NovaCampusApps/principal-scheduler/internal/httperr"
	"github.com/NovaCampusApps/principal-scheduler/internal/httpresp"
	usecase "github.com/NovaCampusApps/principal-scheduler/internal/usecase/appointment"
)

type QueueHandler struct {
	listQueue *usecase.ListQueue
	loc       *time.Location
}

func NewQueueHandler(listQueue *usecase.ListQueue, loc *time.Location) *QueueHandler {
	return &QueueHandler{listQueue: listQueue, loc: loc}
}

// Today serves the live queue board for the current day.
func (h *QueueHandler) Today(c *gin.Context) {
	day := time.Now().In(h.loc)

	if dateStr := c.Query("day"); dateStr != "" {
		parsed, err := parseDayIn(h.loc, dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_day_format"})
			return
		}
		day = parsed
	}

	out, err := h.listQueue.Execute(c.Request.Context(), day)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, out)
}
