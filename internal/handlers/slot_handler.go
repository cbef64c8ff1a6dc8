package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/NovaCampusApps/principal-scheduler/internal/domain/appointment"
	"github.com/NovaCampusApps/principal-scheduler/internal/dto"
	"github.com/NovaCampusApps/principal-scheduler/internal/httperr"
	"github.com/NovaCampusApps/principal-scheduler/internal/httpresp"
	"github.com/NovaCampusApps/principal-scheduler/internal/models"
	"github.com/NovaCampusApps/principal-scheduler/internal/timezone"
)

type SlotHandler struct {
	repo domain.Repository
	loc  *time.Location
}

func NewSlotHandler(repo domain.Repository, loc *time.Location) *SlotHandler {
	return &SlotHandler{repo: repo, loc: loc}
}

// --------- Requests ---------

type CreateSlotRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// --------- Handlers ---------

func (h *SlotHandler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !req.EndTime.After(req.StartTime) {
		httperr.FromError(c, httperr.ErrInvalidRange("end_time must be after start_time"))
		return
	}

	slot := models.TimeSlot{
		StartTime: req.StartTime.In(h.loc),
		EndTime:   req.EndTime.In(h.loc),
		Available: true,
	}

	if err := h.repo.CreateSlot(c.Request.Context(), &slot); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// ListForDay returns the slots of one calendar day with how many
// booked appointments each currently holds. Day defaults to today in
// the institution timezone.
func (h *SlotHandler) ListForDay(c *gin.Context) {
	day := time.Now().In(h.loc)

	if dateStr := c.Query("day"); dateStr != "" {
		parsed, err := parseDayIn(h.loc, dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_day_format"})
			return
		}
		day = parsed
	}

	start, end := timezone.DayBounds(day)

	slots, err := h.repo.ListSlotsForDay(c.Request.Context(), start, end)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out := make([]dto.SlotDTO, 0, len(slots))
	for _, s := range slots {
		booked, err := h.repo.CountBookedOnSlot(c.Request.Context(), s.ID)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		out = append(out, dto.SlotDTO{
			ID:          s.ID,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Available:   s.Available,
			BookedCount: booked,
		})
	}

	httpresp.List(c, out)
}
