package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaCampusApps/principal-scheduler/internal/audit"
	domain "github.com/NovaCampusApps/principal-scheduler/internal/domain/appointment"
	"github.com/NovaCampusApps/principal-scheduler/internal/httpresp"
	"github.com/NovaCampusApps/principal-scheduler/internal/models"
	"github.com/NovaCampusApps/principal-scheduler/internal/timezone"
)

type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewAdminHandler(db *gorm.DB, auditor *audit.Dispatcher, loc *time.Location) *AdminHandler {
	return &AdminHandler{db: db, audit: auditor, loc: loc}
}

// --------- Requests ---------

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type SetActiveRequest struct {
	Active *bool `json:"is_active" binding:"required"`
}

// --------- User directory ---------

type userRow struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"is_active"`
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	q := h.db.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var users []models.User
	if err := q.Order("name ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	out := make([]userRow, 0, len(users))
	for _, u := range users {
		out = append(out, userRow{
			ID:     u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Role:   u.Role,
			Active: u.Active,
		})
	}

	httpresp.List(c, out)
}

func (h *AdminHandler) SetRole(c *gin.Context) {
	actorID, _, ok := callerFromContext(c)
	if !ok {
		return
	}

	targetID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if !models.IsValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
		return
	}

	var user models.User
	if err := h.db.First(&user, targetID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := h.db.Model(&user).Update("role", role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_role"})
		return
	}

	targetRef := user.ID
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "user_role_changed",
		Entity:   "user",
		EntityID: &targetRef,
		Metadata: map[string]any{"role": role},
	})

	httpresp.OK(c, gin.H{"id": user.ID, "role": role})
}

func (h *AdminHandler) SetActive(c *gin.Context) {
	actorID, _, ok := callerFromContext(c)
	if !ok {
		return
	}

	targetID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var user models.User
	if err := h.db.First(&user, targetID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := h.db.Model(&user).Update("active", *req.Active).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_status"})
		return
	}

	action := "user_disabled"
	if *req.Active {
		action = "user_enabled"
	}
	targetRef := user.ID
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   action,
		Entity:   "user",
		EntityID: &targetRef,
	})

	httpresp.OK(c, gin.H{"id": user.ID, "is_active": *req.Active})
}

// --------- Overview ---------

// OverviewStats is the admin dashboard snapshot: user counts, the
// appointment funnel and today's token position.
func (h *AdminHandler) OverviewStats(c *gin.Context) {
	var totalUsers int64
	h.db.Model(&models.User{}).Count(&totalUsers)

	statusCounts := map[string]int64{}
	for _, st := range []domain.Status{
		domain.StatusPending,
		domain.StatusBooked,
		domain.StatusActive,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusRejected,
	} {
		var n int64
		h.db.Model(&models.Appointment{}).Where("status = ?", string(st)).Count(&n)
		statusCounts[string(st)] = n
	}

	var counter models.TokenCounter
	tokensToday := 0
	day := timezone.DayKey(time.Now().In(h.loc))
	if err := h.db.Where("day = ?", day).First(&counter).Error; err == nil {
		tokensToday = counter.Next
	}

	httpresp.OK(c, gin.H{
		"total_users":   totalUsers,
		"appointments":  statusCounts,
		"tokens_issued": tokensToday,
		"day":           day,
	})
}

func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_user_id"})
		return 0, false
	}
	return uint(id), true
}
