package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NovaCampusApps/principal-scheduler/internal/httperr"
	"github.com/NovaCampusApps/principal-scheduler/internal/httpresp"
	"github.com/NovaCampusApps/principal-scheduler/internal/middleware"
	usecase "github.com/NovaCampusApps/principal-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	book      *usecase.BookAppointment
	review    *usecase.ReviewAppointment
	setStatus *usecase.SetAppointmentStatus
	listMine  *usecase.ListMyAppointments
	listPend  *usecase.ListPendingAppointments
}

func NewAppointmentHandler(
	book *usecase.BookAppointment,
	review *usecase.ReviewAppointment,
	setStatus *usecase.SetAppointmentStatus,
	listMine *usecase.ListMyAppointments,
	listPend *usecase.ListPendingAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:      book,
		review:    review,
		setStatus: setStatus,
		listMine:  listMine,
		listPend:  listPend,
	}
}

// --------- Requests ---------

type BookRequest struct {
	SlotID  uint   `json:"slot_id" binding:"required"`
	Purpose string `json:"purpose" binding:"required"`
}

type ReviewRequest struct {
	Action string `json:"action" binding:"required"`
}

// --------- Helpers ---------

func callerFromContext(c *gin.Context) (uint, string, bool) {
	idVal, ok1 := c.Get(middleware.ContextUserID)
	roleVal, ok2 := c.Get(middleware.ContextUserRole)
	if !ok1 || !ok2 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return 0, "", false
	}

	id, ok1 := idVal.(uint)
	role, ok2 := roleVal.(string)
	if !ok1 || !ok2 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_context"})
		return 0, "", false
	}

	return id, role, true
}

func appointmentIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_appointment_id"})
		return 0, false
	}
	return uint(id), true
}

// --------- Handlers ---------

func (h *AppointmentHandler) Book(c *gin.Context) {
	userID, role, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), usecase.BookAppointmentInput{
		RequesterID:   userID,
		RequesterRole: role,
		SlotID:        req.SlotID,
		Purpose:       req.Purpose,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID, _, ok := callerFromContext(c)
	if !ok {
		return
	}

	out, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListPending(c *gin.Context) {
	out, err := h.listPend.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, out)
}

// Review settles a pending request: approve books the slot and hands
// out the day's next token, reject closes it.
func (h *AppointmentHandler) Review(c *gin.Context) {
	userID, role, ok := callerFromContext(c)
	if !ok {
		return
	}

	apID, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.review.Execute(c.Request.Context(), usecase.ReviewAppointmentInput{
		ApproverID:    userID,
		ApproverRole:  role,
		AppointmentID: apID,
		Action:        req.Action,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	userID, role, ok := callerFromContext(c)
	if !ok {
		return
	}

	apID, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_status"})
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), usecase.SetStatusInput{
		CallerID:      userID,
		CallerRole:    role,
		AppointmentID: apID,
		NewStatus:     status,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
