package appointment

import (
	"context"
	"strings"

	"github.com/NovaCampusApps/principal-scheduler/internal/audit"
	domain "github.com/NovaCampusApps/principal-scheduler/internal/domain/appointment"
	"github.com/NovaCampusApps/principal-scheduler/internal/httperr"
	"github.com/NovaCampusApps/principal-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	RequesterID   uint
	RequesterRole string

	SlotID  uint
	Purpose string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// Strict booking policy: only requester roles may book.
	if !models.IsRequesterRole(in.RequesterRole) {
		return nil, httperr.ErrForbidden("only students and faculty can book appointments")
	}

	if strings.TrimSpace(in.Purpose) == "" {
		return nil, httperr.ErrValidation("purpose is required")
	}

	if _, err := uc.repo.GetSlot(ctx, in.SlotID); err != nil {
		return nil, httperr.ErrNotFound("time slot")
	}

	// Requests start pending, with no token; the slot stays on the
	// market until an approver books it.
	ap := &models.Appointment{
		RequesterID: in.RequesterID,
		TimeSlotID:  in.SlotID,
		Purpose:     strings.TrimSpace(in.Purpose),
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.RequesterID,
		Action:   "appointment_requested",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
