package appointment

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/NovaCampusApps/principal-scheduler/internal/audit"
	domain "github.com/NovaCampusApps/principal-scheduler/internal/domain/appointment"
	"github.com/NovaCampusApps/principal-scheduler/internal/httperr"
	"github.com/NovaCampusApps/principal-scheduler/internal/models"
	"github.com/NovaCampusApps/principal-scheduler/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type SetStatusInput struct {
	CallerID   uint
	CallerRole string

	AppointmentID uint
	NewStatus     string
}

// ======================================================
// USE CASE
// ======================================================

type SetAppointmentStatus struct {
	repo  domain.Repository
	sink  notify.Sink
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	sink notify.Sink,
	audit *audit.Dispatcher,
	loc *time.Location,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		sink:  sink,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	in SetStatusInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Status value (closed set, queue-side subset)
	// --------------------------------------------------
	next, err := domain.ParseStatus(in.NewStatus)
	if err != nil {
		return nil, err
	}
	if next != domain.StatusActive && next != domain.StatusCompleted && next != domain.StatusCancelled {
		return nil, httperr.ErrValidation("status must be active, completed or cancelled")
	}

	// --------------------------------------------------
	// 2. Load
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment")
	}

	// --------------------------------------------------
	// 3. Authority
	// --------------------------------------------------
	if !models.IsApproverRole(in.CallerRole) {
		// A requester may only cancel, and only their own appointment.
		if next != domain.StatusCancelled {
			return nil, httperr.ErrForbidden("only the principal or an admin can update the queue")
		}
		if ap.RequesterID != in.CallerID {
			return nil, httperr.ErrForbidden("appointments can only be cancelled by their owner")
		}
	}

	// --------------------------------------------------
	// 4. Transition
	// --------------------------------------------------
	prior := domain.Status(ap.Status)

	if err := domain.Transition(ap, next); err != nil {
		return nil, err
	}

	// Cancelling a booked appointment frees the slot, in the same
	// write as the status change.
	var slotAvailable *bool
	release := domain.ReleasesSlot(prior, next)
	if release {
		available := true
		slotAvailable = &available
	}

	if err := uc.repo.SaveStatusChange(ctx, ap, slotAvailable); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Fan-out: approvers learn a booked visit fell through
	// --------------------------------------------------
	if release {
		uc.notifyApprovers(ctx, ap, in.CallerID)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.CallerID,
		Action:   "appointment_" + string(next),
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"from": string(prior), "to": string(next)},
	})

	return ap, nil
}

// notifyApprovers resolves the approver directory at call time; roles
// change, so the recipient list is never cached. The message names
// whoever actually cancelled, not just the appointment's owner.
func (uc *SetAppointmentStatus) notifyApprovers(ctx context.Context, ap *models.Appointment, callerID uint) {
	approvers, err := uc.repo.ListApprovers(ctx)
	if err != nil {
		// Best-effort side channel; the cancellation itself stands.
		log.Println("notify approvers:", err)
		return
	}

	requester := ap.Requester.Name
	if requester == "" {
		requester = uc.userName(ctx, ap.RequesterID)
	}

	slotTime := ap.TimeSlot.StartTime.In(uc.loc).Format(slotTimeFormat)

	var text string
	if callerID == ap.RequesterID {
		text = fmt.Sprintf(
			"%s cancelled their booked appointment for %s. The slot is open again.",
			requester, slotTime,
		)
	} else {
		text = fmt.Sprintf(
			"%s cancelled %s's booked appointment for %s. The slot is open again.",
			uc.userName(ctx, callerID), requester, slotTime,
		)
	}

	for _, approver := range approvers {
		uc.sink.Dispatch(notify.Message{
			RecipientID: approver.ID,
			Text:        text,
			Link:        "/queue",
		})
	}
}

func (uc *SetAppointmentStatus) userName(ctx context.Context, userID uint) string {
	if u, err := uc.repo.GetUser(ctx, userID); err == nil && u.Name != "" {
		return u.Name
	}
	return fmt.Sprintf("user %d", userID)
}
