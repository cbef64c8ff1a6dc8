package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/NovaCampusApps/principal-scheduler/internal/audit"
	domain "github.com/NovaCampusApps/principal-scheduler/internal/domain/appointment"
	"github.com/NovaCampusApps/principal-scheduler/internal/httperr"
	"github.com/NovaCampusApps/principal-scheduler/internal/models"
	"github.com/NovaCampusApps/principal-scheduler/internal/notify"
	"github.com/NovaCampusApps/principal-scheduler/internal/tokens"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

const slotTimeFormat = "Mon, 02 Jan 2006 at 15:04"

// ======================================================
// INPUT
// ======================================================

type ReviewAppointmentInput struct {
	ApproverID   uint
	ApproverRole string

	AppointmentID uint
	Action        string
}

// ======================================================
// USE CASE
// ======================================================

type ReviewAppointment struct {
	repo      domain.Repository
	allocator tokens.Allocator
	sink      notify.Sink
	audit     *audit.Dispatcher
	loc       *time.Location
}

func NewReviewAppointment(
	repo domain.Repository,
	allocator tokens.Allocator,
	sink notify.Sink,
	audit *audit.Dispatcher,
	loc *time.Location,
) *ReviewAppointment {
	return &ReviewAppointment{
		repo:      repo,
		allocator: allocator,
		sink:      sink,
		audit:     audit,
		loc:       loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ReviewAppointment) Execute(
	ctx context.Context,
	in ReviewAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Authority
	// --------------------------------------------------
	if !models.IsApproverRole(in.ApproverRole) {
		return nil, httperr.ErrForbidden("only the principal or an admin can review appointments")
	}

	if in.Action != ActionApprove && in.Action != ActionReject {
		return nil, httperr.ErrValidation("action must be approve or reject")
	}

	// --------------------------------------------------
	// 2. Load (slot comes with it)
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment")
	}

	slotStart := ap.TimeSlot.StartTime.In(uc.loc)

	// --------------------------------------------------
	// 3. Transition + persistence
	// --------------------------------------------------
	switch in.Action {

	case ActionApprove:
		// Token is drawn from the day's atomic counter before the
		// status write; the counter only moves forward, so a failed
		// write wastes a number but never duplicates one.
		token, err := uc.allocator.Next(ctx, slotStart)
		if err != nil {
			return nil, err
		}

		if err := domain.Approve(ap, token); err != nil {
			return nil, err
		}

		// Booking takes the slot off the market, atomically with the
		// status and token write.
		unavailable := false
		if err := uc.repo.SaveStatusChange(ctx, ap, &unavailable); err != nil {
			return nil, err
		}

		uc.sink.Dispatch(notify.Message{
			RecipientID: ap.RequesterID,
			Text: fmt.Sprintf(
				"Your appointment for %s has been approved. Your token number is %d.",
				slotStart.Format(slotTimeFormat), token,
			),
			Link: "/my-appointments",
		})

	case ActionReject:
		if err := domain.Reject(ap); err != nil {
			return nil, err
		}

		if err := uc.repo.SaveStatusChange(ctx, ap, nil); err != nil {
			return nil, err
		}

		uc.sink.Dispatch(notify.Message{
			RecipientID: ap.RequesterID,
			Text: fmt.Sprintf(
				"Your appointment request for %s has been rejected.",
				slotStart.Format(slotTimeFormat),
			),
			Link: "/my-appointments",
		})
	}

	auditAction := "appointment_approved"
	if in.Action == ActionReject {
		auditAction = "appointment_rejected"
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ApproverID,
		Action:   auditAction,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	return ap, nil
}
