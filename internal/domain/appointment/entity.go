package appointment

import (
	"github.com/NovaCampusApps/principal-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Approve moves a pending appointment into the booked queue with the
// given token. The token is written here and nowhere else.
func Approve(ap *models.Appointment, token int) error {
	if err := CanReview(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusBooked)
	ap.TokenNumber = &token
	return nil
}

func Reject(ap *models.Appointment) error {
	if err := CanReview(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusRejected)
	return nil
}

// Transition applies a queue-side status change (active, completed,
// cancelled). The token number is left untouched: a cancelled
// appointment keeps the number it was served under.
func Transition(ap *models.Appointment, next Status) error {
	if err := CanTransition(Status(ap.Status), next); err != nil {
		return err
	}

	ap.Status = string(next)
	return nil
}

// ReleasesSlot reports whether moving from prior to next must put the
// time slot back on the market. Only cancelling a booked appointment
// does; a cancelled active visit has already consumed the slot.
func ReleasesSlot(prior, next Status) bool {
	return prior == StatusBooked && next == StatusCancelled
}
