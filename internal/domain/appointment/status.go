package appointment

import "github.com/NovaCampusApps/principal-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusBooked    Status = "booked"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

// ParseStatus validates a raw value against the closed status set.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusBooked, StatusActive, StatusCompleted, StatusCancelled, StatusRejected:
		return Status(raw), nil
	}
	return "", httperr.ErrValidation("unknown status " + raw)
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transition legality
// ===============================

// CanReview: only a pending appointment can be approved or rejected.
func CanReview(current Status) error {
	if current != StatusPending {
		return httperr.ErrInvalidTransition(string(current))
	}
	return nil
}

// CanTransition validates the queue-side transitions:
// booked → active → completed, and booked|active → cancelled.
func CanTransition(current, next Status) error {
	switch next {
	case StatusActive:
		if current == StatusBooked {
			return nil
		}
	case StatusCompleted:
		if current == StatusActive {
			return nil
		}
	case StatusCancelled:
		if current == StatusBooked || current == StatusActive {
			return nil
		}
	}
	return httperr.ErrInvalidTransition(string(current))
}
