package appointment

import (
	"context"
	"time"

	"github.com/NovaCampusApps/principal-scheduler/internal/models"
)

type Repository interface {
	// -------- Time slots --------
	CreateSlot(
		ctx context.Context,
		slot *models.TimeSlot,
	) error

	GetSlot(
		ctx context.Context,
		slotID uint,
	) (*models.TimeSlot, error)

	ListSlotsForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.TimeSlot, error)

	SetSlotAvailability(
		ctx context.Context,
		slotID uint,
		available bool,
	) error

	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	ListByRequester(
		ctx context.Context,
		requesterID uint,
	) ([]models.Appointment, error)

	ListByStatus(
		ctx context.Context,
		statuses ...Status,
	) ([]models.Appointment, error)

	ListQueueForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	CountBookedOnSlot(
		ctx context.Context,
		slotID uint,
	) (int64, error)

	// -------- State change (single transaction) --------
	// SaveStatusChange persists the appointment's status and token and,
	// when slotAvailable is non-nil, the slot's availability flag, as
	// one atomic write.
	SaveStatusChange(
		ctx context.Context,
		ap *models.Appointment,
		slotAvailable *bool,
	) error

	// -------- Users (identity directory) --------
	GetUser(
		ctx context.Context,
		userID uint,
	) (*models.User, error)

	ListApprovers(
		ctx context.Context,
	) ([]models.User, error)
}
