package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/NovaCampusApps/principal-scheduler/internal/domain/appointment"
	"github.com/NovaCampusApps/principal-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Time slots
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *AppointmentGormRepository) GetSlot(
	ctx context.Context,
	slotID uint,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, slotID).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *AppointmentGormRepository) ListSlotsForDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *AppointmentGormRepository) SetSlotAvailability(
	ctx context.Context,
	slotID uint,
	available bool,
) error {
	return r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ?", slotID).
		Update("available", available).Error
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("TimeSlot").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) ListByRequester(
	ctx context.Context,
	requesterID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("TimeSlot").
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListByStatus(
	ctx context.Context,
	statuses ...domain.Status,
) ([]models.Appointment, error) {

	raw := make([]string, 0, len(statuses))
	for _, s := range statuses {
		raw = append(raw, string(s))
	}

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("TimeSlot").
		Where("status IN ?", raw).
		Order("created_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListQueueForDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Joins("JOIN time_slots ON time_slots.id = appointments.time_slot_id").
		Where("time_slots.start_time >= ? AND time_slots.start_time < ?", start, end).
		Where("appointments.status IN ?", []string{
			string(domain.StatusBooked),
			string(domain.StatusActive),
		}).
		Order("appointments.token_number ASC NULLS LAST").
		Order("time_slots.start_time ASC").
		Preload("Requester").
		Preload("TimeSlot").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) CountBookedOnSlot(
	ctx context.Context,
	slotID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("time_slot_id = ? AND status = ?", slotID, string(domain.StatusBooked)).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// State change (single transaction)
// --------------------------------------------------

func (r *AppointmentGormRepository) SaveStatusChange(
	ctx context.Context,
	ap *models.Appointment,
	slotAvailable *bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Updates(map[string]any{
				"status":       ap.Status,
				"token_number": ap.TokenNumber,
			}).Error; err != nil {
			return err
		}

		if slotAvailable != nil {
			if err := tx.Model(&models.TimeSlot{}).
				Where("id = ?", ap.TimeSlotID).
				Update("available", *slotAvailable).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AppointmentGormRepository) ListApprovers(
	ctx context.Context,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("role IN ? AND active = ?", []string{models.RolePrincipal, models.RoleAdmin}, true).
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
