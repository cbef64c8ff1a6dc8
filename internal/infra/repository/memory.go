package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/NovaCampusApps/principal-scheduler/internal/domain/appointment"
	"github.com/NovaCampusApps/principal-scheduler/internal/models"
)

// InMemoryRepository mirrors the gorm repository over plain maps. It
// backs the usecase tests, which exercise lifecycle semantics without
// a database.
type InMemoryRepository struct {
	mu sync.RWMutex

	slots        map[uint]*models.TimeSlot
	appointments map[uint]*models.Appointment
	users        map[uint]*models.User

	nextSlotID uint
	nextApID   uint
	nextUserID uint
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		slots:        make(map[uint]*models.TimeSlot),
		appointments: make(map[uint]*models.Appointment),
		users:        make(map[uint]*models.User),
	}
}

// AddUser seeds a user and returns it with an assigned ID.
func (r *InMemoryRepository) AddUser(u models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextUserID++
	u.ID = r.nextUserID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.users[u.ID] = &u
	return &u
}

// --------------------------------------------------
// Time slots
// --------------------------------------------------

func (r *InMemoryRepository) CreateSlot(ctx context.Context, slot *models.TimeSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSlotID++
	slot.ID = r.nextSlotID
	slot.CreatedAt = time.Now()
	cp := *slot
	r.slots[slot.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetSlot(ctx context.Context, slotID uint) (*models.TimeSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.slots[slotID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *slot
	return &cp, nil
}

func (r *InMemoryRepository) ListSlotsForDay(ctx context.Context, start, end time.Time) ([]models.TimeSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.TimeSlot
	for _, s := range r.slots {
		if !s.StartTime.Before(start) && s.StartTime.Before(end) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *InMemoryRepository) SetSlotAvailability(ctx context.Context, slotID uint, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[slotID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	slot.Available = available
	return nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *InMemoryRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextApID++
	ap.ID = r.nextApID
	ap.CreatedAt = time.Now()
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetAppointment(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.appointments[appointmentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	cp := *ap
	if slot, ok := r.slots[ap.TimeSlotID]; ok {
		cp.TimeSlot = *slot
	}
	if user, ok := r.users[ap.RequesterID]; ok {
		cp.Requester = *user
	}
	return &cp, nil
}

func (r *InMemoryRepository) ListByRequester(ctx context.Context, requesterID uint) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.RequesterID != requesterID {
			continue
		}
		cp := *ap
		if slot, ok := r.slots[ap.TimeSlotID]; ok {
			cp.TimeSlot = *slot
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) ListByStatus(ctx context.Context, statuses ...domain.Status) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	match := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		match[string(s)] = true
	}

	var out []models.Appointment
	for _, ap := range r.appointments {
		if !match[ap.Status] {
			continue
		}
		cp := *ap
		if slot, ok := r.slots[ap.TimeSlotID]; ok {
			cp.TimeSlot = *slot
		}
		if user, ok := r.users[ap.RequesterID]; ok {
			cp.Requester = *user
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) ListQueueForDay(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Status != string(domain.StatusBooked) && ap.Status != string(domain.StatusActive) {
			continue
		}
		slot, ok := r.slots[ap.TimeSlotID]
		if !ok || slot.StartTime.Before(start) || !slot.StartTime.Before(end) {
			continue
		}
		cp := *ap
		cp.TimeSlot = *slot
		if user, ok := r.users[ap.RequesterID]; ok {
			cp.Requester = *user
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].TokenNumber, out[j].TokenNumber
		switch {
		case ti != nil && tj != nil && *ti != *tj:
			return *ti < *tj
		case ti != nil && tj == nil:
			return true
		case ti == nil && tj != nil:
			return false
		}
		return out[i].TimeSlot.StartTime.Before(out[j].TimeSlot.StartTime)
	})
	return out, nil
}

func (r *InMemoryRepository) CountBookedOnSlot(ctx context.Context, slotID uint) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, ap := range r.appointments {
		if ap.TimeSlotID == slotID && ap.Status == string(domain.StatusBooked) {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryRepository) SaveStatusChange(ctx context.Context, ap *models.Appointment, slotAvailable *bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.appointments[ap.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = ap.Status
	stored.TokenNumber = ap.TokenNumber

	if slotAvailable != nil {
		if slot, ok := r.slots[ap.TimeSlotID]; ok {
			slot.Available = *slotAvailable
		}
	}
	return nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *InMemoryRepository) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *InMemoryRepository) ListApprovers(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.User
	for _, u := range r.users {
		if models.IsApproverRole(u.Role) && u.Active {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*InMemoryRepository)(nil)
