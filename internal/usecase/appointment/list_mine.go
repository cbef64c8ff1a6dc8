package appointment

import (
	"context"

	domain "github.com/NovaCampusApps/principal-scheduler/internal/domain/appointment"
	"github.com/NovaCampusApps/principal-scheduler/internal/dto"
)

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	requesterID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Purpose:     ap.Purpose,
			Status:      ap.Status,
			TokenNumber: ap.TokenNumber,
			SlotStart:   ap.TimeSlot.StartTime,
			SlotEnd:     ap.TimeSlot.EndTime,
			RequesterID: ap.RequesterID,
			CreatedAt:   ap.CreatedAt,
		})
	}

	return out, nil
}
