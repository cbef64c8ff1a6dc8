package appointment

import (
	"context"

	domain "github.com/NovaCampusApps/principal-scheduler/internal/domain/appointment"
	"github.com/NovaCampusApps/principal-scheduler/internal/dto"
)

type ListPendingAppointments struct {
	repo domain.Repository
}

func NewListPendingAppointments(repo domain.Repository) *ListPendingAppointments {
	return &ListPendingAppointments{repo: repo}
}

func (uc *ListPendingAppointments) Execute(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			Purpose:       ap.Purpose,
			Status:        ap.Status,
			TokenNumber:   ap.TokenNumber,
			SlotStart:     ap.TimeSlot.StartTime,
			SlotEnd:       ap.TimeSlot.EndTime,
			RequesterID:   ap.RequesterID,
			RequesterName: ap.Requester.Name,
			CreatedAt:     ap.CreatedAt,
		})
	}

	return out, nil
}
