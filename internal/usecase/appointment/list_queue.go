package appointment

import (
	"context"
	"time"

	domain "github.com/NovaCampusApps/principal-scheduler/internal/domain/appointment"
	"github.com/NovaCampusApps/principal-scheduler/internal/dto"
	"github.com/NovaCampusApps/principal-scheduler/internal/timezone"
)

// ListQueue projects the day's service queue: booked and active
// appointments whose slot falls on the day, in token order.
type ListQueue struct {
	repo domain.Repository
}

func NewListQueue(repo domain.Repository) *ListQueue {
	return &ListQueue{repo: repo}
}

func (uc *ListQueue) Execute(
	ctx context.Context,
	day time.Time,
) ([]dto.QueueEntryDTO, error) {

	start, end := timezone.DayBounds(day)

	appointments, err := uc.repo.ListQueueForDay(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.QueueEntryDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.QueueEntryDTO{
			AppointmentID: ap.ID,
			TokenNumber:   ap.TokenNumber,
			Status:        ap.Status,
			SlotStart:     ap.TimeSlot.StartTime,
			SlotEnd:       ap.TimeSlot.EndTime,
			RequesterID:   ap.RequesterID,
			RequesterName: ap.Requester.Name,
			Purpose:       ap.Purpose,
		})
	}

	return out, nil
}
