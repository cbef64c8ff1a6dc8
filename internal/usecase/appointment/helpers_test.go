package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/NovaCampusApps/principal-scheduler/internal/infra/repository"
	"github.com/NovaCampusApps/principal-scheduler/internal/models"
	"github.com/NovaCampusApps/principal-scheduler/internal/notify"
)

// recordingSink captures dispatched notifications for assertions.
type recordingSink struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (s *recordingSink) Dispatch(msg notify.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

func (s *recordingSink) all() []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notify.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// seqAllocator hands out 1, 2, 3... per day key, like the real counters.
type seqAllocator struct {
	mu   sync.Mutex
	next map[string]int
}

func newSeqAllocator() *seqAllocator {
	return &seqAllocator{next: make(map[string]int)}
}

func (a *seqAllocator) Next(ctx context.Context, day time.Time) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	key := day.Format("2006-01-02")
	a.next[key]++
	return a.next[key], nil
}

// fixture wires the full lifecycle against the in-memory repository.
type fixture struct {
	repo      *repository.InMemoryRepository
	sink      *recordingSink
	allocator *seqAllocator

	book      *BookAppointment
	review    *ReviewAppointment
	setStatus *SetAppointmentStatus
	listQueue *ListQueue

	student   *models.User
	faculty   *models.User
	principal *models.User
	admin     *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewInMemoryRepository()
	sink := &recordingSink{}
	allocator := newSeqAllocator()

	f := &fixture{
		repo:      repo,
		sink:      sink,
		allocator: allocator,

		book:      NewBookAppointment(repo, nil),
		review:    NewReviewAppointment(repo, allocator, sink, nil, time.UTC),
		setStatus: NewSetAppointmentStatus(repo, sink, nil, time.UTC),
		listQueue: NewListQueue(repo),

		student:   repo.AddUser(models.User{Name: "Asha Verma", Role: models.RoleStudent, Active: true}),
		faculty:   repo.AddUser(models.User{Name: "Ravi Iyer", Role: models.RoleFaculty, Active: true}),
		principal: repo.AddUser(models.User{Name: "Meena Rao", Role: models.RolePrincipal, Active: true}),
		admin:     repo.AddUser(models.User{Name: "Admin", Role: models.RoleAdmin, Active: true}),
	}

	return f
}

// addSlot seeds an available slot at the given start time.
func (f *fixture) addSlot(t *testing.T, start time.Time) *models.TimeSlot {
	t.Helper()

	slot := &models.TimeSlot{
		StartTime: start,
		EndTime:   start.Add(15 * time.Minute),
		Available: true,
	}
	require.NoError(t, f.repo.CreateSlot(context.Background(), slot))
	return slot
}

// bookPending books a pending request for the student on the slot.
func (f *fixture) bookPending(t *testing.T, requester *models.User, slotID uint) *models.Appointment {
	t.Helper()

	ap, err := f.book.Execute(context.Background(), BookAppointmentInput{
		RequesterID:   requester.ID,
		RequesterRole: requester.Role,
		SlotID:        slotID,
		Purpose:       "discuss project",
	})
	require.NoError(t, err)
	return ap
}

// approve runs the principal's approval and returns the updated appointment.
func (f *fixture) approve(t *testing.T, apID uint) *models.Appointment {
	t.Helper()

	ap, err := f.review.Execute(context.Background(), ReviewAppointmentInput{
		ApproverID:    f.principal.ID,
		ApproverRole:  f.principal.Role,
		AppointmentID: apID,
		Action:        ActionApprove,
	})
	require.NoError(t, err)
	return ap
}
