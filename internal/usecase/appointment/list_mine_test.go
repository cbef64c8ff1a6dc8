package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/NovaCampusApps/principal-scheduler/internal/domain/appointment"
)

func TestListMyAppointments_OnlyOwn(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	slotA := f.addSlot(t, day.Add(9*time.Hour))
	slotB := f.addSlot(t, day.Add(10*time.Hour))
	slotC := f.addSlot(t, day.Add(11*time.Hour))

	mine := f.bookPending(t, f.student, slotA.ID)
	f.bookPending(t, f.faculty, slotB.ID)
	approved := f.bookPending(t, f.student, slotC.ID)
	f.approve(t, approved.ID)

	uc := NewListMyAppointments(f.repo)
	out, err := uc.Execute(context.Background(), f.student.ID)
	require.NoError(t, err)
	require.Len(t, out, 2)

	ids := []uint{out[0].ID, out[1].ID}
	assert.ElementsMatch(t, []uint{mine.ID, approved.ID}, ids)

	for _, row := range out {
		assert.Equal(t, f.student.ID, row.RequesterID)
		if row.ID == approved.ID {
			require.NotNil(t, row.TokenNumber)
			assert.Equal(t, 1, *row.TokenNumber)
			assert.Equal(t, string(domain.StatusBooked), row.Status)
		}
	}
}

func TestListPendingAppointments(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	slotA := f.addSlot(t, day.Add(9*time.Hour))
	slotB := f.addSlot(t, day.Add(10*time.Hour))

	pending := f.bookPending(t, f.student, slotA.ID)
	settled := f.bookPending(t, f.faculty, slotB.ID)
	f.approve(t, settled.ID)

	uc := NewListPendingAppointments(f.repo)
	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, pending.ID, out[0].ID)
	assert.Equal(t, string(domain.StatusPending), out[0].Status)
	assert.Equal(t, f.student.Name, out[0].RequesterName)
}
