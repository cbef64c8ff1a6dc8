package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/NovaCampusApps/principal-scheduler/internal/domain/appointment"
	"github.com/NovaCampusApps/principal-scheduler/internal/httperr"
)

func TestReview_ApproveAssignsTokenAndTakesSlot(t *testing.T) {
	f := newFixture(t)
	slot := f.addSlot(t, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC))
	ap := f.bookPending(t, f.student, slot.ID)

	approved := f.approve(t, ap.ID)

	assert.Equal(t, string(domain.StatusBooked), approved.Status)
	require.NotNil(t, approved.TokenNumber)
	assert.Equal(t, 1, *approved.TokenNumber)

	got, err := f.repo.GetSlot(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.False(t, got.Available, "approval takes the slot off the market")

	msgs := f.sink.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, f.student.ID, msgs[0].RecipientID)
	assert.Contains(t, msgs[0].Text, "approved")
	assert.Contains(t, msgs[0].Text, "token number is 1")
}

func TestReview_TokensAreSequentialPerDay(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	slotA := f.addSlot(t, day.Add(10*time.Hour))
	slotB := f.addSlot(t, day.Add(11*time.Hour))
	slotC := f.addSlot(t, day.Add(34*time.Hour)) // next day

	apA := f.bookPending(t, f.student, slotA.ID)
	apB := f.bookPending(t, f.faculty, slotB.ID)
	apC := f.bookPending(t, f.student, slotC.ID)

	gotA := f.approve(t, apA.ID)
	gotB := f.approve(t, apB.ID)
	gotC := f.approve(t, apC.ID)

	assert.Equal(t, 1, *gotA.TokenNumber)
	assert.Equal(t, 2, *gotB.TokenNumber)
	assert.Equal(t, 1, *gotC.TokenNumber, "token sequence restarts per day")
}

func TestReview_RejectLeavesSlotOpen(t *testing.T) {
	f := newFixture(t)
	slot := f.addSlot(t, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC))
	ap := f.bookPending(t, f.student, slot.ID)

	rejected, err := f.review.Execute(context.Background(), ReviewAppointmentInput{
		ApproverID:    f.principal.ID,
		ApproverRole:  f.principal.Role,
		AppointmentID: ap.ID,
		Action:        ActionReject,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusRejected), rejected.Status)
	assert.Nil(t, rejected.TokenNumber, "rejection burns no token")

	got, err := f.repo.GetSlot(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.True(t, got.Available)

	msgs := f.sink.all()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "rejected")
}

func TestReview_DoubleReviewFails(t *testing.T) {
	f := newFixture(t)
	slot := f.addSlot(t, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC))
	ap := f.bookPending(t, f.student, slot.ID)

	f.approve(t, ap.ID)

	_, err := f.review.Execute(context.Background(), ReviewAppointmentInput{
		ApproverID:    f.principal.ID,
		ApproverRole:  f.principal.Role,
		AppointmentID: ap.ID,
		Action:        ActionApprove,
	})
	require.Error(t, err)
	assert.Equal(t, httperr.CodeInvalidTransition, httperr.BusinessCode(err))
	assert.Contains(t, err.Error(), "booked", "error names the current status")
}

func TestReview_RequesterCannotReview(t *testing.T) {
	f := newFixture(t)
	slot := f.addSlot(t, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC))
	ap := f.bookPending(t, f.student, slot.ID)

	_, err := f.review.Execute(context.Background(), ReviewAppointmentInput{
		ApproverID:    f.student.ID,
		ApproverRole:  f.student.Role,
		AppointmentID: ap.ID,
		Action:        ActionApprove,
	})
	require.Error(t, err)
	assert.Equal(t, httperr.CodeForbidden, httperr.BusinessCode(err))
}

func TestReview_UnknownAction(t *testing.T) {
	f := newFixture(t)
	slot := f.addSlot(t, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC))
	ap := f.bookPending(t, f.student, slot.ID)

	_, err := f.review.Execute(context.Background(), ReviewAppointmentInput{
		ApproverID:    f.principal.ID,
		ApproverRole:  f.principal.Role,
		AppointmentID: ap.ID,
		Action:        "defer",
	})
	require.Error(t, err)
	assert.Equal(t, httperr.CodeValidation, httperr.BusinessCode(err))
}

func TestReview_UnknownAppointment(t *testing.T) {
	f := newFixture(t)

	_, err := f.review.Execute(context.Background(), ReviewAppointmentInput{
		ApproverID:    f.principal.ID,
		ApproverRole:  f.principal.Role,
		AppointmentID: 42,
		Action:        ActionApprove,
	})
	require.Error(t, err)
	assert.Equal(t, httperr.CodeNotFound, httperr.BusinessCode(err))
}
