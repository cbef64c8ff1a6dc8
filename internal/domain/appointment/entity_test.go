package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NovaCampusApps/principal-scheduler/internal/models"
)

func TestApprove(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, Approve(ap, 7))
	assert.Equal(t, string(StatusBooked), ap.Status)
	require.NotNil(t, ap.TokenNumber)
	assert.Equal(t, 7, *ap.TokenNumber)

	// Second approval must fail and leave the token alone.
	err := Approve(ap, 8)
	require.Error(t, err)
	assert.Equal(t, 7, *ap.TokenNumber)
}

func TestReject(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, Reject(ap))
	assert.Equal(t, string(StatusRejected), ap.Status)
	assert.Nil(t, ap.TokenNumber)

	assert.Error(t, Reject(ap))
}

func TestTransitionKeepsToken(t *testing.T) {
	token := 3
	ap := &models.Appointment{Status: string(StatusBooked), TokenNumber: &token}

	require.NoError(t, Transition(ap, StatusCancelled))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.TokenNumber)
	assert.Equal(t, 3, *ap.TokenNumber)
}

func TestReleasesSlot(t *testing.T) {
	assert.True(t, ReleasesSlot(StatusBooked, StatusCancelled))

	assert.False(t, ReleasesSlot(StatusActive, StatusCancelled))
	assert.False(t, ReleasesSlot(StatusBooked, StatusActive))
	assert.False(t, ReleasesSlot(StatusActive, StatusCompleted))
}
