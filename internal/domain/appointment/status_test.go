package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NovaCampusApps/principal-scheduler/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "booked", "active", "completed", "cancelled", "rejected"} {
		st, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(st))
	}

	_, err := ParseStatus("archived")
	require.Error(t, err)
	assert.Equal(t, httperr.CodeValidation, httperr.BusinessCode(err))
}

func TestCanReview(t *testing.T) {
	assert.NoError(t, CanReview(StatusPending))

	for _, st := range []Status{StatusBooked, StatusActive, StatusCompleted, StatusCancelled, StatusRejected} {
		err := CanReview(st)
		require.Error(t, err, "review from %s should fail", st)
		assert.Equal(t, httperr.CodeInvalidTransition, httperr.BusinessCode(err))
		assert.Contains(t, err.Error(), string(st))
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		next    Status
		wantOK  bool
	}{
		{"booked to active", StatusBooked, StatusActive, true},
		{"active to completed", StatusActive, StatusCompleted, true},
		{"booked to cancelled", StatusBooked, StatusCancelled, true},
		{"active to cancelled", StatusActive, StatusCancelled, true},

		{"pending to active", StatusPending, StatusActive, false},
		{"pending to cancelled", StatusPending, StatusCancelled, false},
		{"booked to completed", StatusBooked, StatusCompleted, false},
		{"completed to active", StatusCompleted, StatusActive, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled to active", StatusCancelled, StatusActive, false},
		{"rejected to cancelled", StatusRejected, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.current, tt.next)
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, httperr.CodeInvalidTransition, httperr.BusinessCode(err))
		})
	}
}
