package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahelnejat/Luna/internal/httperr"
	"github.com/sahelnejat/Luna/internal/models"
)

func TestNewReference(t *testing.T) {
	ref := NewReference(time.Date(2026, 3, 13, 14, 0, 0, 0, time.UTC))

	assert.True(t, len(ref) == len("LUNA-")+6)
	assert.Equal(t, "LUNA-", ref[:5])
	for _, r := range ref[5:] {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z'), "unexpected char %q", r)
	}

	// different milliseconds, different references
	other := NewReference(time.Date(2026, 3, 13, 14, 0, 0, int(5*time.Millisecond), time.UTC))
	assert.NotEqual(t, ref, other)
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusConfirmed))

	err := CanCancel(StatusCancelled)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.EqualError(t, err, "invalid_state")
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: string(InitialStatus())}

	require.NoError(t, Cancel(b, now))
	assert.Equal(t, string(StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, now, *b.CancelledAt)

	// cancelling twice is rejected and leaves the record untouched
	err := Cancel(b, now.Add(time.Hour))
	require.Error(t, err)
	assert.Equal(t, now, *b.CancelledAt)
}
