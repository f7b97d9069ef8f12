package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusSteps(t *testing.T) {
	cases := []struct {
		status Status
		step   int
	}{
		{StatusPending, 0},
		{StatusConfirmed, 1},
		{StatusCooking, 2},
		{StatusDelivered, 3},
		{StatusCancelled, -1},
		{Status("BOGUS"), -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.step, tc.status.Step(), "step of %s", tc.status)
	}
}

func TestProgressNeverPositiveForCancelled(t *testing.T) {
	assert.Equal(t, 0.0, StatusCancelled.Progress())
	assert.True(t, StatusCancelled.Terminated())

	assert.Equal(t, 0.0, StatusPending.Progress())
	assert.InDelta(t, 1.0/3, StatusConfirmed.Progress(), 1e-9)
	assert.InDelta(t, 2.0/3, StatusCooking.Progress(), 1e-9)
	assert.Equal(t, 1.0, StatusDelivered.Progress())
}

func TestCanCancelOnlyWhilePending(t *testing.T) {
	assert.True(t, StatusPending.CanCancel())
	for _, s := range []Status{StatusConfirmed, StatusCooking, StatusDelivered, StatusCancelled} {
		assert.False(t, s.CanCancel(), "%s must not be cancellable", s)
	}
}

func TestNextIsOneForwardStep(t *testing.T) {
	assert.Equal(t, []Status{StatusConfirmed}, StatusPending.Next())
	assert.Equal(t, []Status{StatusCooking}, StatusConfirmed.Next())
	assert.Equal(t, []Status{StatusDelivered}, StatusCooking.Next())
	assert.Nil(t, StatusDelivered.Next())
	assert.Nil(t, StatusCancelled.Next())
}

func TestValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCooking, StatusDelivered, StatusCancelled} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("PAID").Valid())
	assert.False(t, Status("").Valid())
}
