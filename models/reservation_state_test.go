package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingTransitions(t *testing.T) {
	r := &Reservation{Status: ReservationPending}
	require.NoError(t, GetReservationState(r.Status).Confirm(r))
	assert.Equal(t, ReservationConfirmed, r.Status)

	r = &Reservation{Status: ReservationPending}
	assert.Error(t, GetReservationState(r.Status).Start(r))
	assert.Error(t, GetReservationState(r.Status).Complete(r))

	require.NoError(t, GetReservationState(r.Status).Cancel(r))
	assert.Equal(t, ReservationCanceled, r.Status)
}

func TestConfirmedTransitions(t *testing.T) {
	r := &Reservation{Status: ReservationConfirmed}
	assert.Error(t, GetReservationState(r.Status).Confirm(r))
	assert.Error(t, GetReservationState(r.Status).Complete(r))

	require.NoError(t, GetReservationState(r.Status).Start(r))
	assert.Equal(t, ReservationInProgress, r.Status)

	r = &Reservation{Status: ReservationConfirmed}
	require.NoError(t, GetReservationState(r.Status).Cancel(r))
	assert.Equal(t, ReservationCanceled, r.Status)
}

func TestInProgressTransitions(t *testing.T) {
	r := &Reservation{Status: ReservationInProgress}
	assert.Error(t, GetReservationState(r.Status).Confirm(r))
	assert.Error(t, GetReservationState(r.Status).Start(r))
	assert.Error(t, GetReservationState(r.Status).Cancel(r))
	assert.Equal(t, ReservationInProgress, r.Status)

	require.NoError(t, GetReservationState(r.Status).Complete(r))
	assert.Equal(t, ReservationCompleted, r.Status)
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	for _, status := range []ReservationStatus{ReservationCompleted, ReservationCanceled} {
		r := &Reservation{Status: status}
		state := GetReservationState(r.Status)
		assert.Error(t, state.Confirm(r))
		assert.Error(t, state.Start(r))
		assert.Error(t, state.Cancel(r))
		assert.Equal(t, status, r.Status, "terminal status %s must not change", status)
	}

	r := &Reservation{Status: ReservationCanceled}
	assert.Error(t, GetReservationState(r.Status).Complete(r))

	r = &Reservation{Status: ReservationCompleted}
	assert.Error(t, GetReservationState(r.Status).Complete(r))
	assert.Equal(t, ReservationCompleted, r.Status)
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, ReservationPending.IsActive())
	assert.True(t, ReservationConfirmed.IsActive())
	assert.True(t, ReservationInProgress.IsActive())
	assert.False(t, ReservationCompleted.IsActive())
	assert.False(t, ReservationCanceled.IsActive())

	assert.True(t, ReservationPending.Valid())
	assert.False(t, ReservationStatus("archived").Valid())
}
