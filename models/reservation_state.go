package models

import "errors"

// ReservationState drives the allowed transitions of a reservation.
// Transitions happen only through explicit operator or guest actions;
// nothing here fires on the clock or on room changes.
type ReservationState interface {
	Confirm(r *Reservation) error
	Start(r *Reservation) error
	Complete(r *Reservation) error
	Cancel(r *Reservation) error
}

type pendingState struct{}

func (s *pendingState) Confirm(r *Reservation) error {
	r.Status = ReservationConfirmed
	return nil
}

func (s *pendingState) Start(r *Reservation) error {
	return errors.New("cannot check in a pending reservation")
}

func (s *pendingState) Complete(r *Reservation) error {
	return errors.New("cannot complete a pending reservation")
}

func (s *pendingState) Cancel(r *Reservation) error {
	r.Status = ReservationCanceled
	return nil
}

type confirmedState struct{}

func (s *confirmedState) Confirm(r *Reservation) error {
	return errors.New("reservation already confirmed")
}

func (s *confirmedState) Start(r *Reservation) error {
	r.Status = ReservationInProgress
	return nil
}

func (s *confirmedState) Complete(r *Reservation) error {
	return errors.New("cannot complete a reservation before check-in")
}

func (s *confirmedState) Cancel(r *Reservation) error {
	r.Status = ReservationCanceled
	return nil
}

type inProgressState struct{}

func (s *inProgressState) Confirm(r *Reservation) error {
	return errors.New("reservation already in progress")
}

func (s *inProgressState) Start(r *Reservation) error {
	return errors.New("guest already checked in")
}

func (s *inProgressState) Complete(r *Reservation) error {
	r.Status = ReservationCompleted
	return nil
}

func (s *inProgressState) Cancel(r *Reservation) error {
	return errors.New("cannot cancel a stay in progress")
}

type completedState struct{}

func (s *completedState) Confirm(r *Reservation) error {
	return errors.New("reservation already completed")
}

func (s *completedState) Start(r *Reservation) error {
	return errors.New("reservation already completed")
}

func (s *completedState) Complete(r *Reservation) error {
	return errors.New("reservation already completed")
}

func (s *completedState) Cancel(r *Reservation) error {
	return errors.New("cannot cancel a completed reservation")
}

type canceledState struct{}

func (s *canceledState) Confirm(r *Reservation) error {
	return errors.New("cannot confirm a canceled reservation")
}

func (s *canceledState) Start(r *Reservation) error {
	return errors.New("cannot check in a canceled reservation")
}

func (s *canceledState) Complete(r *Reservation) error {
	return errors.New("cannot complete a canceled reservation")
}

func (s *canceledState) Cancel(r *Reservation) error {
	return errors.New("reservation already canceled")
}

// GetReservationState returns the state handler for a status value.
func GetReservationState(status ReservationStatus) ReservationState {
	switch status {
	case ReservationPending:
		return &pendingState{}
	case ReservationConfirmed:
		return &confirmedState{}
	case ReservationInProgress:
		return &inProgressState{}
	case ReservationCompleted:
		return &completedState{}
	case ReservationCanceled:
		return &canceledState{}
	default:
		return &pendingState{}
	}
}
