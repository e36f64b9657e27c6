package registrations

import "errors"

var (
	ErrTermsNotAccepted    = errors.New("terms and conditions must be accepted")
	ErrNotEnoughPlayers    = errors.New("team does not have enough players")
	ErrRegistrationClosed  = errors.New("registration for this event is closed")
	ErrAlreadyRegistered   = errors.New("team is already registered for this event")
	ErrInvalidRegistration = errors.New("invalid registration")
)
