package storage

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrAgencyNotFound     = errors.New("agency not found")
	ErrAgencyNotApproved  = errors.New("agency is not approved")
	ErrOfferNotFound      = errors.New("offer not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingState       = errors.New("booking cannot change state")
	ErrReferenceExhausted = errors.New("no free booking reference")
	ErrPlanNotFound       = errors.New("travel plan not found")
)
