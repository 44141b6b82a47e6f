// Package storage defines the domain errors shared by storage
// implementations and the HTTP handlers that map them to status codes.
package storage

import "errors"

var (
	ErrUserExists     = errors.New("user already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrClassNotFound  = errors.New("class not found")
	ErrSlotsExhausted = errors.New("no available slots")
	ErrAlreadyBooked  = errors.New("already booked for this class")
)
