package attendance

import "errors"

var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNoCheckIn         = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
)
