package repository

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint would be violated
	ErrDuplicate = errors.New("duplicate record")

	// ErrAlreadyLinked is returned by Link when the initiator got a partner concurrently
	ErrAlreadyLinked = errors.New("initiator already linked")

	// ErrPartnerTaken is returned by Link when the respondent got a partner concurrently
	ErrPartnerTaken = errors.New("respondent already linked")

	// ErrAlreadyRated is returned by Rate when the activity already carries a rating
	ErrAlreadyRated = errors.New("activity already rated")
)
