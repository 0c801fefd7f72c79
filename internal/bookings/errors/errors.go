package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	// ErrDateTaken is the storage-level signal that a booking already
	// exists for a (homestay_id, date) pair, whether observed by the
	// in-transaction check or by the unique index on insert.
	ErrDateTaken = errors.New("homestay already booked for this date")

	// ErrLockHeld means another request currently holds the advisory
	// lock for the same (homestay_id, date) pair.
	ErrLockHeld = errors.New("booking lock held by another request")
)
