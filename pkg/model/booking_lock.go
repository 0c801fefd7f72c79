package model

import (
	"fmt"
	"time"
)

// BookingLock is an advisory lock guarding one (homestay_id, date) pair
// during booking creation. The unique _id makes acquisition atomic; the
// expires_at TTL clears locks abandoned by crashed requests.
type BookingLock struct {
	ID        string    `bson:"_id" json:"id"`
	Owner     string    `bson:"owner" json:"owner"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// LockID derives the lock key for a homestay/date pair. Calls for
// different pairs produce different keys and never contend.
func LockID(homestayID, date string) string {
	return fmt.Sprintf("lock_%s_%s", homestayID, date)
}
