package model

import (
	"time"
)

// DateLayout is the calendar-day granularity used by the booking ledger.
const DateLayout = "2006-01-02"

// BookingRequest is the transient inbound payload. It is normalized and
// validated before it is allowed anywhere near the ledger.
type BookingRequest struct {
	HomestayID      string `json:"homestay_id" validate:"required"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot        string `json:"time_slot" validate:"required"`
	GuestName       string `json:"guest_name" validate:"required,min=2,max=200"`
	Phone           string `json:"phone" validate:"required,min=7,max=20"`
	Email           string `json:"email,omitempty" validate:"omitempty,email"`
	Address         string `json:"address,omitempty" validate:"omitempty,max=1000"`
	Guests          *int   `json:"guests,omitempty" validate:"required,min=1,max=20"`
	SpecialRequests string `json:"special_requests,omitempty" validate:"omitempty,max=1000"`
}

// Booking is the persisted record. At most one booking may exist per
// (homestay_id, date) pair; the document is immutable once written.
type Booking struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty"`
	HomestayID      string    `json:"homestay_id" bson:"homestay_id"`
	Date            string    `json:"date" bson:"date"`
	TimeSlot        string    `json:"time_slot" bson:"time_slot"`
	GuestName       string    `json:"guest_name" bson:"guest_name"`
	Phone           string    `json:"phone" bson:"phone"`
	Email           *string   `json:"email" bson:"email"`
	Address         *string   `json:"address" bson:"address"`
	Guests          int       `json:"guests" bson:"guests"`
	SpecialRequests *string   `json:"special_requests" bson:"special_requests"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

// ToBooking builds the record to persist. Empty optional strings become
// nil so they are stored as null rather than "".
func (r *BookingRequest) ToBooking() *Booking {
	guests := 1
	if r.Guests != nil {
		guests = *r.Guests
	}

	return &Booking{
		HomestayID:      r.HomestayID,
		Date:            r.Date,
		TimeSlot:        r.TimeSlot,
		GuestName:       r.GuestName,
		Phone:           r.Phone,
		Email:           optionalString(r.Email),
		Address:         optionalString(r.Address),
		Guests:          guests,
		SpecialRequests: optionalString(r.SpecialRequests),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
