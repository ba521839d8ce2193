package models

import "time"

const (
	BookingConfirmed  = "confirmed"
	BookingCheckedIn  = "checked-in"
	BookingCheckedOut = "checked-out"
	BookingCancelled  = "cancelled"
)

const (
	PaymentPending   = "pending"
	PaymentPartial   = "partial"
	PaymentCompleted = "completed"
)

const (
	SourceDirectWebsite = "Direct Website"
	SourceOTA           = "Online Travel Agencies"
	SourceCorporate     = "Corporate Bookings"
	SourceWalkIn        = "Walk-in"
)

func IsValidBookingStatus(s string) bool {
	return oneOf(s, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled)
}

func IsValidPaymentStatus(s string) bool {
	return oneOf(s, PaymentPending, PaymentPartial, PaymentCompleted)
}

func IsValidBookingSource(s string) bool {
	return oneOf(s, SourceDirectWebsite, SourceOTA, SourceCorporate, SourceWalkIn)
}

// Booking reserves one room for one guest over [CheckIn, CheckOut]. Times are stored in UTC.
type Booking struct {
	Base

	RoomID          string    `gorm:"column:room_id;type:varchar(36);index;not null" json:"roomId"`
	GuestID         string    `gorm:"column:guest_id;type:varchar(36);index;not null" json:"guestId"`
	CheckIn         time.Time `gorm:"column:check_in;index;not null" json:"checkIn"`
	CheckOut        time.Time `gorm:"column:check_out;index;not null" json:"checkOut"`
	NumberOfGuests  int       `gorm:"column:number_of_guests;not null" json:"numberOfGuests"`
	Status          string    `gorm:"column:status;size:32;index;not null" json:"status"`
	TotalPrice      float64   `gorm:"column:total_price;not null" json:"totalPrice"`
	PaymentStatus   string    `gorm:"column:payment_status;size:32;not null" json:"paymentStatus"`
	SpecialRequests string    `gorm:"column:special_requests;type:text" json:"specialRequests"`
	BookingSource   string    `gorm:"column:booking_source;size:64;index;not null" json:"bookingSource"`

	Room  *Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
	Guest *User `gorm:"foreignKey:GuestID;references:ID" json:"-"`
}
