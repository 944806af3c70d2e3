package utils

import (
	"errors"
	"time"
)

// ErrNonPositiveStay rejects bookings whose checkout does not fall strictly
// after check-in. The web client previews such stays as a single night; the
// server refuses to charge for a phantom night.
var ErrNonPositiveStay = errors.New("checkOut must be after checkIn")

var ErrInvalidGuestCount = errors.New("guests must be at least 1")

// NightsBetween returns the whole days between two dates.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// ComputeTotalPrice derives a booking total: nightly price x nights x guests.
// The flat model has no service fees, taxes, or currency conversion.
func ComputeTotalPrice(nightlyPrice float32, checkIn, checkOut time.Time, guests int) (float32, error) {
	nights := NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return 0, ErrNonPositiveStay
	}
	if guests < 1 {
		return 0, ErrInvalidGuestCount
	}

	return nightlyPrice * float32(nights) * float32(guests), nil
}
