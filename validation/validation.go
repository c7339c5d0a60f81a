package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/stayvia/stayvia/models"
)

// FieldError names the offending field and explains the rule it broke.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every business rule an input violated. A write
// is never attempted while one of these is non-empty.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationErrors) add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

func (e *ValidationErrors) orNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// ValidateListing checks the listing-level business rules: the availability
// window must be non-empty and the nightly price positive.
func ValidateListing(pricePerNight float64, availableFrom, availableTo time.Time) error {
	errs := &ValidationErrors{}
	if !availableTo.After(availableFrom) {
		errs.add("available_to", "Available to date must be after available from date.")
	}
	if pricePerNight <= 0 {
		errs.add("price_per_night", "Price per night must be greater than 0.")
	}
	return errs.orNil()
}

// ValidateBooking checks a booking request against its listing: date
// ordering, guest capacity, and containment in the availability window.
func ValidateBooking(listing *models.Listing, checkIn, checkOut time.Time, numberOfGuests int) error {
	errs := &ValidationErrors{}
	if !checkOut.After(checkIn) {
		errs.add("check_out_date", "Check-out date must be after check-in date.")
	}
	if numberOfGuests > listing.MaxGuests {
		errs.add("number_of_guests", fmt.Sprintf(
			"Number of guests (%d) exceeds maximum allowed (%d).", numberOfGuests, listing.MaxGuests))
	}
	if checkIn.Before(listing.AvailableFrom) || checkOut.After(listing.AvailableTo) {
		errs.add("check_in_date", fmt.Sprintf(
			"Booking dates must be within availability period (%s to %s).",
			listing.AvailableFrom.Format("2006-01-02"), listing.AvailableTo.Format("2006-01-02")))
	}
	return errs.orNil()
}

// ValidateReview checks the rating range. Pair uniqueness is left to the
// store's unique index plus the handler's pre-check.
func ValidateReview(rating int) error {
	errs := &ValidationErrors{}
	if rating < 1 || rating > 5 {
		errs.add("rating", "Rating must be between 1 and 5.")
	}
	return errs.orNil()
}
